package plan

import (
	"errors"
	"fmt"

	"github.com/NarrativeScience/gosaql/saql"
)

// Compile validates a document and assembles its streams with the saql
// builder, returning the output stream. Validation problems are joined into
// a single error; builder errors carry the name of the failing stream.
func Compile(doc *Document) (*saql.Stream, error) {
	if errs := Validate(doc); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	built := make(map[string]*saql.Stream, len(doc.Streams))
	for _, sd := range doc.Streams {
		s, err := compileStream(&sd, built)
		if err != nil {
			return nil, fmt.Errorf("stream %q: %w", sd.Name, err)
		}
		built[sd.Name] = s
	}

	return built[doc.Output], nil
}

func compileStream(sd *StreamDef, built map[string]*saql.Stream) (*saql.Stream, error) {
	var s *saql.Stream
	if sd.Load != "" {
		s = saql.Load(sd.Load)
	} else {
		var err error
		s, err = compileCogroup(sd.Cogroup, built)
		if err != nil {
			return nil, err
		}
	}

	for _, op := range sd.Ops {
		if err := applyOp(s, &op); err != nil {
			return nil, err
		}
	}

	if err := s.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func compileCogroup(cg *CogroupDef, built map[string]*saql.Stream) (*saql.Stream, error) {
	inputs := make([]saql.CogroupInput, len(cg.Inputs))
	for i, in := range cg.Inputs {
		key, err := compileExpr(in.Key)
		if err != nil {
			return nil, err
		}
		inputs[i] = saql.By(built[in.Stream], key)
	}
	return saql.CogroupBy(joinTypes[cg.Join], inputs...), nil
}

func applyOp(s *saql.Stream, op *Op) error {
	switch {
	case op.Foreach != nil:
		fields, err := compileExprList(op.Foreach)
		if err != nil {
			return err
		}
		s.Foreach(fields...)
	case op.Group != nil:
		fields, err := compileExprList(op.Group)
		if err != nil {
			return err
		}
		s.Group(fields...)
	case op.Filter != nil:
		filters, err := compileExprList(op.Filter)
		if err != nil {
			return err
		}
		s.Filter(filters...)
	case op.Order != nil:
		fields := make([]saql.Ordering, len(op.Order))
		for i, o := range op.Order {
			fields[i] = saql.Ordering{
				Field:     saql.NewField(o.Field),
				Direction: sortOrders[o.Dir],
			}
		}
		s.Order(fields...)
	case op.Limit != nil:
		s.Limit(*op.Limit)
	case op.Fill != nil:
		cols := make([]saql.Expression, len(op.Fill.DateCols))
		for i, c := range op.Fill.DateCols {
			cols[i] = saql.NewField(c)
		}
		var partition saql.Expression
		if op.Fill.Partition != "" {
			partition = saql.NewField(op.Fill.Partition)
		}
		s.Fill(cols, fillDateTypes[op.Fill.DateType], partition)
	}
	return nil
}

func compileExprList(defs []ExprDef) ([]saql.Expression, error) {
	exprs := make([]saql.Expression, len(defs))
	for i, def := range defs {
		e, err := compileExpr(&def)
		if err != nil {
			return nil, err
		}
		exprs[i] = e
	}
	return exprs, nil
}

func compileExpr(def *ExprDef) (saql.Expression, error) {
	switch {
	case def.Field != "":
		f := saql.NewField(def.Field)
		if def.As != "" {
			f.Alias(def.As)
		}
		return f, nil
	case def.Lit != nil:
		return compileLit(*def.Lit, def.As), nil
	case def.Agg != nil:
		var call *saql.Call
		if def.Agg.Fn == aggCount {
			call = saql.Count()
		} else {
			call = aggregates[def.Agg.Fn](saql.NewField(def.Agg.Of))
		}
		if def.As != "" {
			call.Alias(def.As)
		}
		return call, nil
	case def.Binary != nil:
		left, err := compileExpr(def.Binary.Left)
		if err != nil {
			return nil, err
		}
		right, err := compileExpr(def.Binary.Right)
		if err != nil {
			return nil, err
		}
		op := binaryOps[def.Binary.Op](left, right)
		if def.As != "" {
			op.Alias(def.As)
		}
		return op, nil
	}
	return nil, fmt.Errorf("expression sets no kind")
}

// compileLit builds a literal, normalizing the index types YAML and CUE
// decoding produce. Lists decode as []any and render bracketed.
func compileLit(v any, as string) *saql.Literal {
	lit := saql.Lit(normalizeLit(v))
	if as != "" {
		lit.Alias(as)
	}
	return lit
}

func normalizeLit(v any) any {
	switch val := v.(type) {
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = normalizeLit(item)
		}
		return items
	default:
		return v
	}
}
