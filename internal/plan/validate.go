package plan

import (
	"fmt"

	"github.com/NarrativeScience/gosaql/saql"
)

// joinTypes maps document join keywords to builder join types. The keys
// double as the validation whitelist.
var joinTypes = map[string]saql.JoinType{
	"":      saql.JoinInner,
	"inner": saql.JoinInner,
	"left":  saql.JoinLeft,
	"right": saql.JoinRight,
	"full":  saql.JoinFull,
}

var sortOrders = map[string]saql.SortOrder{
	"":     saql.SortAsc,
	"asc":  saql.SortAsc,
	"desc": saql.SortDesc,
}

var fillDateTypes = map[string]saql.FillDateType{
	"Y":     saql.FillYear,
	"Y-M":   saql.FillYearMonth,
	"Y-M-D": saql.FillYearMonthDay,
	"Y-Q":   saql.FillYearQuarter,
	"Y-W":   saql.FillYearWeek,
}

var binaryOps = map[string]func(left, right saql.Expression) *saql.Operation{
	"eq":      saql.Eq,
	"ne":      saql.Ne,
	"gt":      saql.Gt,
	"ge":      saql.Ge,
	"lt":      saql.Lt,
	"le":      saql.Le,
	"in":      saql.In,
	"notin":   saql.NotIn,
	"matches": saql.Matches,
	"add":     saql.Add,
	"sub":     saql.Sub,
	"mul":     saql.Mul,
	"div":     saql.Div,
	"and":     saql.And,
	"or":      saql.Or,
}

var aggregates = map[string]func(saql.Expression) *saql.Call{
	"sum":    saql.Sum,
	"avg":    saql.Avg,
	"min":    saql.Min,
	"max":    saql.Max,
	"unique": saql.Unique,
	"first":  saql.First,
	"last":   saql.Last,
}

// aggCount is the one aggregate that takes no argument.
const aggCount = "count"

// Validate checks a document structurally and returns every problem found.
// A nil/empty result means the document will compile, short of builder
// errors that depend on runtime values.
func Validate(doc *Document) []error {
	var errs []error
	add := func(code, path, format string, args ...any) {
		errs = append(errs, &Error{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if len(doc.Streams) == 0 {
		add(ErrCodeNoStreams, "", "document defines no streams")
	}

	// Cogroup inputs may only reference streams defined earlier, so track
	// names in document order.
	defined := make(map[string]bool, len(doc.Streams))

	for i, sd := range doc.Streams {
		path := fmt.Sprintf("streams[%d]", i)

		if sd.Name == "" {
			add(ErrCodeDuplicateName, path, "stream has no name")
		} else if defined[sd.Name] {
			add(ErrCodeDuplicateName, path, "duplicate stream name %q", sd.Name)
		}

		switch {
		case sd.Load == "" && sd.Cogroup == nil:
			add(ErrCodeNoSource, path, "stream %q needs a load or a cogroup source", sd.Name)
		case sd.Load != "" && sd.Cogroup != nil:
			add(ErrCodeTwoSources, path, "stream %q sets both load and cogroup", sd.Name)
		}

		if sd.Cogroup != nil {
			validateCogroup(sd.Cogroup, path+".cogroup", defined, add)
		}

		for j, op := range sd.Ops {
			validateOp(&op, fmt.Sprintf("%s.ops[%d]", path, j), add)
		}

		if sd.Name != "" {
			defined[sd.Name] = true
		}
	}

	if doc.Output == "" {
		add(ErrCodeNoOutput, "", "document names no output stream")
	} else if !defined[doc.Output] {
		add(ErrCodeUnknownOutput, "output", "output references undefined stream %q", doc.Output)
	}

	return errs
}

func validateCogroup(cg *CogroupDef, path string, defined map[string]bool, add func(code, path, format string, args ...any)) {
	if _, ok := joinTypes[cg.Join]; !ok {
		add(ErrCodeUnknownJoin, path, "unknown join type %q", cg.Join)
	}
	if len(cg.Inputs) == 0 {
		add(ErrCodeEmptyArguments, path, "cogroup has no inputs")
	}
	for i, in := range cg.Inputs {
		inPath := fmt.Sprintf("%s.inputs[%d]", path, i)
		if !defined[in.Stream] {
			add(ErrCodeUnknownStream, inPath, "cogroup references stream %q, which is not defined earlier in the document", in.Stream)
		}
		if in.Key == nil {
			add(ErrCodeExprShape, inPath, "cogroup input has no key expression")
		} else {
			validateExpr(in.Key, inPath+".key", add)
		}
	}
}

func validateOp(op *Op, path string, add func(code, path, format string, args ...any)) {
	set := 0
	if op.Foreach != nil {
		set++
	}
	if op.Group != nil {
		set++
	}
	if op.Filter != nil {
		set++
	}
	if op.Order != nil {
		set++
	}
	if op.Limit != nil {
		set++
	}
	if op.Fill != nil {
		set++
	}
	if set != 1 {
		add(ErrCodeOpShape, path, "op must set exactly one of foreach, group, filter, order, limit, fill (got %d)", set)
		return
	}

	switch {
	case op.Foreach != nil:
		validateExprList(op.Foreach, path+".foreach", add)
	case op.Group != nil:
		validateExprList(op.Group, path+".group", add)
	case op.Filter != nil:
		validateExprList(op.Filter, path+".filter", add)
	case op.Order != nil:
		if len(op.Order) == 0 {
			add(ErrCodeEmptyArguments, path+".order", "order has no fields")
		}
		for i, o := range op.Order {
			if _, ok := sortOrders[o.Dir]; !ok {
				add(ErrCodeUnknownDir, fmt.Sprintf("%s.order[%d]", path, i), "unknown sort direction %q", o.Dir)
			}
		}
	case op.Limit != nil:
		if *op.Limit <= 0 || *op.Limit > saql.MaxLimit {
			add(ErrCodeLimitRange, path+".limit", "limit must be in range (0, %d], got %d", saql.MaxLimit, *op.Limit)
		}
	case op.Fill != nil:
		if len(op.Fill.DateCols) == 0 {
			add(ErrCodeEmptyArguments, path+".fill", "fill has no date columns")
		}
		if _, ok := fillDateTypes[op.Fill.DateType]; !ok {
			add(ErrCodeUnknownDate, path+".fill", "unknown fill date type %q", op.Fill.DateType)
		}
	}
}

func validateExprList(exprs []ExprDef, path string, add func(code, path, format string, args ...any)) {
	if len(exprs) == 0 {
		add(ErrCodeEmptyArguments, path, "empty expression list")
	}
	for i, e := range exprs {
		validateExpr(&e, fmt.Sprintf("%s[%d]", path, i), add)
	}
}

func validateExpr(e *ExprDef, path string, add func(code, path, format string, args ...any)) {
	set := 0
	if e.Field != "" {
		set++
	}
	if e.Lit != nil {
		set++
	}
	if e.Agg != nil {
		set++
	}
	if e.Binary != nil {
		set++
	}
	if set != 1 {
		add(ErrCodeExprShape, path, "expression must set exactly one of field, lit, agg, binary (got %d)", set)
		return
	}

	if e.Agg != nil {
		if _, ok := aggregates[e.Agg.Fn]; !ok && e.Agg.Fn != aggCount {
			add(ErrCodeUnknownAgg, path+".agg", "unknown aggregate %q", e.Agg.Fn)
		}
	}

	if e.Binary != nil {
		if _, ok := binaryOps[e.Binary.Op]; !ok {
			add(ErrCodeUnknownOp, path+".binary", "unknown operator %q", e.Binary.Op)
		}
		if e.Binary.Left == nil {
			add(ErrCodeExprShape, path+".binary.left", "missing left operand")
		} else {
			validateExpr(e.Binary.Left, path+".binary.left", add)
		}
		if e.Binary.Right == nil {
			add(ErrCodeExprShape, path+".binary.right", "missing right operand")
		} else {
			validateExpr(e.Binary.Right, path+".binary.right", add)
		}
	}
}
