package saql

import (
	"strconv"
	"strings"
)

// statement is one pipeline stage bound to its owning stream. The set of
// stages is closed; statements are created only by the chaining methods on
// Stream and by the Load/Cogroup constructors.
//
// Every renderer reads the owning stream's reference token (Stream.Ref) at
// render time, never at construction time. Cogroup shifts the ids of the
// streams it combines, so a token captured early would go stale.
type statement interface {
	render() string
}

type loadStatement struct {
	stream *Stream
	name   string
}

func (s *loadStatement) render() string {
	return s.stream.Ref() + " = load " + QuoteString(s.name) + ";"
}

type foreachStatement struct {
	stream *Stream
	fields []Expression
}

func (s *foreachStatement) render() string {
	ref := s.stream.Ref()
	return ref + " = foreach " + ref + " generate " + joinExpressions(s.fields) + ";"
}

type groupStatement struct {
	stream *Stream
	fields []Expression
}

func (s *groupStatement) render() string {
	ref := s.stream.Ref()
	return ref + " = group " + ref + " by " + joinExpressions(s.fields) + ";"
}

type filterStatement struct {
	stream  *Stream
	filters []Expression
}

func (s *filterStatement) render() string {
	// Strict left fold: filter(p1, p2, p3) groups as (p1 && p2) && p3,
	// which && renders flat because the precedences are equal.
	conj := s.filters[0]
	for _, f := range s.filters[1:] {
		conj = And(conj, f)
	}
	ref := s.stream.Ref()
	return ref + " = filter " + ref + " by " + conj.String() + ";"
}

// Ordering pairs a field with a sort direction for Stream.Order.
// A zero Direction sorts ascending.
type Ordering struct {
	Field     Expression
	Direction SortOrder
}

// Asc orders a field ascending.
func Asc(field Expression) Ordering {
	return Ordering{Field: field, Direction: SortAsc}
}

// Desc orders a field descending.
func Desc(field Expression) Ordering {
	return Ordering{Field: field, Direction: SortDesc}
}

type orderStatement struct {
	stream *Stream
	fields []Ordering
}

func (s *orderStatement) render() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		dir := f.Direction
		if dir == "" {
			dir = SortAsc
		}
		parts[i] = f.Field.String() + " " + string(dir)
	}

	fields := parts[0]
	if len(parts) > 1 {
		fields = "(" + strings.Join(parts, ", ") + ")"
	}

	ref := s.stream.Ref()
	return ref + " = order " + ref + " by " + fields + ";"
}

type limitStatement struct {
	stream *Stream
	limit  int
}

func (s *limitStatement) render() string {
	ref := s.stream.Ref()
	return ref + " = limit " + ref + " " + strconv.Itoa(s.limit) + ";"
}

type fillStatement struct {
	stream    *Stream
	dateCols  []Expression
	dateType  FillDateType
	partition Expression
}

func (s *fillStatement) render() string {
	// The dateCols list joins with a bare comma while the outer argument
	// list joins with ", " - the engine's argument grammar is exact.
	cols := make([]string, len(s.dateCols))
	for i, c := range s.dateCols {
		cols[i] = c.String()
	}
	args := []string{
		"dateCols=(" + strings.Join(cols, ",") + ", " + QuoteString(string(s.dateType)) + ")",
	}
	if s.partition != nil {
		args = append(args, "partition="+s.partition.String())
	}

	ref := s.stream.Ref()
	return ref + " = fill " + ref + " by (" + strings.Join(args, ", ") + ");"
}

type cogroupStatement struct {
	stream   *Stream
	inputs   []CogroupInput
	joinType JoinType
}

func (s *cogroupStatement) render() string {
	var lines []string
	parts := make([]string, len(s.inputs))
	seen := make(map[*Stream]bool, len(s.inputs))
	for i, in := range s.inputs {
		part := in.Stream.Ref() + " by " + in.Key.String()
		if i == 0 && s.joinType != JoinInner {
			part += " " + string(s.joinType)
		}
		parts[i] = part

		// Each distinct input stream contributes its full history once,
		// in input order.
		if !seen[in.Stream] {
			seen[in.Stream] = true
			lines = append(lines, in.Stream.String())
		}
	}
	lines = append(lines, s.stream.Ref()+" = cogroup "+strings.Join(parts, ", ")+";")
	return strings.Join(lines, "\n")
}

func joinExpressions(fields []Expression) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
