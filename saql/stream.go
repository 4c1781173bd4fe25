package saql

import (
	"strconv"
	"strings"
)

// Stream is a pipeline of SAQL statements. Its rendering is the entire
// accumulated history: every statement's line, in append order, joined by
// newlines.
//
// A stream's reference token ("q" + id) is unique only relative to the
// streams it was cogrouped with; renumbering happens at Cogroup time. A
// fresh stream always starts at q0.
type Stream struct {
	expr
	id         int
	statements []statement
	err        error
}

// Load starts a stream by loading a dataset. The returned stream carries a
// recorded error if name is empty.
func Load(name string) *Stream {
	s := &Stream{}
	if name == "" {
		return s.fail(ErrEmptyDataset)
	}
	s.statements = append(s.statements, &loadStatement{stream: s, name: name})
	return s
}

// Ref returns the stream's current reference token, e.g. "q0". The token is
// late-bound: statements call Ref while rendering, so a stream renumbered by
// a later Cogroup renders its earlier statements with the new token.
func (s *Stream) Ref() string {
	return "q" + strconv.Itoa(s.id)
}

// Err returns the first construction error recorded by a chaining call, or
// nil. A failed call appends no statement, so the rendered text only ever
// contains validly constructed stages.
func (s *Stream) Err() error {
	return s.err
}

// Alias sets the output alias and returns the same stream for chaining.
func (s *Stream) Alias(name string) *Stream {
	s.setAlias(name)
	return s
}

func (s *Stream) String() string { return toString(s) }

func (s *Stream) render() string {
	lines := make([]string, len(s.statements))
	for i, st := range s.statements {
		lines[i] = st.render()
	}
	return strings.Join(lines, "\n")
}

// Foreach projects an expression list over every row. SAQL calls this
// projection foreach ... generate.
func (s *Stream) Foreach(fields ...Expression) *Stream {
	if len(fields) == 0 {
		return s.fail(&ArityError{Op: "foreach"})
	}
	s.statements = append(s.statements, &foreachStatement{stream: s, fields: fields})
	return s
}

// Group organizes rows into groups keyed by the given fields. Aggregates
// such as Count or Sum are applied by a following Foreach.
func (s *Stream) Group(fields ...Expression) *Stream {
	if len(fields) == 0 {
		return s.fail(&ArityError{Op: "group"})
	}
	s.statements = append(s.statements, &groupStatement{stream: s, fields: fields})
	return s
}

// Filter keeps the rows matching every given predicate. Multiple predicates
// are combined with a left-to-right && fold into one expression.
func (s *Stream) Filter(filters ...Expression) *Stream {
	if len(filters) == 0 {
		return s.fail(&ArityError{Op: "filter"})
	}
	s.statements = append(s.statements, &filterStatement{stream: s, filters: filters})
	return s
}

// Order sorts by one or more fields. Use Asc/Desc to pick a direction; a
// bare Ordering{Field: f} sorts ascending.
func (s *Stream) Order(fields ...Ordering) *Stream {
	if len(fields) == 0 {
		return s.fail(&ArityError{Op: "order"})
	}
	s.statements = append(s.statements, &orderStatement{stream: s, fields: fields})
	return s
}

// Limit caps the number of returned rows. Values outside (0, MaxLimit]
// record a LimitError and append nothing.
func (s *Stream) Limit(limit int) *Stream {
	if limit <= 0 || limit > MaxLimit {
		return s.fail(&LimitError{Limit: limit})
	}
	s.statements = append(s.statements, &limitStatement{stream: s, limit: limit})
	return s
}

// Fill adds rows for missing dates in the given date columns. dateType
// names the date column layout; partition optionally splits the fill per
// dimension value and may be nil.
func (s *Stream) Fill(dateCols []Expression, dateType FillDateType, partition Expression) *Stream {
	if len(dateCols) == 0 {
		return s.fail(&ArityError{Op: "fill"})
	}
	s.statements = append(s.statements, &fillStatement{
		stream:    s,
		dateCols:  dateCols,
		dateType:  dateType,
		partition: partition,
	})
	return s
}

// fail records the first construction error and leaves the statement list
// untouched.
func (s *Stream) fail(err error) *Stream {
	if s.err == nil {
		s.err = err
	}
	return s
}

// CogroupInput pairs an input stream with the key expression it is matched
// on in a cogroup.
type CogroupInput struct {
	Stream *Stream
	Key    Expression
}

// By is shorthand for building a CogroupInput.
func By(stream *Stream, key Expression) CogroupInput {
	return CogroupInput{Stream: stream, Key: key}
}

// Cogroup combines streams with an inner join. See CogroupBy.
func Cogroup(inputs ...CogroupInput) *Stream {
	return CogroupBy(JoinInner, inputs...)
}

// CogroupBy combines two or more streams into a new stream, matching rows on
// each input's key expression.
//
// Cogrouping implies multiple streams in one query, so every input's
// reference must stay unique in the final text. The i-th input's id is
// incremented by i - incremented, not assigned, because an input that is
// itself a cogroup result already carries a nonzero id and must shift
// further. The new stream's id is one past the maximum observed. Statement
// text resolves references at render time, so the shift retroactively
// applies to every statement the inputs already hold.
//
// Convention expects at least two inputs; a single input is accepted. An
// empty input list records an ArityError. Reusing a stream across two
// cogroup calls is not supported: the shifts can collide.
func CogroupBy(joinType JoinType, inputs ...CogroupInput) *Stream {
	s := &Stream{}
	if len(inputs) == 0 {
		return s.fail(&ArityError{Op: "cogroup"})
	}

	maxID := 0
	for i, in := range inputs {
		in.Stream.id += i
		if in.Stream.id > maxID {
			maxID = in.Stream.id
		}
		if in.Stream.err != nil && s.err == nil {
			s.err = in.Stream.err
		}
	}
	s.id = maxID + 1

	s.statements = append(s.statements, &cogroupStatement{
		stream:   s,
		inputs:   inputs,
		joinType: joinType,
	})
	return s
}
