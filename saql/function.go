package saql

import "strings"

// Call is a SAQL function invocation, usable wherever a field is accepted.
type Call struct {
	expr
	name string
	args []Expression
}

// NewCall creates an invocation of an arbitrary SAQL function. The name is
// emitted verbatim; arguments render through the alias chokepoint.
func NewCall(name string, args ...Expression) *Call {
	return &Call{name: name, args: args}
}

// Alias sets the output alias and returns the same call for chaining.
func (c *Call) Alias(name string) *Call {
	c.setAlias(name)
	return c
}

func (c *Call) String() string { return toString(c) }

func (c *Call) render() string {
	parts := make([]string, len(c.args))
	for i, arg := range c.args {
		parts[i] = arg.String()
	}
	return c.name + "(" + strings.Join(parts, ", ") + ")"
}

// Count builds count(), the row count aggregate.
func Count() *Call { return NewCall("count") }

// Sum builds sum(field).
func Sum(field Expression) *Call { return NewCall("sum", field) }

// Avg builds avg(field).
func Avg(field Expression) *Call { return NewCall("avg", field) }

// Min builds min(field).
func Min(field Expression) *Call { return NewCall("min", field) }

// Max builds max(field).
func Max(field Expression) *Call { return NewCall("max", field) }

// Unique builds unique(field), the distinct count aggregate.
func Unique(field Expression) *Call { return NewCall("unique", field) }

// First builds first(field).
func First(field Expression) *Call { return NewCall("first", field) }

// Last builds last(field).
func Last(field Expression) *Call { return NewCall("last", field) }
