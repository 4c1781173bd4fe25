package saql

// Expression is the root contract for anything that can render to SAQL text
// and optionally carry an output alias.
//
// This is a sealed interface - only types in this package implement it.
// The unexported render method keeps rendering behind a single chokepoint:
// all statement renderers call String(), which appends the alias suffix, so
// no caller can produce an expression's text with the alias dropped.
type Expression interface {
	// String renders the expression, including " as <alias>" when an alias
	// is set. This is the only public rendering entry point.
	String() string

	// render produces the unaliased textual form. Must be pure: no side
	// effects, no dependency on anything but the expression's own fields
	// (for streams, the owning stream's current id counts as its own field).
	render() string

	// aliasName returns the alias, or "" when unset.
	aliasName() string
}

// expr carries the alias shared by every expression type.
// The zero value (no alias) is ready to use.
type expr struct {
	alias string
}

func (e *expr) aliasName() string { return e.alias }

// setAlias records the alias in place. Last write wins; overwriting a
// previous alias is silent.
func (e *expr) setAlias(name string) { e.alias = name }

// toString is the single string-conversion chokepoint. Every String()
// implementation in this package delegates here.
func toString(e Expression) string {
	s := e.render()
	if a := e.aliasName(); a != "" {
		s += " as " + EscapeIdentifier(a)
	}
	return s
}
