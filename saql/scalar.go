package saql

import (
	"fmt"
	"strconv"
	"strings"
)

// Field references a dataset column by name.
type Field struct {
	expr
	name string
}

// NewField creates a column reference. The name is escaped at render time,
// so raw dataset column names (including spaces and quotes) are accepted.
func NewField(name string) *Field {
	return &Field{name: name}
}

// Alias sets the output alias and returns the same field for chaining.
func (f *Field) Alias(name string) *Field {
	f.setAlias(name)
	return f
}

func (f *Field) String() string { return toString(f) }

func (f *Field) render() string { return EscapeIdentifier(f.name) }

// Literal is a constant value embedded in the query text.
type Literal struct {
	expr
	value any
}

// Lit creates a literal from a Go value. Supported kinds: string, all
// integer types, float32/float64, bool, nil (renders null), Expression
// (rendered through the alias chokepoint), and []any of the same kinds
// (renders a bracketed list). Unsupported kinds render with %v formatting.
func Lit(value any) *Literal {
	return &Literal{value: value}
}

// Str creates a string literal.
func Str(s string) *Literal { return Lit(s) }

// Int creates an integer literal.
func Int(n int64) *Literal { return Lit(n) }

// Float creates a floating-point literal.
func Float(f float64) *Literal { return Lit(f) }

// Bool creates a boolean literal.
func Bool(b bool) *Literal { return Lit(b) }

// Null creates a null literal.
func Null() *Literal { return Lit(nil) }

// List creates a bracketed list literal, as used with the in operator.
func List(items ...any) *Literal {
	return Lit(items)
}

// Alias sets the output alias and returns the same literal for chaining.
func (l *Literal) Alias(name string) *Literal {
	l.setAlias(name)
	return l
}

func (l *Literal) String() string { return toString(l) }

func (l *Literal) render() string { return renderValue(l.value) }

func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return QuoteString(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case Expression:
		return val.String()
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = renderValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// operator couples a SAQL token with its binding strength. Higher prec
// binds tighter.
type operator struct {
	token string
	prec  int
}

var (
	opOr      = operator{"||", 1}
	opAnd     = operator{"&&", 2}
	opEq      = operator{"==", 3}
	opNe      = operator{"!=", 3}
	opLt      = operator{"<", 3}
	opLe      = operator{"<=", 3}
	opGt      = operator{">", 3}
	opGe      = operator{">=", 3}
	opIn      = operator{"in", 3}
	opNotIn   = operator{"not in", 3}
	opMatches = operator{"matches", 3}
	opAdd     = operator{"+", 4}
	opSub     = operator{"-", 4}
	opMul     = operator{"*", 5}
	opDiv     = operator{"/", 5}
	opNot     = operator{"!", 6}
	opNeg     = operator{"-", 6}
)

// Operation composes one or two expressions with a SAQL operator. Operands
// that are themselves operations of lower precedence are parenthesized at
// render time, so the printed text groups the way the object graph does.
type Operation struct {
	expr
	op    operator
	left  Expression // nil for unary operations
	right Expression
}

// Alias sets the output alias and returns the same operation for chaining.
func (o *Operation) Alias(name string) *Operation {
	o.setAlias(name)
	return o
}

func (o *Operation) String() string { return toString(o) }

func (o *Operation) render() string {
	if o.left == nil {
		return o.op.token + o.operand(o.right)
	}
	return o.operand(o.left) + " " + o.op.token + " " + o.operand(o.right)
}

// operand renders a child through the chokepoint, wrapping it in parens
// when it binds more loosely than this operation.
func (o *Operation) operand(e Expression) string {
	s := e.String()
	if child, ok := e.(*Operation); ok && child.op.prec < o.op.prec {
		return "(" + s + ")"
	}
	return s
}

func binary(op operator, left, right Expression) *Operation {
	return &Operation{op: op, left: left, right: right}
}

// Eq builds left == right.
func Eq(left, right Expression) *Operation { return binary(opEq, left, right) }

// Ne builds left != right.
func Ne(left, right Expression) *Operation { return binary(opNe, left, right) }

// Lt builds left < right.
func Lt(left, right Expression) *Operation { return binary(opLt, left, right) }

// Le builds left <= right.
func Le(left, right Expression) *Operation { return binary(opLe, left, right) }

// Gt builds left > right.
func Gt(left, right Expression) *Operation { return binary(opGt, left, right) }

// Ge builds left >= right.
func Ge(left, right Expression) *Operation { return binary(opGe, left, right) }

// In builds left in right, where right is typically a List literal.
func In(left, right Expression) *Operation { return binary(opIn, left, right) }

// NotIn builds left not in right.
func NotIn(left, right Expression) *Operation { return binary(opNotIn, left, right) }

// Matches builds left matches right for substring matching.
func Matches(left, right Expression) *Operation { return binary(opMatches, left, right) }

// Add builds left + right.
func Add(left, right Expression) *Operation { return binary(opAdd, left, right) }

// Sub builds left - right.
func Sub(left, right Expression) *Operation { return binary(opSub, left, right) }

// Mul builds left * right.
func Mul(left, right Expression) *Operation { return binary(opMul, left, right) }

// Div builds left / right.
func Div(left, right Expression) *Operation { return binary(opDiv, left, right) }

// And builds left && right.
func And(left, right Expression) *Operation { return binary(opAnd, left, right) }

// Or builds left || right.
func Or(left, right Expression) *Operation { return binary(opOr, left, right) }

// Not builds ! operand.
func Not(operand Expression) *Operation {
	return &Operation{op: opNot, right: operand}
}

// Neg builds - operand.
func Neg(operand Expression) *Operation {
	return &Operation{op: opNeg, right: operand}
}
