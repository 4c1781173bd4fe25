package saql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_Render(t *testing.T) {
	assert.Equal(t, "'Amount'", NewField("Amount").String())
}

func TestField_EscapesReservedCharacters(t *testing.T) {
	testCases := []struct {
		name     string
		field    string
		expected string
	}{
		{name: "plain", field: "Name", expected: "'Name'"},
		{name: "spaces", field: "Opportunity Owner", expected: "'Opportunity Owner'"},
		{name: "single quote", field: "O'Brien", expected: `'O\'Brien'`},
		{name: "backslash", field: `a\b`, expected: `'a\\b'`},
		{name: "reserved keyword", field: "order", expected: "'order'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewField(tc.field).String())
		})
	}
}

func TestLiteral_Render(t *testing.T) {
	testCases := []struct {
		name     string
		lit      *Literal
		expected string
	}{
		{name: "string", lit: Str("Closed Won"), expected: `"Closed Won"`},
		{name: "string with quotes", lit: Str(`say "hi"`), expected: `"say \"hi\""`},
		{name: "int", lit: Int(42), expected: "42"},
		{name: "negative int", lit: Int(-7), expected: "-7"},
		{name: "float", lit: Float(2.5), expected: "2.5"},
		{name: "bool true", lit: Bool(true), expected: "true"},
		{name: "bool false", lit: Bool(false), expected: "false"},
		{name: "null", lit: Null(), expected: "null"},
		{name: "list", lit: List("a", "b"), expected: `["a", "b"]`},
		{name: "mixed list", lit: List("a", 1, true), expected: `["a", 1, true]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.lit.String())
		})
	}
}

func TestOperation_Render(t *testing.T) {
	amount := func() *Field { return NewField("Amount") }

	testCases := []struct {
		name     string
		op       Expression
		expected string
	}{
		{name: "eq", op: Eq(amount(), Int(10)), expected: "'Amount' == 10"},
		{name: "ne", op: Ne(amount(), Int(10)), expected: "'Amount' != 10"},
		{name: "gt", op: Gt(amount(), Int(10)), expected: "'Amount' > 10"},
		{name: "ge", op: Ge(amount(), Int(10)), expected: "'Amount' >= 10"},
		{name: "lt", op: Lt(amount(), Int(10)), expected: "'Amount' < 10"},
		{name: "le", op: Le(amount(), Int(10)), expected: "'Amount' <= 10"},
		{name: "in", op: In(NewField("Stage"), List("Won", "Lost")), expected: `'Stage' in ["Won", "Lost"]`},
		{name: "not in", op: NotIn(NewField("Stage"), List("Won")), expected: `'Stage' not in ["Won"]`},
		{name: "matches", op: Matches(NewField("Name"), Str("Acme")), expected: `'Name' matches "Acme"`},
		{name: "add", op: Add(amount(), Int(1)), expected: "'Amount' + 1"},
		{name: "mul", op: Mul(amount(), Int(2)), expected: "'Amount' * 2"},
		{name: "not", op: Not(Eq(amount(), Int(10))), expected: "!('Amount' == 10)"},
		{name: "neg", op: Neg(amount()), expected: "-'Amount'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.op.String())
		})
	}
}

func TestOperation_PrecedenceParens(t *testing.T) {
	a := Eq(NewField("a"), Int(1))
	b := Eq(NewField("b"), Int(2))
	c := Eq(NewField("c"), Int(3))

	testCases := []struct {
		name     string
		op       Expression
		expected string
	}{
		{
			name:     "or inside and is wrapped",
			op:       And(Or(a, b), c),
			expected: "('a' == 1 || 'b' == 2) && 'c' == 3",
		},
		{
			name:     "and inside or stays flat",
			op:       Or(And(a, b), c),
			expected: "'a' == 1 && 'b' == 2 || 'c' == 3",
		},
		{
			name:     "additive inside multiplicative is wrapped",
			op:       Mul(Add(NewField("x"), Int(1)), Int(2)),
			expected: "('x' + 1) * 2",
		},
		{
			name:     "multiplicative inside additive stays flat",
			op:       Add(Mul(NewField("x"), Int(2)), Int(1)),
			expected: "'x' * 2 + 1",
		},
		{
			name:     "comparison of arithmetic stays flat",
			op:       Gt(Add(NewField("x"), Int(1)), Int(10)),
			expected: "'x' + 1 > 10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.op.String())
		})
	}
}

func TestAlias_AppendsEscapedSuffix(t *testing.T) {
	assert.Equal(t, "'Amount' as 'amt'", NewField("Amount").Alias("amt").String())
	assert.Equal(t, `'Amount' as 'total \'amt\''`, NewField("Amount").Alias("total 'amt'").String())
	assert.Equal(t, "count() as 'n'", Count().Alias("n").String())
}

func TestAlias_LastWriteWins(t *testing.T) {
	f := NewField("Amount").Alias("a").Alias("b")
	assert.Equal(t, "'Amount' as 'b'", f.String())
}

func TestAlias_MutatesInPlace(t *testing.T) {
	f := NewField("Amount")
	same := f.Alias("amt")
	assert.Same(t, f, same)
	assert.Equal(t, "'Amount' as 'amt'", f.String())
}
