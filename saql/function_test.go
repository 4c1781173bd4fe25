package saql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCall_Render(t *testing.T) {
	amount := func() *Field { return NewField("Amount") }

	testCases := []struct {
		name     string
		call     *Call
		expected string
	}{
		{name: "count", call: Count(), expected: "count()"},
		{name: "sum", call: Sum(amount()), expected: "sum('Amount')"},
		{name: "avg", call: Avg(amount()), expected: "avg('Amount')"},
		{name: "min", call: Min(amount()), expected: "min('Amount')"},
		{name: "max", call: Max(amount()), expected: "max('Amount')"},
		{name: "unique", call: Unique(NewField("AccountId")), expected: "unique('AccountId')"},
		{name: "first", call: First(NewField("Stage")), expected: "first('Stage')"},
		{name: "last", call: Last(NewField("Stage")), expected: "last('Stage')"},
		{
			name:     "generic call with several args",
			call:     NewCall("coalesce", NewField("A"), NewField("B"), Int(0)),
			expected: "coalesce('A', 'B', 0)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.call.String())
		})
	}
}

func TestCall_InsideOperation(t *testing.T) {
	op := Gt(Sum(NewField("Amount")), Int(1000))
	assert.Equal(t, "sum('Amount') > 1000", op.String())
}
