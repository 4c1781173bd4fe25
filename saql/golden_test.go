package saql

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Golden files pin the exact rendered text of representative queries.
// Regenerate with:
//
//	go test ./saql -update
func TestGolden_RenderedQueries(t *testing.T) {
	testCases := []struct {
		name  string
		build func() *Stream
	}{
		{
			name: "pipeline",
			build: func() *Stream {
				return Load("opportunities").
					Filter(Eq(NewField("Stage"), Str("Closed Won"))).
					Group(NewField("Owner")).
					Foreach(NewField("Owner"), Sum(NewField("Amount")).Alias("total"), Count().Alias("n")).
					Order(Desc(NewField("total"))).
					Limit(25)
			},
		},
		{
			name: "cogroup_left_join",
			build: func() *Stream {
				opps := Load("opportunities").Group(NewField("AccountId"))
				accounts := Load("accounts")
				return CogroupBy(JoinLeft,
					By(opps, NewField("AccountId")),
					By(accounts, NewField("Id")),
				).
					Foreach(NewField("Name"), Sum(NewField("Amount")).Alias("total")).
					Order(Asc(NewField("Name")))
			},
		},
		{
			name: "fill_by_month",
			build: func() *Stream {
				return Load("cases").
					Fill([]Expression{NewField("Year"), NewField("Month")}, FillYearMonth, NewField("Type")).
					Group(NewField("Year"), NewField("Month")).
					Foreach(NewField("Year"), NewField("Month"), Count().Alias("cases"))
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.build()
			require.NoError(t, s.Err())
			g.Assert(t, tc.name, []byte(s.String()))
		})
	}
}
