package saql

// JoinType determines how records from cogrouped streams are included in
// the combined stream. Each value renders as the exact lowercase keyword the
// SAQL grammar expects.
type JoinType string

const (
	JoinInner JoinType = "inner"
	JoinLeft  JoinType = "left"
	JoinRight JoinType = "right"
	JoinFull  JoinType = "full"
)

// SortOrder is the direction keyword in an order statement.
// The zero value is treated as ascending.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FillDateType identifies the date column layout a fill statement formats
// injected dates with. Values are the literal dateCols type strings from the
// SAQL grammar.
type FillDateType string

const (
	FillYear         FillDateType = "Y"
	FillYearMonth    FillDateType = "Y-M"
	FillYearMonthDay FillDateType = "Y-M-D"
	FillYearQuarter  FillDateType = "Y-Q"
	FillYearWeek     FillDateType = "Y-W"
)
