package plan

// Document is a complete query plan: a set of named streams and the name of
// the stream whose rendering is the query output.
type Document struct {
	Streams []StreamDef `yaml:"streams" json:"streams"`
	Output  string      `yaml:"output" json:"output"`
}

// StreamDef defines one named stream. Exactly one of Load and Cogroup must
// be set; Ops apply in order after the source.
type StreamDef struct {
	Name    string      `yaml:"name" json:"name"`
	Load    string      `yaml:"load,omitempty" json:"load,omitempty"`
	Cogroup *CogroupDef `yaml:"cogroup,omitempty" json:"cogroup,omitempty"`
	Ops     []Op        `yaml:"ops,omitempty" json:"ops,omitempty"`
}

// CogroupDef combines previously defined streams. Join defaults to inner.
type CogroupDef struct {
	Join   string         `yaml:"join,omitempty" json:"join,omitempty"`
	Inputs []CogroupInput `yaml:"inputs" json:"inputs"`
}

// CogroupInput references an earlier stream by name and gives the key
// expression rows are matched on.
type CogroupInput struct {
	Stream string   `yaml:"stream" json:"stream"`
	Key    *ExprDef `yaml:"key" json:"key"`
}

// Op is one pipeline operation. Exactly one field must be set.
type Op struct {
	Foreach []ExprDef  `yaml:"foreach,omitempty" json:"foreach,omitempty"`
	Group   []ExprDef  `yaml:"group,omitempty" json:"group,omitempty"`
	Filter  []ExprDef  `yaml:"filter,omitempty" json:"filter,omitempty"`
	Order   []OrderDef `yaml:"order,omitempty" json:"order,omitempty"`
	Limit   *int       `yaml:"limit,omitempty" json:"limit,omitempty"`
	Fill    *FillDef   `yaml:"fill,omitempty" json:"fill,omitempty"`
}

// OrderDef pairs a column with a sort direction ("asc" when empty).
type OrderDef struct {
	Field string `yaml:"field" json:"field"`
	Dir   string `yaml:"dir,omitempty" json:"dir,omitempty"`
}

// FillDef fills missing dates across the given date columns. DateType is
// one of the SAQL date layout strings (Y, Y-M, Y-M-D, Y-Q, Y-W).
type FillDef struct {
	DateCols  []string `yaml:"dateCols" json:"dateCols"`
	DateType  string   `yaml:"dateType" json:"dateType"`
	Partition string   `yaml:"partition,omitempty" json:"partition,omitempty"`
}

// ExprDef is a scalar expression. Exactly one of Field, Lit, Agg, and
// Binary must be set; As optionally aliases the result.
//
// Lit holds the literal through a pointer so that an absent key and a
// present value are distinguishable. An explicit null literal is not
// representable in a document.
type ExprDef struct {
	Field  string     `yaml:"field,omitempty" json:"field,omitempty"`
	Lit    *any       `yaml:"lit,omitempty" json:"lit,omitempty"`
	Agg    *AggDef    `yaml:"agg,omitempty" json:"agg,omitempty"`
	Binary *BinaryDef `yaml:"binary,omitempty" json:"binary,omitempty"`
	As     string     `yaml:"as,omitempty" json:"as,omitempty"`
}

// AggDef invokes an aggregate function over a column. Of is ignored for
// count, which takes no argument.
type AggDef struct {
	Fn string `yaml:"fn" json:"fn"`
	Of string `yaml:"of,omitempty" json:"of,omitempty"`
}

// BinaryDef composes two expressions with a named operator.
type BinaryDef struct {
	Op    string   `yaml:"op" json:"op"`
	Left  *ExprDef `yaml:"left" json:"left"`
	Right *ExprDef `yaml:"right" json:"right"`
}
