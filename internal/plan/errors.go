package plan

import "fmt"

// Error code constants - stable across CLI output formats.
const (
	ErrCodeNoStreams      = "P001" // document defines no streams
	ErrCodeDuplicateName  = "P002" // stream name defined twice
	ErrCodeNoSource       = "P003" // stream has neither load nor cogroup
	ErrCodeTwoSources     = "P004" // stream has both load and cogroup
	ErrCodeUnknownStream  = "P005" // cogroup input references an undefined or later stream
	ErrCodeNoOutput       = "P006" // document names no output stream
	ErrCodeUnknownOutput  = "P007" // output names an undefined stream
	ErrCodeOpShape        = "P008" // op sets zero or several operation fields
	ErrCodeExprShape      = "P009" // expression sets zero or several kinds
	ErrCodeUnknownOp      = "P010" // unknown binary operator
	ErrCodeUnknownJoin    = "P011" // unknown cogroup join type
	ErrCodeUnknownDir     = "P012" // unknown sort direction
	ErrCodeUnknownDate    = "P013" // unknown fill date type
	ErrCodeUnknownAgg     = "P014" // unknown aggregate function
	ErrCodeLimitRange     = "P015" // limit outside (0, 10000]
	ErrCodeEmptyArguments = "P016" // operation with an empty argument list
)

// Error is a structural problem in a plan document.
type Error struct {
	Code    string // stable P-code
	Path    string // location in the document, e.g. "streams[1].ops[0]"
	Message string
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
