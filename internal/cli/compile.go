package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/NarrativeScience/gosaql/internal/plan"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Output string // output file path
}

// CompileResult is the JSON payload for a successful compilation.
type CompileResult struct {
	QueryID    string `json:"query_id"`
	Query      string `json:"query"`
	Streams    int    `json:"streams"`
	Statements int    `json:"statements"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <plan>",
		Short: "Compile a query plan to SAQL text",
		Long: `Compile a declarative query plan to SAQL query text.

The plan is a .cue file (top-level "plan" field), a directory of CUE files,
or a .yaml file. The plan is validated, its streams are assembled with the
builder, and the output stream's rendering is printed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runCompile(opts *CompileOptions, planPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	doc, err := LoadPlan(planPath)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	formatter.VerboseLog("Loaded plan with %d stream(s) from %s", len(doc.Streams), planPath)

	stream, err := plan.Compile(doc)
	if err != nil {
		if fmtErr := formatter.Error(compileErrorCode(err), err.Error(), nil); fmtErr != nil {
			return fmtErr
		}
		return NewExitError(ExitFailure, "plan compilation failed")
	}

	query := stream.String()

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(query+"\n"), 0644); err != nil {
			if fmtErr := formatter.Error(ErrCodeWriteFailed, "writing output file: "+err.Error(), nil); fmtErr != nil {
				return fmtErr
			}
			return NewExitError(ExitCommandError, "writing output file failed")
		}
		formatter.VerboseLog("Wrote query to %s", opts.Output)
	}

	if opts.Format == "json" {
		result := CompileResult{
			QueryID:    uuid.Must(uuid.NewV7()).String(),
			Query:      query,
			Streams:    len(doc.Streams),
			Statements: strings.Count(query, "\n") + 1,
		}
		return formatter.Success(result)
	}
	return formatter.Success(query)
}

// compileErrorCode picks the most specific stable code for a compile error.
func compileErrorCode(err error) string {
	var planErr *plan.Error
	if errors.As(err, &planErr) {
		return planErr.Code
	}
	return ErrCodeGeneric
}

// outputLoadError reports a loader failure and converts it to a command
// error exit code.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		if fmtErr := formatter.Error(loadErr.Code, loadErr.Message, loadErr.Path); fmtErr != nil {
			return fmtErr
		}
		return NewExitError(ExitCommandError, "loading plan failed")
	}
	if fmtErr := formatter.Error(ErrCodeGeneric, err.Error(), nil); fmtErr != nil {
		return fmtErr
	}
	return NewExitError(ExitCommandError, "loading plan failed")
}
