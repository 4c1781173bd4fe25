package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/NarrativeScience/gosaql/internal/plan"
)

// ValidationIssue is one reported plan problem.
type ValidationIssue struct {
	Code    string `json:"code"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <plan>",
		Short: "Validate a query plan without compiling",
		Long: `Validate a declarative query plan without emitting SAQL.

Performs structural checks and reports every problem found with a stable
code and a path into the document. Faster feedback than compile during plan
authoring.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, planPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	doc, err := LoadPlan(planPath)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	formatter.VerboseLog("Loaded plan with %d stream(s) from %s", len(doc.Streams), planPath)

	errs := plan.Validate(doc)
	if len(errs) == 0 {
		if opts.Format == "json" {
			return formatter.Success(ValidationResult{Valid: true})
		}
		return formatter.Success("Plan is valid")
	}

	issues := make([]ValidationIssue, 0, len(errs))
	for _, err := range errs {
		var planErr *plan.Error
		if errors.As(err, &planErr) {
			issues = append(issues, ValidationIssue{
				Code:    planErr.Code,
				Path:    planErr.Path,
				Message: planErr.Message,
			})
			continue
		}
		issues = append(issues, ValidationIssue{Code: ErrCodeGeneric, Message: err.Error()})
	}

	if opts.Format == "json" {
		if err := formatter.Error(issues[0].Code, "plan validation failed", ValidationResult{Valid: false, Issues: issues}); err != nil {
			return err
		}
	} else {
		for _, issue := range issues {
			if err := formatter.Error(issue.Code, issue.Message, issue.Path); err != nil {
				return err
			}
		}
	}

	return NewExitError(ExitFailure, "plan validation failed")
}
