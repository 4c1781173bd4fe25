package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"gopkg.in/yaml.v3"

	"github.com/NarrativeScience/gosaql/internal/plan"
)

// Error code constants - unified across all CLI commands. Plan validation
// problems carry their own P-codes from the plan package.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Path not found
	ErrCodeUnsupported = "E003" // Unsupported plan file extension
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeBuildFailed = "E005" // CUE build failed
	ErrCodeDecodeError = "E006" // Decoding into the plan document failed
	ErrCodeWriteFailed = "E007" // File write error
)

// LoadError represents an error that occurred during plan loading.
type LoadError struct {
	Code    string
	Message string
	Path    string // offending file or directory, if known
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadPlan reads a plan document from path. A .yaml/.yml file is
// unmarshalled directly; a .cue file or a directory of CUE files is built
// with the CUE loader and its top-level "plan" field decoded. The returned
// document is not yet validated.
func LoadPlan(path string) (*plan.Document, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: "plan not found", Path: path}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing plan: %v", err), Path: path}
	}

	if info.IsDir() {
		return loadCUEPlan(path, []string{"."})
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return loadYAMLPlan(path)
	case ".cue":
		return loadCUEPlan(filepath.Dir(path), []string{filepath.Base(path)})
	default:
		return nil, &LoadError{Code: ErrCodeUnsupported, Message: "plan files must be .cue, .yaml, or .yml", Path: path}
	}
}

func loadYAMLPlan(path string) (*plan.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading plan: %v", err), Path: path}
	}

	var doc plan.Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeError, Message: fmt.Sprintf("decoding YAML plan: %v", err), Path: path}
	}
	return &doc, nil
}

func loadCUEPlan(dir string, args []string) (*plan.Document, error) {
	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances(args, cfg)
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded", Path: dir}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err), Path: dir}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err), Path: dir}
	}

	planVal := value.LookupPath(cue.ParsePath("plan"))
	if !planVal.Exists() {
		return nil, &LoadError{Code: ErrCodeDecodeError, Message: `no top-level "plan" field found`, Path: dir}
	}

	var doc plan.Document
	if err := planVal.Decode(&doc); err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeError, Message: fmt.Sprintf("decoding plan: %v", err), Path: dir}
	}
	return &doc, nil
}
