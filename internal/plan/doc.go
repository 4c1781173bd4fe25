// Package plan defines the declarative query-plan document format and its
// compilation to saql streams.
//
// A plan document names one or more streams, each sourced from a dataset
// load or a cogroup of previously defined streams, followed by a list of
// pipeline operations. Documents are authored in CUE or YAML (see
// internal/cli for loading) and decode into the types here.
//
// The flow is load → Validate → Compile:
//   - Validate performs structural checks (collect-all) and reports every
//     problem as a *plan.Error with a stable code and a path into the
//     document.
//   - Compile assembles the named streams in document order with the saql
//     builder and returns the stream named by output.
//
// This package contains no I/O. All other internal packages import plan;
// plan imports only the saql builder.
package plan
