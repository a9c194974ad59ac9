// Package config holds the small set of process-wide knobs the Typer
// and its test/demo tooling share, mirroring the teacher's convention
// of a single constants file rather than scattering package-level vars.
package config

// Version is the current module version.
// Set at build time via -ldflags or by writing to this file.
var Version = "0.1.0"

// IsTestMode indicates the process is running under `go test` or the
// demo harness's `--test` flag, so callers can, e.g., suppress
// colorized output or mint deterministic session ids in logs.
var IsTestMode = false

// DefaultGroupName names the generic "Object" group. The stub and YAML
// environments assign no group to any builtin on their own; a group is
// set only by the environment document or SetBuiltin.
const DefaultGroupName = "Object"

// Names of the handful of JS globals a fuzzer's generated programs
// reference most often. The declarative (YAML) environment format does
// not preregister them: a builtin is known only once an environment
// document or SetBuiltin registers it.
const (
	ArrayBuiltinName    = "Array"
	ObjectBuiltinName   = "Object"
	FunctionBuiltinName = "Function"
	MathBuiltinName     = "Math"
	JSONBuiltinName     = "JSON"
)
