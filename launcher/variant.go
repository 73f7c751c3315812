package launcher

import (
	"path/filepath"
	"runtime"
)

const (
	// PathListEnv is the module search path variable extended with the source directory.
	PathListEnv = "PYTHONPATH"

	// VerbosityEnv informs the test suite about the requested log verbosity.
	VerbosityEnv = "UPSET_VERBOSITY"

	// InteractionEnv informs the test suite whether interactive tests may run.
	InteractionEnv = "UPSET_INTERACTION"

	DefaultTestDir   = "tests"
	DefaultSourceDir = "src"

	PlainVariant      = "plain"
	ConfiguredVariant = "configured"
)

// EnvVar is a single environment assignment.
type EnvVar struct {
	Name  string
	Value string
}

func (e EnvVar) String() string {
	return e.Name + "=" + e.Value
}

// Variant describes one way of launching the test suite.
type Variant struct {
	Name        string
	Description string

	// Interpreter is either a bare executable name looked up in PATH
	// or a path (relative paths are resolved against the project root).
	Interpreter string

	// Env is applied on top of the inherited environment, in order.
	Env []EnvVar

	// TestDir is the directory test discovery starts from (relative to the project root).
	TestDir string

	// SourceDir is appended to the module search path (relative to the project root).
	SourceDir string
}

func (v Variant) testDir() string {
	if v.TestDir == "" {
		return DefaultTestDir
	}

	return v.TestDir
}

func (v Variant) sourceDir() string {
	if v.SourceDir == "" {
		return DefaultSourceDir
	}

	return v.SourceDir
}

// Plain runs the suite with the system interpreter.
func Plain() Variant {
	return Variant{
		Name:        PlainVariant,
		Description: "System interpreter, inherited environment",
		Interpreter: "python3",
		TestDir:     DefaultTestDir,
		SourceDir:   DefaultSourceDir,
	}
}

// Configured runs the suite with the project-local virtual environment
// and forces verbose, non-interactive test behavior.
func Configured() Variant {
	return Variant{
		Name:        ConfiguredVariant,
		Description: "Project virtual environment, verbose and non-interactive",
		Interpreter: VenvInterpreter(""),
		Env: []EnvVar{
			{Name: VerbosityEnv, Value: "1"},
			{Name: InteractionEnv, Value: "0"},
		},
		TestDir:   DefaultTestDir,
		SourceDir: DefaultSourceDir,
	}
}

// Builtin returns the variants available without a definition file.
func Builtin() []Variant {
	return []Variant{Plain(), Configured()}
}

// VenvInterpreter returns the interpreter path of the virtual environment in root.
// An empty root yields a path relative to the project root.
func VenvInterpreter(root string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(root, ".venv", "Scripts", "python.exe")
	}

	return filepath.Join(root, ".venv", "bin", "python3")
}
