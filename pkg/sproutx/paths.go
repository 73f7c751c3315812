package sproutx

import (
	"path/filepath"

	"github.com/go-sprout/sprout"

	"github.com/sagikazarmark/upset-launcher/launcher"
)

// PathsRegistry struct implements the [sprout.Registry] interface, embedding the Handler to access shared functionalities.
type PathsRegistry struct {
	handler sprout.Handler
}

// NewPathsRegistry initializes and returns a new [sprout.Registry].
func NewPathsRegistry() *PathsRegistry {
	return &PathsRegistry{}
}

// Implements [sprout.Registry].
func (r *PathsRegistry) UID() string {
	return "sagikazarmark/upset-launcher.paths"
}

// Implements [sprout.Registry].
func (r *PathsRegistry) LinkHandler(fh sprout.Handler) error {
	r.handler = fh

	return nil
}

// Implements [sprout.Registry].
func (r *PathsRegistry) RegisterFunctions(funcsMap sprout.FunctionMap) error {
	sprout.AddFunction(funcsMap, "venvPython", r.VenvPython)
	sprout.AddFunction(funcsMap, "joinPath", r.JoinPath)

	return nil
}

// VenvPython returns the platform specific interpreter of the virtual environment in root.
func (r *PathsRegistry) VenvPython(root string) string {
	return launcher.VenvInterpreter(root)
}

func (r *PathsRegistry) JoinPath(elem ...string) string {
	return filepath.Join(elem...)
}
