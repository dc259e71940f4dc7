// Package preflight verifies that the executables a generated project needs
// are installed before anything is written to disk.
package preflight

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-mcpc/internal/errors"
)

// ErrMissingDependencies is matched by every MissingDependenciesError
var ErrMissingDependencies = errors.New("missing required dependencies")

// Dependency is a required executable that could not be found
type Dependency struct {
	Name                string `json:"name"`
	InstallInstructions string `json:"install_instructions,omitempty"`
}

// MissingDependenciesError reports every dependency that failed the check,
// in check order.
type MissingDependenciesError struct {
	Dependencies []Dependency
}

func (e *MissingDependenciesError) Error() string {
	names := make([]string, len(e.Dependencies))
	for i, d := range e.Dependencies {
		names[i] = d.Name
	}
	return fmt.Sprintf("%s: %s", ErrMissingDependencies, strings.Join(names, ", "))
}

// Unwrap makes errors.Is(err, ErrMissingDependencies) hold
func (e *MissingDependenciesError) Unwrap() error {
	return ErrMissingDependencies
}
