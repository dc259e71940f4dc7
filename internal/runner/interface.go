// Package runner abstracts the external executables mcpc probes and invokes.
package runner

import (
	"context"
	"strings"
)

// Runner resolves and runs external executables
type Runner interface {
	// LookPath resolves an executable name against PATH
	LookPath(name string) (string, error)

	// Run executes name with args in dir and blocks until it exits.
	// A non-zero exit status is reported through Result.ExitCode with a nil
	// error; the error is only set when the process could not be started.
	Run(ctx context.Context, dir, name string, args ...string) (*Result, error)
}

// Result captures the outcome of a finished process
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status zero
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// Output returns the trimmed stderr, falling back to stdout when stderr is empty
func (r *Result) Output() string {
	if r == nil {
		return ""
	}
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}
