package git

import (
	"context"
)

// Backend names accepted by NewClient
const (
	BackendExec     = "exec"
	BackendEmbedded = "embedded"
)

// GitClient provides an abstraction over git operations for testability
//
// mcpc only needs to create repositories: generated projects start with an
// empty repository and no commits.
type GitClient interface {
	// Init creates an empty repository in dir
	Init(dir string) error

	// IsRepo reports whether dir is inside a git work tree
	IsRepo(dir string) (bool, error)

	// Context support for the blocking exec backend
	WithContext(ctx context.Context) GitClient
}

// Options configure repository initialisation
type Options struct {
	// InitialBranch names the branch HEAD points at. Empty uses git's default.
	InitialBranch string
}
