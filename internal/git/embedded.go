package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// EmbeddedGitClient implements GitClient with go-git, so no git binary is
// needed to initialise the repository.
type EmbeddedGitClient struct {
	opts Options
}

// NewEmbeddedGitClient creates a new EmbeddedGitClient
func NewEmbeddedGitClient(opts Options) *EmbeddedGitClient {
	return &EmbeddedGitClient{opts: opts}
}

// WithContext returns the client unchanged; go-git init does not block on I/O worth cancelling
func (g *EmbeddedGitClient) WithContext(ctx context.Context) GitClient {
	return g
}

// Init creates an empty repository in dir
func (g *EmbeddedGitClient) Init(dir string) error {
	opts := &gogit.PlainInitOptions{}
	if g.opts.InitialBranch != "" {
		opts.InitOptions.DefaultBranch = plumbing.NewBranchReferenceName(g.opts.InitialBranch)
	}

	if _, err := gogit.PlainInitWithOptions(dir, opts); err != nil {
		return fmt.Errorf("failed to initialize git repository: %w", err)
	}
	return nil
}

// IsRepo checks if dir or one of its parents holds a repository
func (g *EmbeddedGitClient) IsRepo(dir string) (bool, error) {
	_, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open repository: %w", err)
	}
	return true, nil
}

// NewClient returns the GitClient for a configured backend
func NewClient(backend string, opts Options) (GitClient, error) {
	switch backend {
	case "", BackendExec:
		return NewOSGitClient(opts), nil
	case BackendEmbedded:
		return NewEmbeddedGitClient(opts), nil
	default:
		return nil, fmt.Errorf("unknown git backend %q (must be %q or %q)", backend, BackendExec, BackendEmbedded)
	}
}
