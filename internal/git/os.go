package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSGitClient implements GitClient using the git binary
type OSGitClient struct {
	ctx  context.Context
	opts Options
}

// NewOSGitClient creates a new OSGitClient
func NewOSGitClient(opts Options) *OSGitClient {
	return &OSGitClient{
		ctx:  context.Background(),
		opts: opts,
	}
}

// WithContext returns a new client with the given context
func (g *OSGitClient) WithContext(ctx context.Context) GitClient {
	return &OSGitClient{
		ctx:  ctx,
		opts: g.opts,
	}
}

// Init runs `git init` in dir
func (g *OSGitClient) Init(dir string) error {
	args := []string{"init"}
	if g.opts.InitialBranch != "" {
		args = append(args, "--initial-branch", g.opts.InitialBranch)
	}

	cmd := exec.CommandContext(g.ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to initialize git repository: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return nil
}

// IsRepo checks if dir is inside a git work tree
func (g *OSGitClient) IsRepo(dir string) (bool, error) {
	cmd := exec.CommandContext(g.ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = dir

	if err := cmd.Run(); err != nil {
		// Not a git repo
		return false, nil
	}

	return true, nil
}
