package generator

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/scaffold"
)

// base holds what both language generators share
type base struct {
	project *models.Project
	deps    Deps
}

func (b *base) Project() *models.Project {
	return b.project
}

// createRoot creates the project directory itself. It must not exist yet.
func (b *base) createRoot() error {
	path := b.project.Path
	if err := b.deps.FS.Mkdir(path, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			// both ErrTargetExists and the fs cause stay on the Unwrap chain
			return errors.WithHint(fmt.Errorf("failed to create project directory %s: %w: %w", path, ErrTargetExists, err),
				"choose another project name or remove the existing path")
		}
		return errors.Wrapf(err, "failed to create project directory: %s", path)
	}
	b.deps.Logger.Debugw("Created directory", "path", path)
	return nil
}

func (b *base) createSubdirs(dirs ...string) error {
	for _, dir := range dirs {
		path := b.project.File(dir)
		if err := b.deps.FS.MkdirAll(path, 0755); err != nil {
			return errors.Wrapf(err, "failed to create directory: %s", dir)
		}
		b.deps.Logger.Debugw("Created directory", "path", path)
	}
	return nil
}

// render executes the language's templates
func (b *base) render() ([]scaffold.File, error) {
	files, err := b.deps.Templates.Render(b.project.Language, scaffold.NewData(b.project))
	if err != nil {
		return nil, errors.Wrap(err, "failed to render templates")
	}
	return files, nil
}

// writeFiles writes files in order and stops at the first failure. File
// modes with execute bits are applied with Chmod on a best-effort basis.
func (b *base) writeFiles(files []scaffold.File) error {
	for _, f := range files {
		path := b.project.File(f.Path)

		if dir := filepath.Dir(path); dir != b.project.Path {
			if err := b.deps.FS.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, "failed to create %s", f.Path)
			}
		}

		if err := b.deps.FS.WriteFile(path, f.Content, 0644); err != nil {
			return errors.Wrapf(err, "failed to create %s", f.Path)
		}
		b.deps.Logger.Debugw("Wrote file", "path", path, "bytes", len(f.Content))

		if isExecutable(f.Mode) {
			if err := b.deps.FS.Chmod(path, f.Mode); err != nil {
				b.deps.Logger.Debugw("Could not mark file executable", "path", path, "error", err)
			}
		}
	}
	return nil
}

// run invokes an external command in the project directory. Launch failures
// and non-zero exits are both returned as errors.
func (b *base) run(ctx context.Context, name string, args ...string) error {
	b.deps.Logger.Debugw("Running command", "dir", b.project.Path, "name", name, "args", args)

	result, err := b.deps.Runner.Run(ctx, b.project.Path, name, args...)
	if err != nil {
		return err
	}
	if !result.Success() {
		return errors.Newf("%s exited with status %d: %s", name, result.ExitCode, result.Output())
	}
	return nil
}

// warn hands w to the reporter and returns it for the run's result
func (b *base) warn(w Warning) Warning {
	b.deps.Reporter.Warn(w)
	return w
}

// InitGit initialises a repository in the project directory
func (b *base) InitGit(ctx context.Context) []Warning {
	b.deps.Reporter.Step("Initializing git repository...")

	if err := b.deps.Git.WithContext(ctx).Init(b.project.Path); err != nil {
		b.deps.Logger.Debugw("git init failed", "dir", b.project.Path, "error", err)
		return []Warning{b.warn(Warning{
			Message:     "Failed to initialize git repository",
			Cause:       err,
			Dir:         b.project.Path,
			Remediation: [][]string{{"git", "init"}},
		})}
	}

	b.deps.Reporter.Success("Git repository initialized")
	return nil
}
