// Package generator creates MCP server projects on disk.
//
// A Generator runs four steps in a fixed order: directories, files, package
// manager and git. The first two are hard gates and return errors; the last
// two can only produce warnings, so a failing package manager or git binary
// never turns a written scaffold into a failed run.
package generator

import (
	"context"
	"io/fs"

	"go.uber.org/zap"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/filesystem"
	"github.com/jakoblorz/go-mcpc/internal/git"
	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/runner"
	"github.com/jakoblorz/go-mcpc/internal/scaffold"
)

// ErrTargetExists is returned when the project path is already taken
var ErrTargetExists = errors.New("target already exists")

// Generator produces the scaffold for one language
type Generator interface {
	Project() *models.Project

	// CreateDirectories creates the project root and its subdirectories
	CreateDirectories() error

	// CreateFiles renders and writes every scaffold file
	CreateFiles() error

	// InitPackageManager materializes dependencies; each failed invocation
	// is reported as it happens and returned as one warning
	InitPackageManager(ctx context.Context) []Warning

	// InitGit initialises a repository; a failure is reported and returned
	// as a warning
	InitGit(ctx context.Context) []Warning
}

// Reporter receives user-facing progress while a project is generated
type Reporter interface {
	Step(msg string)
	Success(msg string)
	Warn(w Warning)
}

// Deps are the collaborators a Generator works with
type Deps struct {
	FS        filesystem.FileSystem
	Runner    runner.Runner
	Git       git.GitClient
	Templates *scaffold.Registry
	Reporter  Reporter
	Logger    *zap.SugaredLogger

	// SkipInstall replaces the package-manager step with a notice
	SkipInstall bool
}

// New returns the Generator for the project's language
func New(project *models.Project, deps Deps) (Generator, error) {
	if deps.Templates == nil {
		registry, err := scaffold.Default()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load templates")
		}
		deps.Templates = registry
	}
	if deps.Reporter == nil {
		deps.Reporter = nopReporter{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop().Sugar()
	}

	b := base{project: project, deps: deps}

	switch project.Language {
	case models.LanguagePython:
		return &PythonGenerator{base: b}, nil
	case models.LanguageTypeScript:
		return &TypeScriptGenerator{base: b}, nil
	default:
		return nil, errors.Newf("no generator for language %q", project.Language)
	}
}

// Stage is how far a generation run got
type Stage int

const (
	StageStart Stage = iota
	StageDirectoriesCreated
	StageFilesWritten
	StagePackageManagerAttempted
	StageGitAttempted
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageDirectoriesCreated:
		return "directories created"
	case StageFilesWritten:
		return "files written"
	case StagePackageManagerAttempted:
		return "package manager attempted"
	case StageGitAttempted:
		return "git attempted"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Result summarises a generation run
type Result struct {
	Stage    Stage
	Warnings []Warning
}

// Generate runs the pipeline and stops at the first hard error. Partial
// output is left on disk when it does.
func Generate(ctx context.Context, g Generator) (*Result, error) {
	res := &Result{Stage: StageStart}

	if err := g.CreateDirectories(); err != nil {
		return res, err
	}
	res.Stage = StageDirectoriesCreated

	if err := g.CreateFiles(); err != nil {
		return res, err
	}
	res.Stage = StageFilesWritten

	res.Warnings = append(res.Warnings, g.InitPackageManager(ctx)...)
	res.Stage = StagePackageManagerAttempted

	res.Warnings = append(res.Warnings, g.InitGit(ctx)...)
	res.Stage = StageGitAttempted

	res.Stage = StageDone
	return res, nil
}

type nopReporter struct{}

func (nopReporter) Step(string)    {}
func (nopReporter) Success(string) {}
func (nopReporter) Warn(Warning)   {}

// isExecutable reports whether any execute bit is set
func isExecutable(mode fs.FileMode) bool {
	return mode&0111 != 0
}
