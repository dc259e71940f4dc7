package preflight_test

import (
	"context"
	"testing"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/preflight"
	"github.com/jakoblorz/go-mcpc/internal/runner"
	"github.com/stretchr/testify/require"
)

// allowList is the documented set of dependency names per language
var allowList = map[models.Language][]string{
	models.LanguagePython:     {"Git", "Python 3.10+", "uv"},
	models.LanguageTypeScript: {"Git", "Node.js 18+", "pnpm", "yarn", "npm"},
}

func allExecutables() *runner.MockRunner {
	return runner.NewMockRunner().AddExecutable("git", "python", "python3", "uv", "node", "pnpm", "yarn", "npm")
}

func names(deps []preflight.Dependency) []string {
	out := make([]string, len(deps))
	for i, d := range deps {
		out[i] = d.Name
	}
	return out
}

func TestCheckerAllPresent(t *testing.T) {
	checker := preflight.NewChecker(allExecutables())

	for _, language := range models.Languages() {
		for _, tool := range models.Tools() {
			require.Empty(t, checker.Missing(context.Background(), language, tool), "%s/%s", language, tool)
			require.NoError(t, checker.Check(context.Background(), language, tool))
		}
	}
}

func TestCheckerNothingPresentStaysInAllowList(t *testing.T) {
	checker := preflight.NewChecker(runner.NewMockRunner())

	for _, language := range models.Languages() {
		for _, tool := range models.Tools() {
			missing := checker.Missing(context.Background(), language, tool)
			require.NotEmpty(t, missing)
			require.Subset(t, allowList[language], names(missing), "%s/%s", language, tool)
			require.Equal(t, "Git", missing[0].Name, "version control is checked first")
		}
	}
}

func TestCheckerRemovingOneExecutable(t *testing.T) {
	tests := []struct {
		language   models.Language
		tool       models.Tool
		executable string
		want       string
	}{
		{models.LanguagePython, models.ToolUv, "git", "Git"},
		{models.LanguagePython, models.ToolUv, "uv", "uv"},
		{models.LanguageTypeScript, models.ToolPnpm, "git", "Git"},
		{models.LanguageTypeScript, models.ToolPnpm, "node", "Node.js 18+"},
		{models.LanguageTypeScript, models.ToolPnpm, "pnpm", "pnpm"},
		{models.LanguageTypeScript, models.ToolYarn, "yarn", "yarn"},
		{models.LanguageTypeScript, models.ToolNpm, "npm", "npm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.language)+"/"+string(tt.tool)+"/"+tt.executable, func(t *testing.T) {
			r := allExecutables().RemoveExecutable(tt.executable)
			missing := preflight.NewChecker(r).Missing(context.Background(), tt.language, tt.tool)
			require.Equal(t, []string{tt.want}, names(missing))
		})
	}
}

func TestCheckerUnrelatedToolIsNotRequired(t *testing.T) {
	r := allExecutables().RemoveExecutable("yarn")
	checker := preflight.NewChecker(r)

	require.Empty(t, checker.Missing(context.Background(), models.LanguageTypeScript, models.ToolNpm))
	require.Empty(t, checker.Missing(context.Background(), models.LanguageTypeScript, models.ToolUv))
	require.Empty(t, checker.Missing(context.Background(), models.LanguagePython, models.ToolYarn))
}

func TestCheckerPythonAlternatives(t *testing.T) {
	onlyPython := runner.NewMockRunner().AddExecutable("git", "python", "uv")
	require.Empty(t, preflight.NewChecker(onlyPython).Missing(context.Background(), models.LanguagePython, models.ToolUv))

	onlyPython3 := runner.NewMockRunner().AddExecutable("git", "python3", "uv")
	require.Empty(t, preflight.NewChecker(onlyPython3).Missing(context.Background(), models.LanguagePython, models.ToolUv))

	neither := runner.NewMockRunner().AddExecutable("git", "uv")
	missing := preflight.NewChecker(neither).Missing(context.Background(), models.LanguagePython, models.ToolUv)
	require.Equal(t, []string{"Python 3.10+"}, names(missing))
}

func TestCheckerReportsEveryMissingDependency(t *testing.T) {
	checker := preflight.NewChecker(runner.NewMockRunner())

	err := checker.Check(context.Background(), models.LanguageTypeScript, models.ToolYarn)
	require.ErrorIs(t, err, preflight.ErrMissingDependencies)

	var missingErr *preflight.MissingDependenciesError
	require.True(t, errors.As(err, &missingErr))
	require.Equal(t, []preflight.Dependency{
		{Name: "Git", InstallInstructions: "Visit https://git-scm.com/downloads"},
		{Name: "Node.js 18+", InstallInstructions: "Visit https://nodejs.org/"},
		{Name: "yarn", InstallInstructions: "npm install -g yarn"},
	}, missingErr.Dependencies)
	require.Equal(t, "missing required dependencies: Git, Node.js 18+, yarn", err.Error())
}

func TestCheckerVersionChecks(t *testing.T) {
	r := allExecutables().
		OnRun("python3 --version", &runner.Result{Stdout: "Python 3.8.10\n"}, nil).
		OnRun("python --version", &runner.Result{Stdout: "Python 3.12.1\n"}, nil).
		OnRun("node --version", &runner.Result{Stdout: "v16.20.0\n"}, nil)
	checker := preflight.NewChecker(r, preflight.WithVersionChecks(true))

	statuses := checker.Status(context.Background(), models.LanguagePython, models.ToolUv)
	require.Len(t, statuses, 3)
	require.True(t, statuses[1].Found)
	require.Equal(t, "python", statuses[1].Executable)
	require.Equal(t, "3.12.1", statuses[1].Version)

	missing := checker.Missing(context.Background(), models.LanguageTypeScript, models.ToolPnpm)
	require.Equal(t, []string{"Node.js 18+"}, names(missing))

	statuses = checker.Status(context.Background(), models.LanguageTypeScript, models.ToolPnpm)
	require.Equal(t, "found 16.20.0, need >= 18", statuses[1].Problem)
}

func TestCheckerVersionChecksDisabledByDefault(t *testing.T) {
	r := allExecutables().OnRun("node --version", &runner.Result{Stdout: "v12.0.0"}, nil)
	checker := preflight.NewChecker(r)

	require.Empty(t, checker.Missing(context.Background(), models.LanguageTypeScript, models.ToolNpm))
	require.Empty(t, r.Calls(), "no processes run without version checks")
}

func TestCheckerUnparseableVersionPasses(t *testing.T) {
	r := allExecutables().OnRun("node --version", &runner.Result{Stdout: "custom build"}, nil)
	checker := preflight.NewChecker(r, preflight.WithVersionChecks(true))

	require.Empty(t, checker.Missing(context.Background(), models.LanguageTypeScript, models.ToolNpm))
}

func TestRequirementsOrder(t *testing.T) {
	reqs := preflight.Requirements(models.LanguageTypeScript, models.ToolPnpm)
	require.Len(t, reqs, 3)
	require.Equal(t, "Git", reqs[0].Name)
	require.Equal(t, "Node.js 18+", reqs[1].Name)
	require.Equal(t, "pnpm", reqs[2].Name)

	reqs = preflight.Requirements(models.LanguagePython, models.ToolNpm)
	require.Len(t, reqs, 2, "a JS tool adds nothing for Python")
}
