package generator

import (
	"context"

	"github.com/pelletier/go-toml/v2"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/scaffold"
)

// PythonGenerator creates a flat FastMCP project managed with uv
type PythonGenerator struct {
	base
}

// CreateDirectories creates the project root only
func (g *PythonGenerator) CreateDirectories() error {
	return g.createRoot()
}

// CreateFiles writes pyproject.toml, requirements.txt, .gitignore, server.py and README.md
func (g *PythonGenerator) CreateFiles() error {
	files, err := g.render()
	if err != nil {
		return err
	}

	for _, f := range files {
		if f.Path == "pyproject.toml" {
			if err := validatePyproject(f); err != nil {
				return err
			}
		}
	}

	return g.writeFiles(files)
}

func validatePyproject(f scaffold.File) error {
	var doc struct {
		Project struct {
			Name string `toml:"name"`
		} `toml:"project"`
	}
	if err := toml.Unmarshal(f.Content, &doc); err != nil {
		return errors.Wrap(err, "rendered pyproject.toml is not valid TOML")
	}
	if doc.Project.Name == "" {
		return errors.New("rendered pyproject.toml has no project name")
	}
	return nil
}

// InitPackageManager creates a virtual environment with `uv venv`. Python
// projects always use uv, whichever tool was resolved.
func (g *PythonGenerator) InitPackageManager(ctx context.Context) []Warning {
	venv := []string{"uv", "venv"}

	if g.deps.SkipInstall {
		g.deps.Reporter.Step("Skipping virtual environment creation, run 'uv venv' when ready")
		return nil
	}

	g.deps.Reporter.Step("Creating Python virtual environment with uv...")
	if err := g.run(ctx, venv[0], venv[1:]...); err != nil {
		return []Warning{g.warn(Warning{
			Message:     "Failed to create virtual environment",
			Cause:       err,
			Dir:         g.project.Path,
			Remediation: [][]string{venv},
		})}
	}

	g.deps.Reporter.Success("Virtual environment created successfully")
	return nil
}
