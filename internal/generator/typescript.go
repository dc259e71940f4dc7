package generator

import (
	"context"
	"encoding/json"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/scaffold"
)

var (
	runtimeDependencies = []string{"@modelcontextprotocol/sdk", "zod"}
	devDependencies     = []string{"@types/node", "typescript"}
)

// TypeScriptGenerator creates an MCP server project built with tsc
type TypeScriptGenerator struct {
	base
}

// CreateDirectories creates the project root with src/ and build/
func (g *TypeScriptGenerator) CreateDirectories() error {
	if err := g.createRoot(); err != nil {
		return err
	}
	return g.createSubdirs("src", "build")
}

// CreateFiles writes the manifest, compiler and formatter configuration,
// src/index.ts and README.md
func (g *TypeScriptGenerator) CreateFiles() error {
	files, err := g.render()
	if err != nil {
		return err
	}

	for _, f := range files {
		if f.Path == "package.json" {
			if err := validatePackageJSON(f, g.project.Name); err != nil {
				return err
			}
		}
	}

	return g.writeFiles(files)
}

func validatePackageJSON(f scaffold.File, name string) error {
	var pkg struct {
		Name string            `json:"name"`
		Bin  map[string]string `json:"bin"`
	}
	if err := json.Unmarshal(f.Content, &pkg); err != nil {
		return errors.Wrap(err, "rendered package.json is not valid JSON")
	}
	if _, ok := pkg.Bin[name]; !ok || pkg.Name != name {
		return errors.Newf("rendered package.json does not declare %q", name)
	}
	return nil
}

// installCommands returns the runtime and development install invocations
func installCommands(tool models.Tool) (runtime, dev []string) {
	cmd := scaffold.CommandsFor(tool).Manager

	switch tool {
	case models.ToolYarn:
		runtime = append([]string{cmd, "add"}, runtimeDependencies...)
		dev = append([]string{cmd, "add", "--dev"}, devDependencies...)
	case models.ToolPnpm:
		runtime = append([]string{cmd, "install"}, runtimeDependencies...)
		dev = append([]string{cmd, "install", "-D"}, devDependencies...)
	default:
		runtime = append([]string{cmd, "install"}, runtimeDependencies...)
		dev = append([]string{cmd, "install", "--save-dev"}, devDependencies...)
	}
	return runtime, dev
}

// InitPackageManager installs runtime then development dependencies. Each
// invocation fails independently into its own warning.
func (g *TypeScriptGenerator) InitPackageManager(ctx context.Context) []Warning {
	runtime, dev := installCommands(g.project.Tool)

	if g.deps.SkipInstall {
		g.deps.Reporter.Step("Skipping dependency installation, run '" + scaffold.CommandsFor(g.project.Tool).Install + "' when ready")
		return nil
	}

	g.deps.Reporter.Step("Installing dependencies with " + runtime[0] + "...")

	var warnings []Warning

	g.deps.Reporter.Step("Installing runtime dependencies...")
	if err := g.run(ctx, runtime[0], runtime[1:]...); err != nil {
		warnings = append(warnings, g.warn(Warning{
			Message:     "Failed to install runtime dependencies",
			Cause:       err,
			Dir:         g.project.Path,
			Remediation: [][]string{runtime},
		}))
	}

	g.deps.Reporter.Step("Installing development dependencies...")
	if err := g.run(ctx, dev[0], dev[1:]...); err != nil {
		warnings = append(warnings, g.warn(Warning{
			Message:     "Failed to install development dependencies",
			Cause:       err,
			Dir:         g.project.Path,
			Remediation: [][]string{dev},
		}))
	}

	if len(warnings) == 0 {
		g.deps.Reporter.Success("Dependencies installed successfully")
		return nil
	}

	g.deps.Reporter.Warn(Warning{
		Message: "Some dependencies may not have been installed properly. Check the output above and install any missing dependencies manually.",
	})
	return warnings
}
