package scaffold

import (
	"github.com/jakoblorz/go-mcpc/internal/models"
)

// PythonDependencies are pinned in both pyproject.toml and requirements.txt
var PythonDependencies = []string{
	"mcp[cli]>=1.2.0",
	"httpx>=0.24.0",
}

// NodeCommands are the command spellings of a JavaScript package manager
type NodeCommands struct {
	// Manager is the executable name
	Manager string
	// Runner executes a package without installing it (npx, pnpm dlx, yarn dlx)
	Runner string
	// Install installs the declared dependencies
	Install string
	// Run prefixes a package.json script
	Run string
}

// CommandsFor returns the commands for tool. Tools outside the JavaScript
// ecosystem fall back to npm.
func CommandsFor(tool models.Tool) NodeCommands {
	switch tool {
	case models.ToolPnpm:
		return NodeCommands{Manager: "pnpm", Runner: "pnpm dlx", Install: "pnpm install", Run: "pnpm"}
	case models.ToolYarn:
		return NodeCommands{Manager: "yarn", Runner: "yarn dlx", Install: "yarn", Run: "yarn"}
	default:
		return NodeCommands{Manager: "npm", Runner: "npx", Install: "npm install", Run: "npm run"}
	}
}

// Data is the value every template is executed with
type Data struct {
	Name     string
	Language models.Language
	Tool     models.Tool

	PackageManager string
	PackageRunner  string
	InstallCommand string
	RunCommand     string

	PythonDependencies []string
}

// NewData builds template data for a project
func NewData(project *models.Project) Data {
	data := Data{
		Name:               project.Name,
		Language:           project.Language,
		Tool:               project.Tool,
		PythonDependencies: PythonDependencies,
	}

	if project.Language == models.LanguageTypeScript {
		cmds := CommandsFor(project.Tool)
		data.PackageManager = cmds.Manager
		data.PackageRunner = cmds.Runner
		data.InstallCommand = cmds.Install
		data.RunCommand = cmds.Run
	}

	return data
}
