package preflight

import (
	"github.com/jakoblorz/go-mcpc/internal/models"
)

// Requirement is one entry of the allow-list for a (language, tool) pair
type Requirement struct {
	Dependency

	// Executables are alternative names; any one resolving satisfies the requirement
	Executables []string

	// MinVersion is a semver constraint checked when version checks are enabled
	MinVersion string
}

var (
	gitRequirement = Requirement{
		Dependency:  Dependency{Name: "Git", InstallInstructions: "Visit https://git-scm.com/downloads"},
		Executables: []string{"git"},
	}
	pythonRequirement = Requirement{
		Dependency:  Dependency{Name: "Python 3.10+", InstallInstructions: "Visit https://www.python.org/downloads/"},
		Executables: []string{"python3", "python"},
		MinVersion:  ">= 3.10",
	}
	nodeRequirement = Requirement{
		Dependency:  Dependency{Name: "Node.js 18+", InstallInstructions: "Visit https://nodejs.org/"},
		Executables: []string{"node"},
		MinVersion:  ">= 18",
	}
)

var toolRequirements = map[models.Tool]Requirement{
	models.ToolUv: {
		Dependency:  Dependency{Name: "uv", InstallInstructions: "pip install uv"},
		Executables: []string{"uv"},
	},
	models.ToolPnpm: {
		Dependency:  Dependency{Name: "pnpm", InstallInstructions: "npm install -g pnpm"},
		Executables: []string{"pnpm"},
	},
	models.ToolYarn: {
		Dependency:  Dependency{Name: "yarn", InstallInstructions: "npm install -g yarn"},
		Executables: []string{"yarn"},
	},
	models.ToolNpm: {
		Dependency:  Dependency{Name: "npm", InstallInstructions: "It comes with Node.js, please install Node.js"},
		Executables: []string{"npm"},
	},
}

// Requirements returns what must be installed to generate a project, in
// check order: version control, language runtime, then tool.
//
// The list is total over all pairs. A tool from the other ecosystem adds no
// entry: Python only probes uv and TypeScript only probes the JS managers.
func Requirements(language models.Language, tool models.Tool) []Requirement {
	reqs := []Requirement{gitRequirement}

	switch language {
	case models.LanguagePython:
		reqs = append(reqs, pythonRequirement)
		if tool == models.ToolUv {
			reqs = append(reqs, toolRequirements[tool])
		}
	case models.LanguageTypeScript:
		reqs = append(reqs, nodeRequirement)
		switch tool {
		case models.ToolPnpm, models.ToolYarn, models.ToolNpm:
			reqs = append(reqs, toolRequirements[tool])
		}
	}

	return reqs
}
