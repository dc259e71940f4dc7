package preflight

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/filesystem"
	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/scaffold"
)

// ErrUnknownProject is returned when a directory holds neither manifest
var ErrUnknownProject = errors.New("no pyproject.toml or package.json found")

// ProjectInfo is what DetectProject learns from an existing project
type ProjectInfo struct {
	Name     string
	Language models.Language
	Tool     models.Tool

	// RequiresPython is the requires-python constraint of a Python project
	RequiresPython string
}

// lockfiles map a lockfile to the tool that wrote it, in lookup order
var lockfiles = []struct {
	name string
	tool models.Tool
}{
	{"pnpm-lock.yaml", models.ToolPnpm},
	{"yarn.lock", models.ToolYarn},
	{"package-lock.json", models.ToolNpm},
}

// DetectProject inspects dir for a Python or TypeScript manifest
func DetectProject(fs filesystem.FileSystem, dir string) (*ProjectInfo, error) {
	if path := filepath.Join(dir, "pyproject.toml"); fs.Exists(path) {
		return detectPython(fs, path)
	}
	if path := filepath.Join(dir, "package.json"); fs.Exists(path) {
		return detectNode(fs, dir, path)
	}
	return nil, errors.WithHint(errors.Wrapf(ErrUnknownProject, "%s", dir),
		"run doctor inside a generated project, or pass --language instead")
}

func detectPython(fs filesystem.FileSystem, path string) (*ProjectInfo, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var doc struct {
		Project struct {
			Name           string `toml:"name"`
			RequiresPython string `toml:"requires-python"`
		} `toml:"project"`
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	return &ProjectInfo{
		Name:           doc.Project.Name,
		Language:       models.LanguagePython,
		Tool:           models.ToolUv,
		RequiresPython: doc.Project.RequiresPython,
	}, nil
}

func detectNode(fs filesystem.FileSystem, dir, path string) (*ProjectInfo, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var pkg struct {
		Name           string            `json:"name"`
		PackageManager string            `json:"packageManager"`
		Scripts        map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	info := &ProjectInfo{
		Name:     pkg.Name,
		Language: models.LanguageTypeScript,
		Tool:     models.DefaultTool(models.LanguageTypeScript),
	}

	// "packageManager": "pnpm@9.1.0" wins over lockfiles
	if pkg.PackageManager != "" {
		name := pkg.PackageManager
		if i := strings.IndexByte(name, '@'); i > 0 {
			name = name[:i]
		}
		if tool, err := models.ParseTool(name); err == nil && models.Compatible(models.LanguageTypeScript, tool) {
			info.Tool = tool
			return info, nil
		}
	}

	for _, lf := range lockfiles {
		if fs.Exists(filepath.Join(dir, lf.name)) {
			info.Tool = lf.tool
			return info, nil
		}
	}

	// No lockfile before the first install: the generated inspector script
	// names the package runner
	if tool, ok := toolFromRunner(pkg.Scripts["inspector"]); ok {
		info.Tool = tool
	}
	return info, nil
}

func toolFromRunner(script string) (models.Tool, bool) {
	for _, tool := range models.CompatibleTools(models.LanguageTypeScript) {
		if strings.HasPrefix(script, scaffold.CommandsFor(tool).Runner+" ") {
			return tool, true
		}
	}
	return "", false
}
