package preflight_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/go-mcpc/internal/filesystem"
	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/preflight"
	"github.com/jakoblorz/go-mcpc/internal/scaffold"
)

func TestDetectProjectPython(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/demo/pyproject.toml", []byte(`
[project]
name = "demo"
requires-python = ">=3.10"
`))

	info, err := preflight.DetectProject(fs, "/workspace/demo")
	require.NoError(t, err)
	require.Equal(t, &preflight.ProjectInfo{
		Name:           "demo",
		Language:       models.LanguagePython,
		Tool:           models.ToolUv,
		RequiresPython: ">=3.10",
	}, info)
}

func TestDetectProjectNode(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  models.Tool
	}{
		{"default", map[string]string{"package.json": `{"name":"demo"}`}, models.ToolPnpm},
		{"yarn lockfile", map[string]string{"package.json": `{"name":"demo"}`, "yarn.lock": ""}, models.ToolYarn},
		{"npm lockfile", map[string]string{"package.json": `{"name":"demo"}`, "package-lock.json": "{}"}, models.ToolNpm},
		{"packageManager field", map[string]string{"package.json": `{"name":"demo","packageManager":"yarn@4.1.0"}`, "package-lock.json": "{}"}, models.ToolYarn},
		{"yarn runner without lockfile", map[string]string{"package.json": `{"name":"demo","scripts":{"inspector":"yarn dlx @modelcontextprotocol/inspector build/index.js"}}`}, models.ToolYarn},
		{"npx runner without lockfile", map[string]string{"package.json": `{"name":"demo","scripts":{"inspector":"npx @modelcontextprotocol/inspector build/index.js"}}`}, models.ToolNpm},
		{"lockfile wins over runner", map[string]string{"package.json": `{"name":"demo","scripts":{"inspector":"npx @modelcontextprotocol/inspector build/index.js"}}`, "yarn.lock": ""}, models.ToolYarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMockFileSystem()
			for name, content := range tt.files {
				fs.AddFile("/workspace/demo/"+name, []byte(content))
			}

			info, err := preflight.DetectProject(fs, "/workspace/demo")
			require.NoError(t, err)
			require.Equal(t, "demo", info.Name)
			require.Equal(t, models.LanguageTypeScript, info.Language)
			require.Equal(t, tt.want, info.Tool)
		})
	}
}

func TestDetectProjectGeneratedBeforeInstall(t *testing.T) {
	registry, err := scaffold.Default()
	require.NoError(t, err)

	for _, tool := range models.CompatibleTools(models.LanguageTypeScript) {
		t.Run(string(tool), func(t *testing.T) {
			project, err := models.NewProject("demo", "/workspace", models.LanguageTypeScript, tool)
			require.NoError(t, err)
			files, err := registry.Render(models.LanguageTypeScript, scaffold.NewData(project))
			require.NoError(t, err)

			fs := filesystem.NewMockFileSystem()
			for _, f := range files {
				fs.AddFile(project.File(f.Path), f.Content)
			}

			info, err := preflight.DetectProject(fs, project.Path)
			require.NoError(t, err)
			require.Equal(t, tool, info.Tool)
		})
	}
}

func TestDetectProjectUnknown(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/workspace/empty")

	_, err := preflight.DetectProject(fs, "/workspace/empty")
	require.ErrorIs(t, err, preflight.ErrUnknownProject)
}

func TestDetectProjectInvalidManifest(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/demo/pyproject.toml", []byte("[project\nname ="))

	_, err := preflight.DetectProject(fs, "/workspace/demo")
	require.Error(t, err)
}
