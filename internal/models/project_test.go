package models

import (
	"path/filepath"
	"testing"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	p, err := NewProject("demo-ts", "/workspace", LanguageTypeScript, ToolNpm)
	require.NoError(t, err)

	require.Equal(t, "demo-ts", p.Name)
	require.Equal(t, filepath.Join("/workspace", "demo-ts"), p.Path)
	require.Equal(t, filepath.Join("/workspace", "demo-ts", "src", "index.ts"), p.File("src/index.ts"))
}

func TestNewProjectAbsoluteName(t *testing.T) {
	p, err := NewProject("/tmp/demo", "/workspace", LanguagePython, ToolUv)
	require.NoError(t, err)
	require.Equal(t, filepath.Clean("/tmp/demo"), p.Path)
}

func TestNewProjectRejectsInvalidInput(t *testing.T) {
	_, err := NewProject("  ", "/workspace", LanguagePython, ToolUv)
	require.ErrorIs(t, err, ErrInvalidProjectName)
	require.NotEmpty(t, errors.Hints(err))

	_, err = NewProject("demo", "/workspace", Language("go"), ToolUv)
	require.Error(t, err)

	_, err = NewProject("demo", "/workspace", LanguagePython, Tool("pip"))
	require.Error(t, err)
}
