package create_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/go-mcpc/internal/filesystem"
	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/tui/create"
)

func TestValidateName(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/workspace/taken")
	fs.AddFile("/workspace/file.txt", []byte("x"))

	validate := create.ValidateName(fs, "/workspace")

	require.NoError(t, validate("fresh"))
	require.Error(t, validate(""))
	require.Error(t, validate("   "))
	require.EqualError(t, validate("taken"), "directory 'taken' already exists")
	require.Error(t, validate("file.txt"))
	require.Error(t, validate("/workspace/taken"))
}

func TestToolOptions(t *testing.T) {
	require.Equal(t, []models.Tool{models.ToolUv}, create.ToolOptions(models.LanguagePython))
	require.Equal(t, []models.Tool{models.ToolPnpm, models.ToolYarn, models.ToolNpm}, create.ToolOptions(models.LanguageTypeScript))
}
