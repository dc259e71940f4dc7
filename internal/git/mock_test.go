package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jakoblorz/go-mcpc/internal/filesystem"
	"github.com/jakoblorz/go-mcpc/internal/git"
	"github.com/stretchr/testify/require"
)

func TestMockGitClient_Init(t *testing.T) {
	mock := git.NewMockGitClient()

	require.NoError(t, mock.Init("/workspace/demo"))
	require.Equal(t, []string{"/workspace/demo"}, mock.Inits())

	ok, err := mock.IsRepo("/workspace/demo")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = mock.IsRepo("/workspace/demo/src")
	require.NoError(t, err)
	require.True(t, ok, "subdirectories belong to the repository")

	ok, err = mock.IsRepo("/workspace")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMockGitClient_InitCreatesDotGit(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/workspace/demo")
	mock := git.NewMockGitClient().WithFileSystem(fs)

	require.NoError(t, mock.Init("/workspace/demo"))
	require.True(t, fs.Exists("/workspace/demo/.git"))
}

func TestMockGitClient_InitError(t *testing.T) {
	mock := git.NewMockGitClient()
	mock.InitError = errors.New("boom")

	require.EqualError(t, mock.Init("/workspace/demo"), "boom")
	require.Empty(t, mock.Inits())
}

func TestMockGitClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := git.NewMockGitClient().WithContext(ctx)
	err := client.Init("/workspace/demo")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMockGitClient_AddRepo(t *testing.T) {
	mock := git.NewMockGitClient()
	mock.AddRepo("/workspace")

	ok, err := mock.IsRepo("/workspace/nested/project")
	require.NoError(t, err)
	require.True(t, ok)
}
