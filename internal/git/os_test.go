package git_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/jakoblorz/go-mcpc/internal/git"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

func headTarget(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, ".git", "HEAD"))
	require.NoError(t, err)
	return strings.TrimSpace(string(data))
}

func TestOSGitClient_Init(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	client := git.NewOSGitClient(git.Options{})

	ok, err := client.IsRepo(dir)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, client.Init(dir))
	require.DirExists(t, filepath.Join(dir, ".git"))

	ok, err = client.IsRepo(dir)
	require.NoError(t, err)
	require.True(t, ok)

	// The repository has no commits.
	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	_, err = repo.Head()
	require.Error(t, err)
}

func TestOSGitClient_InitialBranch(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	client := git.NewOSGitClient(git.Options{InitialBranch: "trunk"})

	require.NoError(t, client.Init(dir))
	require.Equal(t, "ref: refs/heads/trunk", headTarget(t, dir))
}

func TestOSGitClient_InitMissingDir(t *testing.T) {
	requireGit(t)
	client := git.NewOSGitClient(git.Options{})

	err := client.Init(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to initialize git repository")
}

func TestEmbeddedGitClient_Init(t *testing.T) {
	dir := t.TempDir()
	client := git.NewEmbeddedGitClient(git.Options{InitialBranch: "main"})

	require.NoError(t, client.Init(dir))
	require.Equal(t, "ref: refs/heads/main", headTarget(t, dir))

	ok, err := client.IsRepo(filepath.Join(dir))
	require.NoError(t, err)
	require.True(t, ok)

	other := t.TempDir()
	ok, err = client.IsRepo(other)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEmbeddedGitClient_InitTwice(t *testing.T) {
	dir := t.TempDir()
	client := git.NewEmbeddedGitClient(git.Options{})

	require.NoError(t, client.Init(dir))
	require.Error(t, client.Init(dir))
}

func TestNewClient(t *testing.T) {
	c, err := git.NewClient("", git.Options{})
	require.NoError(t, err)
	require.IsType(t, &git.OSGitClient{}, c)

	c, err = git.NewClient(git.BackendEmbedded, git.Options{})
	require.NoError(t, err)
	require.IsType(t, &git.EmbeddedGitClient{}, c)

	_, err = git.NewClient("svn", git.Options{})
	require.Error(t, err)
}
