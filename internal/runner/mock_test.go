package runner

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockLookPath(t *testing.T) {
	m := NewMockRunner().AddExecutable("git", "node")

	path, err := m.LookPath("git")
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/git", path)

	_, err = m.LookPath("uv")
	require.ErrorIs(t, err, exec.ErrNotFound)

	m.RemoveExecutable("git")
	_, err = m.LookPath("git")
	require.Error(t, err)
}

func TestMockRunDefaultsToSuccess(t *testing.T) {
	m := NewMockRunner().AddExecutable("git")

	res, err := m.Run(context.Background(), "/workspace/demo", "git", "init")
	require.NoError(t, err)
	require.True(t, res.Success())

	require.Equal(t, []Call{{Dir: "/workspace/demo", Name: "git", Args: []string{"init"}}}, m.Calls())
	require.Equal(t, []string{"git init"}, m.CommandLines())
}

func TestMockRunUnknownExecutableFailsToLaunch(t *testing.T) {
	m := NewMockRunner()

	_, err := m.Run(context.Background(), "", "uv", "venv")
	require.ErrorIs(t, err, exec.ErrNotFound)
}

func TestMockRunPrefixMatching(t *testing.T) {
	m := NewMockRunner().AddExecutable("npm")
	m.OnRun("npm", &Result{ExitCode: 1, Stderr: "network down"}, nil)
	m.OnRun("npm install --save-dev", &Result{}, nil)

	res, err := m.Run(context.Background(), "", "npm", "install", "zod")
	require.NoError(t, err)
	require.False(t, res.Success())
	require.Equal(t, "network down", res.Output())

	res, err = m.Run(context.Background(), "", "npm", "install", "--save-dev", "typescript")
	require.NoError(t, err)
	require.True(t, res.Success())
}

func TestMockRunLaunchError(t *testing.T) {
	boom := errors.New("permission denied")
	m := NewMockRunner().AddExecutable("pnpm").OnRun("pnpm install", nil, boom)

	_, err := m.Run(context.Background(), "", "pnpm", "install", "zod")
	require.ErrorIs(t, err, boom)
}

func TestResultOutput(t *testing.T) {
	require.Equal(t, "err", (&Result{Stdout: "out", Stderr: " err\n"}).Output())
	require.Equal(t, "out", (&Result{Stdout: "out\n"}).Output())
	require.Equal(t, "", (*Result)(nil).Output())
	require.False(t, (*Result)(nil).Success())
}
