package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/jakoblorz/go-mcpc/internal/logger"
)

// OSRunner implements Runner with os/exec
type OSRunner struct {
	logger *zap.SugaredLogger
}

// NewOSRunner creates a new OSRunner. A nil logger follows the global
// logger.Logger, which is replaced once flags are parsed.
func NewOSRunner(l *zap.SugaredLogger) *OSRunner {
	return &OSRunner{logger: l}
}

func (r *OSRunner) log() *zap.SugaredLogger {
	if r.logger != nil {
		return r.logger
	}
	return logger.Logger
}

// LookPath resolves name against PATH
func (r *OSRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		r.log().Debugw("executable not found", "name", name)
		return "", err
	}
	r.log().Debugw("executable resolved", "name", name, "path", path)
	return path, nil
}

// Run executes the command, capturing stdout and stderr
func (r *OSRunner) Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.log().Debugw("running external command", "name", name, "args", args, "dir", dir)

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			r.log().Debugw("external command failed", "name", name, "exit_code", result.ExitCode)
			return result, nil
		}
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	r.log().Debugw("external command finished", "name", name)
	return result, nil
}
