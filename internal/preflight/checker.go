package preflight

import (
	"context"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/runner"
)

var versionPattern = regexp.MustCompile(`\d+(\.\d+){0,2}`)

// Status is the probe result for a single requirement
type Status struct {
	Requirement Requirement

	// Found is true when the requirement is satisfied
	Found bool

	// Executable and Path name the first candidate that satisfied it
	Executable string
	Path       string

	// Version is the detected version, when version checks ran
	Version string

	// Problem explains a failed requirement beyond "not found"
	Problem string
}

// Checker probes the host for required executables. It never mutates state.
type Checker struct {
	runner        runner.Runner
	logger        *zap.SugaredLogger
	checkVersions bool
}

// Option configures a Checker
type Option func(*Checker)

// WithVersionChecks enables minimum-version probes (python --version, node --version)
func WithVersionChecks(enabled bool) Option {
	return func(c *Checker) {
		c.checkVersions = enabled
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChecker creates a Checker resolving executables through r
func NewChecker(r runner.Runner, opts ...Option) *Checker {
	c := &Checker{
		runner: r,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns nil when every requirement resolves, otherwise a
// *MissingDependenciesError listing all of the missing ones.
func (c *Checker) Check(ctx context.Context, language models.Language, tool models.Tool) error {
	missing := c.Missing(ctx, language, tool)
	if len(missing) == 0 {
		return nil
	}
	return &MissingDependenciesError{Dependencies: missing}
}

// Missing returns every unsatisfied dependency in check order
func (c *Checker) Missing(ctx context.Context, language models.Language, tool models.Tool) []Dependency {
	var missing []Dependency
	for _, s := range c.Status(ctx, language, tool) {
		if !s.Found {
			missing = append(missing, s.Requirement.Dependency)
		}
	}
	return missing
}

// Status probes each requirement independently
func (c *Checker) Status(ctx context.Context, language models.Language, tool models.Tool) []Status {
	reqs := Requirements(language, tool)
	statuses := make([]Status, 0, len(reqs))
	for _, req := range reqs {
		s := c.probe(ctx, req)
		c.logger.Debugw("Probed dependency", "name", req.Name, "found", s.Found, "path", s.Path, "version", s.Version)
		statuses = append(statuses, s)
	}
	return statuses
}

func (c *Checker) probe(ctx context.Context, req Requirement) Status {
	status := Status{Requirement: req}

	for _, name := range req.Executables {
		path, err := c.runner.LookPath(name)
		if err != nil {
			continue
		}

		if !c.checkVersions || req.MinVersion == "" {
			status.Found = true
			status.Executable = name
			status.Path = path
			return status
		}

		version, ok, problem := c.checkVersion(ctx, name, req.MinVersion)
		if ok {
			status.Found = true
			status.Executable = name
			status.Path = path
			status.Version = version
			status.Problem = ""
			return status
		}
		// Keep looking: python may be too old while python3 is fine.
		if status.Problem == "" {
			status.Executable = name
			status.Path = path
			status.Version = version
			status.Problem = problem
		}
	}

	return status
}

// checkVersion runs `name --version` and tests the output against constraint.
// Output that cannot be parsed passes: the executable exists and the probe
// only exists to catch clearly outdated installs.
func (c *Checker) checkVersion(ctx context.Context, name, constraint string) (string, bool, string) {
	result, err := c.runner.Run(ctx, "", name, "--version")
	if err != nil || !result.Success() {
		c.logger.Debugw("Version probe failed", "executable", name, "error", err, "output", result.Output())
		return "", true, ""
	}

	raw := versionPattern.FindString(result.Stdout + " " + result.Stderr)
	v, err := semver.NewVersion(raw)
	if err != nil {
		c.logger.Debugw("Unparseable version output", "executable", name, "output", result.Output())
		return "", true, ""
	}

	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return v.String(), true, ""
	}

	if !cons.Check(v) {
		return v.String(), false, "found " + v.String() + ", need " + constraint
	}
	return v.String(), true, ""
}
