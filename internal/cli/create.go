package cli

import (
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/jakoblorz/go-mcpc/internal/config"
	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/filesystem"
	"github.com/jakoblorz/go-mcpc/internal/generator"
	"github.com/jakoblorz/go-mcpc/internal/git"
	"github.com/jakoblorz/go-mcpc/internal/logger"
	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/preflight"
	"github.com/jakoblorz/go-mcpc/internal/runner"
	"github.com/jakoblorz/go-mcpc/internal/scaffold"
	"github.com/jakoblorz/go-mcpc/internal/tui"
	"github.com/jakoblorz/go-mcpc/internal/tui/create"
)

// promptFunc asks for the missing answers. A nil result means the user aborted.
type promptFunc func(fs filesystem.FileSystem, workDir string, initial create.Result) (*create.Result, error)

// CreateCommand handles project creation, the default action of mcpc
type CreateCommand struct {
	fs         filesystem.FileSystem
	runner     runner.Runner
	git        git.GitClient
	configPath *string

	prompt     promptFunc
	isTerminal func() bool

	language    string
	tool        string
	interactive bool
	skipInstall bool
}

func (c *CreateCommand) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.language, "language", "l", "", "Project language: python (py) or typescript (ts); default typescript")
	cmd.Flags().StringVarP(&c.tool, "tool", "t", "", "Package manager: uv for Python; pnpm, yarn or npm for TypeScript")
	cmd.Flags().BoolVarP(&c.interactive, "interactive", "i", false, "Ask for the project name, language and tool")
	cmd.Flags().BoolVar(&c.skipInstall, "skip-install", false, "Do not run the package manager")

	cmd.Example = `  # TypeScript server managed with pnpm
  mcpc weather-server

  # Python server managed with uv
  mcpc weather-server -l python

  # TypeScript server managed with npm, dependencies installed later
  mcpc weather-server -t npm --skip-install`
}

// Run executes the create command
func (c *CreateCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	console := tui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Load(c.path())
	if err != nil {
		return err
	}
	logger.Logger.Debugw("configuration loaded", "config", cfg)

	language, err := c.resolveLanguage(cfg)
	if err != nil {
		return err
	}
	tool, err := c.resolveTool(cfg, language)
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	workDir, err := c.fs.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}

	if c.interactive || (name == "" && c.isTerminal != nil && c.isTerminal()) {
		answers, err := c.ask(workDir, create.Result{Name: name, Language: language, Tool: tool})
		if err != nil {
			return err
		}
		if answers == nil {
			console.Step("Aborted.")
			return nil
		}
		name, language, tool = answers.Name, answers.Language, answers.Tool
	}

	project, err := models.NewProject(name, workDir, language, tool)
	if err != nil {
		return err
	}
	logger.Logger.Infow("resolved project",
		"name", project.Name,
		"path", project.Path,
		"language", project.Language,
		"tool", project.Tool)

	checker := preflight.NewChecker(c.runner,
		preflight.WithVersionChecks(cfg.Preflight.CheckVersions),
		preflight.WithLogger(logger.Logger))
	if err := checker.Check(ctx, project.Language, project.Tool); err != nil {
		var missing *preflight.MissingDependenciesError
		if errors.As(err, &missing) {
			console.MissingDependencies(missing.Dependencies)
			return reported(err)
		}
		return err
	}

	if _, err := c.fs.Stat(project.Path); err == nil {
		console.TargetExists(project.Name)
		return reported(errors.Wrapf(generator.ErrTargetExists, "%s", project.Path))
	}

	gitClient := c.git
	if gitClient == nil {
		gitClient, err = git.NewClient(cfg.Git.Backend, git.Options{InitialBranch: cfg.Git.InitialBranch})
		if err != nil {
			return err
		}
	}

	skipInstall := c.skipInstall || cfg.Install.Skip
	gen, err := generator.New(project, generator.Deps{
		FS:          c.fs,
		Runner:      c.runner,
		Git:         gitClient,
		Reporter:    console,
		Logger:      logger.Logger,
		SkipInstall: skipInstall,
	})
	if err != nil {
		return err
	}

	console.Step("Creating " + project.Language.DisplayName() + " MCP server project " + project.Name + "...")
	result, err := generator.Generate(ctx, gen)
	if err != nil {
		logger.Logger.Debugw("generation stopped", "stage", result.Stage.String(), "error", err)
		console.Error(err)
		return reported(err)
	}
	logger.Logger.Infow("generation finished", "stage", result.Stage.String(), "warnings", len(result.Warnings))

	layout, err := scaffold.Layout(c.fs, project.Path)
	if err != nil {
		logger.Logger.Warnw("failed to list created files", "error", err)
	}

	steps, notes := nextSteps(project, skipInstall)
	if nested, err := gitClient.IsRepo(workDir); err != nil {
		logger.Logger.Debugw("failed to inspect enclosing repository", "dir", workDir, "error", err)
	} else if nested {
		notes = append(notes, "The project was created inside the existing git repository at "+workDir+", so it has a nested repository of its own.")
	}
	console.Created(tui.Summary{
		Name:      project.Name,
		Path:      project.Path,
		Layout:    layout,
		NextSteps: steps,
		Notes:     notes,
	})
	return nil
}

func (c *CreateCommand) path() string {
	if c.configPath == nil {
		return ""
	}
	return *c.configPath
}

func (c *CreateCommand) resolveLanguage(cfg *config.Config) (models.Language, error) {
	if c.language == "" {
		return cfg.DefaultLanguage()
	}
	return models.ParseLanguage(c.language)
}

// resolveTool returns the explicit tool when it fits the language, the
// configured or default tool otherwise
func (c *CreateCommand) resolveTool(cfg *config.Config, language models.Language) (models.Tool, error) {
	if c.tool == "" {
		return cfg.ToolFor(language)
	}

	tool, err := models.ParseTool(c.tool)
	if err != nil {
		return "", err
	}
	if err := models.CheckCompatible(language, tool); err != nil {
		return "", err
	}
	return tool, nil
}

func (c *CreateCommand) ask(workDir string, initial create.Result) (*create.Result, error) {
	prompt := c.prompt
	if prompt == nil {
		prompt = runFlow
	}
	return prompt(c.fs, workDir, initial)
}

func runFlow(fs filesystem.FileSystem, workDir string, initial create.Result) (*create.Result, error) {
	return create.NewFlow(fs, workDir).Run(initial)
}

// nextSteps lists the commands that take a fresh project to a running server
func nextSteps(project *models.Project, skipInstall bool) ([]string, []string) {
	cd := shellquote.Join("cd", project.Name)

	switch project.Language {
	case models.LanguagePython:
		steps := []string{cd}
		if skipInstall {
			steps = append(steps, "uv venv")
		}
		steps = append(steps,
			"source .venv/bin/activate",
			"uv pip install -r requirements.txt",
			"python server.py --test",
		)
		notes := []string{
			"Run 'python server.py' to start the server. It waits for a client on stdin, so it appears to hang when started directly.",
		}
		return steps, notes
	default:
		commands := scaffold.CommandsFor(project.Tool)
		return []string{cd, commands.Install, commands.Run + " dev"}, nil
	}
}
