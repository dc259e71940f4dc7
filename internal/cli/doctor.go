package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/go-mcpc/internal/config"
	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/filesystem"
	"github.com/jakoblorz/go-mcpc/internal/logger"
	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/preflight"
	"github.com/jakoblorz/go-mcpc/internal/runner"
	"github.com/jakoblorz/go-mcpc/internal/tui"
)

// DoctorCommand handles the doctor command
type DoctorCommand struct {
	fs         filesystem.FileSystem
	runner     runner.Runner
	configPath *string

	language   string
	tool       string
	projectDir string
}

// target is one (language, tool) pair to report on
type target struct {
	title    string
	language models.Language
	tool     models.Tool
}

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(fs filesystem.FileSystem, r runner.Runner, configPath *string) *cobra.Command {
	cmd := &DoctorCommand{
		fs:         fs,
		runner:     r,
		configPath: configPath,
	}

	cobraCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the tools mcpc needs are installed",
		Long: `Runs the same dependency check as project creation and prints one line
per requirement.

Without flags every language is checked with its configured tool. With
--project the language and tool are read from an existing project's
pyproject.toml or package.json.`,
		Example: `  # Check everything
  mcpc doctor

  # Check what a yarn-managed TypeScript project needs
  mcpc doctor -l ts -t yarn

  # Check an existing project
  mcpc doctor --project ./weather-server`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.language, "language", "l", "", "Only check this language")
	cobraCmd.Flags().StringVarP(&cmd.tool, "tool", "t", "", "Check this tool instead of the configured one")
	cobraCmd.Flags().StringVar(&cmd.projectDir, "project", "", "Read language and tool from an existing project directory")
	cobraCmd.MarkFlagsMutuallyExclusive("project", "language")

	return cobraCmd
}

// Run executes the doctor command
func (c *DoctorCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	console := tui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())

	path := ""
	if c.configPath != nil {
		path = *c.configPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	targets, err := c.targets(cfg)
	if err != nil {
		return err
	}

	checker := preflight.NewChecker(c.runner,
		preflight.WithVersionChecks(true),
		preflight.WithLogger(logger.Logger))

	missing := 0
	for i, t := range targets {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		missing += console.DoctorReport(t.title, checker.Status(ctx, t.language, t.tool))
	}

	if missing > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
		console.Step(fmt.Sprintf("%d requirement(s) missing.", missing))
		return reported(errors.Mark(errors.Newf("%d requirement(s) missing", missing), preflight.ErrMissingDependencies))
	}

	fmt.Fprintln(cmd.OutOrStdout())
	console.Success("All requirements satisfied")
	return nil
}

func (c *DoctorCommand) targets(cfg *config.Config) ([]target, error) {
	if c.projectDir != "" {
		info, err := preflight.DetectProject(c.fs, c.projectDir)
		if err != nil {
			return nil, err
		}
		tool := info.Tool
		if c.tool != "" {
			if tool, err = c.explicitTool(info.Language); err != nil {
				return nil, err
			}
		}
		title := fmt.Sprintf("%s (%s, %s)", info.Name, info.Language.DisplayName(), tool)
		if info.RequiresPython != "" {
			title = fmt.Sprintf("%s, requires-python %s", title, info.RequiresPython)
		}
		return []target{{title: title, language: info.Language, tool: tool}}, nil
	}

	languages := models.Languages()
	if c.language != "" {
		language, err := models.ParseLanguage(c.language)
		if err != nil {
			return nil, err
		}
		languages = []models.Language{language}
	} else if c.tool != "" {
		return nil, errors.WithHint(errors.New("--tool needs --language or --project"),
			"for example: mcpc doctor -l ts -t yarn")
	}

	out := make([]target, 0, len(languages))
	for _, language := range languages {
		var (
			tool models.Tool
			err  error
		)
		if c.tool != "" {
			tool, err = c.explicitTool(language)
		} else {
			tool, err = cfg.ToolFor(language)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, target{
			title:    fmt.Sprintf("%s (%s)", language.DisplayName(), tool),
			language: language,
			tool:     tool,
		})
	}
	return out, nil
}

func (c *DoctorCommand) explicitTool(language models.Language) (models.Tool, error) {
	tool, err := models.ParseTool(c.tool)
	if err != nil {
		return "", err
	}
	if err := models.CheckCompatible(language, tool); err != nil {
		return "", err
	}
	return tool, nil
}
