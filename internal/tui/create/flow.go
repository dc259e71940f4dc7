// Package create runs the interactive form of the create command.
package create

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"

	"github.com/jakoblorz/go-mcpc/internal/filesystem"
	"github.com/jakoblorz/go-mcpc/internal/models"
	"github.com/jakoblorz/go-mcpc/internal/tui"
)

// Flow asks for the project name, language and tool using huh forms.
type Flow struct {
	fs      filesystem.FileSystem
	workDir string
	theme   *huh.Theme
}

// Result captures the answers of a completed flow.
type Result struct {
	Name     string
	Language models.Language
	Tool     models.Tool
}

// NewFlow constructs a Flow with the orange/blue huh theme.
func NewFlow(fs filesystem.FileSystem, workDir string) *Flow {
	return &Flow{
		fs:      fs,
		workDir: workDir,
		theme:   tui.NewHuhTheme(),
	}
}

// Run executes the forms sequentially; initial values are preselected.
// Returns a nil result on user abort.
func (f *Flow) Run(initial Result) (*Result, error) {
	name, language, err := f.askProject(initial)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	tool, err := f.askTool(language, initial.Tool)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	return &Result{Name: name, Language: language, Tool: tool}, nil
}

func (f *Flow) askProject(initial Result) (string, models.Language, error) {
	name := initial.Name
	language := string(initial.Language)
	if language == "" {
		language = string(models.LanguageTypeScript)
	}

	opts := make([]huh.Option[string], 0, len(models.Languages()))
	for _, l := range models.Languages() {
		opts = append(opts, huh.NewOption(l.DisplayName(), string(l)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("A new directory with this name is created in " + f.workDir).
				Placeholder("my-mcp-server").
				Value(&name).
				Validate(ValidateName(f.fs, f.workDir)),
			huh.NewSelect[string]().
				Title("Language").
				Options(opts...).
				Value(&language),
		).
			Title("New MCP Server"),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return "", "", err
	}

	parsed, err := models.ParseLanguage(language)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(name), parsed, nil
}

func (f *Flow) askTool(language models.Language, preferred models.Tool) (models.Tool, error) {
	options := ToolOptions(language)
	if len(options) == 1 {
		return options[0], nil
	}

	tool := string(models.DefaultTool(language))
	if models.Compatible(language, preferred) {
		tool = string(preferred)
	}

	opts := make([]huh.Option[string], 0, len(options))
	for _, t := range options {
		label := t.String()
		if t == models.DefaultTool(language) {
			label += " (default)"
		}
		opts = append(opts, huh.NewOption(label, t.String()))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(false)
	keyMap.Select.Submit.SetKeys("enter", " ")
	keyMap.Select.Submit.SetHelp("space/enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Value(&tool),
		).
			Title("Package Manager").
			Description(fmt.Sprintf("Used to install the %s dependencies.", language.DisplayName())),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return "", err
	}

	return models.ParseTool(tool)
}

// ToolOptions returns the tools offered for a language, default first
func ToolOptions(language models.Language) []models.Tool {
	def := models.DefaultTool(language)
	out := []models.Tool{def}
	for _, t := range models.CompatibleTools(language) {
		if t != def {
			out = append(out, t)
		}
	}
	return out
}

// ValidateName rejects blank names and names whose path already exists
func ValidateName(fs filesystem.FileSystem, workDir string) func(string) error {
	return func(v string) error {
		name := strings.TrimSpace(v)
		if name == "" {
			return fmt.Errorf("project name cannot be empty")
		}
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, name)
		}
		if fs.Exists(path) {
			return fmt.Errorf("directory '%s' already exists", name)
		}
		return nil
	}
}
