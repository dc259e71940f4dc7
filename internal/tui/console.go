package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/generator"
	"github.com/jakoblorz/go-mcpc/internal/preflight"
	"github.com/jakoblorz/go-mcpc/internal/scaffold"
)

// Console renders user-facing output. Progress and success messages go to
// out; warnings and errors go to errOut, so scripts can rely on the split.
type Console struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsole creates a Console writing to out and errOut
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

// Step prints a progress message
func (c *Console) Step(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Success prints a completed step
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", SuccessStyle.Render("✓"), msg)
}

// Warn prints a soft failure with its manual recovery commands
func (c *Console) Warn(w generator.Warning) {
	fmt.Fprintf(c.errOut, "%s %s\n", WarningStyle.Render("Warning:"), w.String())

	cmds := w.Commands()
	if len(cmds) == 0 {
		return
	}
	if w.Dir != "" {
		fmt.Fprintf(c.errOut, "  Please run manually in %s:\n", w.Dir)
	} else {
		fmt.Fprintln(c.errOut, "  Please run manually:")
	}
	for _, cmd := range cmds {
		fmt.Fprintf(c.errOut, "    %s %s\n", CommandStyle.Render("$"), cmd)
	}
}

// Error prints an error and every hint attached to it
func (c *Console) Error(err error) {
	fmt.Fprintf(c.errOut, "%s %s\n", ErrorStyle.Render("Error:"), err)
	for _, hint := range errors.Hints(err) {
		fmt.Fprintf(c.errOut, "%s %s\n", DescStyle.Render("hint:"), hint)
	}
}

// MissingDependencies prints the preflight report
func (c *Console) MissingDependencies(deps []preflight.Dependency) {
	fmt.Fprintln(c.errOut, ErrorStyle.Render("Missing required dependencies:"))
	for _, d := range deps {
		fmt.Fprintf(c.errOut, "  - %s\n", d.Name)
		if d.InstallInstructions != "" {
			fmt.Fprintf(c.errOut, "    Install with: %s\n", d.InstallInstructions)
		}
	}
	fmt.Fprintln(c.errOut)
	fmt.Fprintln(c.errOut, "Please install the missing dependencies and try again.")
}

// TargetExists prints the message for a project path that is already taken
func (c *Console) TargetExists(name string) {
	fmt.Fprintf(c.errOut, "%s Directory '%s' already exists. Please choose another project name.\n",
		ErrorStyle.Render("Error:"), name)
}

// Summary is what Created prints after a successful run
type Summary struct {
	Name      string
	Path      string
	Layout    []scaffold.Entry
	NextSteps []string
	Notes     []string
}

// Created prints the success banner, the created tree and the next steps
func (c *Console) Created(s Summary) {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "%s %s\n", SuccessStyle.Render("Successfully created MCP server project:"), s.Name)
	fmt.Fprintf(c.out, "%s %s\n", TitleStyle.Render("Project location:"), s.Path)

	if len(s.Layout) > 0 {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, HeaderStyle.Render("Created:"))
		for _, e := range s.Layout {
			fmt.Fprintf(c.out, "  %s\n", renderEntry(e))
		}
	}

	if len(s.NextSteps) > 0 {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, HeaderStyle.Render("Next steps:"))
		for i, step := range s.NextSteps {
			fmt.Fprintf(c.out, "  %d. %s %s\n", i+1, CommandStyle.Render("$"), step)
		}
	}

	for _, note := range s.Notes {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, SubtleStyle.Render(note))
	}
}

func renderEntry(e scaffold.Entry) string {
	depth := strings.Count(e.Path, "/")
	name := e.Path[strings.LastIndex(e.Path, "/")+1:]
	if e.IsDir {
		name += "/"
	}

	line := strings.Repeat("  ", depth) + name
	if e.Ignored {
		return SubtleStyle.Render(line + " (ignored)")
	}
	return line
}

// DoctorReport prints one line per requirement and returns the number of
// missing ones
func (c *Console) DoctorReport(title string, statuses []preflight.Status) int {
	missing := 0
	fmt.Fprintln(c.out, HeaderStyle.Render(title))

	for _, s := range statuses {
		if s.Found {
			detail := s.Path
			if s.Version != "" {
				detail = fmt.Sprintf("%s (%s)", s.Path, s.Version)
			}
			fmt.Fprintf(c.out, "  %s %-14s %s\n", SuccessStyle.Render("[ OK ]"), s.Requirement.Name, detail)
			continue
		}

		missing++
		detail := "not found in PATH"
		if s.Problem != "" {
			detail = s.Problem
		}
		fmt.Fprintf(c.out, "  %s %-14s %s\n", ErrorStyle.Render("[MISS]"), s.Requirement.Name, detail)
		if s.Requirement.InstallInstructions != "" {
			fmt.Fprintf(c.out, "         Install with: %s\n", s.Requirement.InstallInstructions)
		}
	}

	return missing
}
