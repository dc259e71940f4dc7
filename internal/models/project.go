package models

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-mcpc/internal/errors"
)

// Project describes the scaffold to generate. It is created once by the
// create command and is read-only afterwards.
type Project struct {
	// Name is the project name exactly as given on the command line
	Name string `json:"name"`

	// Path is the target directory: Name interpreted relative to the working directory
	Path string `json:"path"`

	// Language is the resolved implementation language
	Language Language `json:"language"`

	// Tool is the resolved package manager
	Tool Tool `json:"tool"`
}

// NewProject creates a new Project rooted at workDir
func NewProject(name, workDir string, language Language, tool Tool) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.WithHint(
			errors.Wrap(ErrInvalidProjectName, "project name cannot be empty"),
			"pass the project name as the first argument, e.g. mcpc my-server")
	}
	if !language.IsValid() {
		return nil, fmt.Errorf("invalid language: %s", language)
	}
	if !tool.IsValid() {
		return nil, fmt.Errorf("invalid tool: %s", tool)
	}

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, name)
	}

	return &Project{
		Name:     name,
		Path:     filepath.Clean(path),
		Language: language,
		Tool:     tool,
	}, nil
}

// File returns the absolute path of a project-relative slash path
func (p *Project) File(rel string) string {
	return filepath.Join(p.Path, filepath.FromSlash(rel))
}
