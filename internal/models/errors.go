package models

import (
	"strings"

	"github.com/jakoblorz/go-mcpc/internal/errors"
)

var (
	// ErrInvalidProjectName is returned for blank project names
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrIncompatibleTool is returned when a tool cannot build a language
	ErrIncompatibleTool = errors.New("incompatible tool")
)

// CheckCompatible returns ErrIncompatibleTool, with a hint naming the valid
// tools, when tool cannot be used for language.
func CheckCompatible(language Language, tool Tool) error {
	if Compatible(language, tool) {
		return nil
	}

	valid := make([]string, 0, len(compatibleTools[language]))
	for _, t := range compatibleTools[language] {
		valid = append(valid, t.String())
	}

	err := errors.Wrapf(ErrIncompatibleTool, "%s cannot be used for %s projects", tool, language.DisplayName())
	return errors.WithHintf(err, "use one of: %s", strings.Join(valid, ", "))
}
