package models

import (
	"fmt"
	"strings"
)

// Language is the implementation language of a generated project
type Language string

const (
	LanguagePython     Language = "python"
	LanguageTypeScript Language = "typescript"
)

// languageAliases maps every accepted spelling to its Language
var languageAliases = map[string]Language{
	"py":         LanguagePython,
	"python":     LanguagePython,
	"ts":         LanguageTypeScript,
	"typescript": LanguageTypeScript,
}

// Languages returns every supported language in display order
func Languages() []Language {
	return []Language{LanguageTypeScript, LanguagePython}
}

// IsValid checks if the language is supported
func (l Language) IsValid() bool {
	switch l {
	case LanguagePython, LanguageTypeScript:
		return true
	default:
		return false
	}
}

// String returns the string representation of Language
func (l Language) String() string {
	return string(l)
}

// DisplayName returns the human-readable language name
func (l Language) DisplayName() string {
	switch l {
	case LanguagePython:
		return "Python"
	case LanguageTypeScript:
		return "TypeScript"
	default:
		return string(l)
	}
}

// ParseLanguage parses a language name or its short alias (py, ts), ignoring case
func ParseLanguage(s string) (Language, error) {
	if l, ok := languageAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return "", fmt.Errorf("invalid language: %s (must be python, py, typescript, or ts)", s)
}
