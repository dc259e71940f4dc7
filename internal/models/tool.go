package models

import (
	"fmt"
	"strings"
)

// Tool is the package or environment manager used to materialize dependencies
type Tool string

const (
	ToolUv   Tool = "uv"
	ToolPnpm Tool = "pnpm"
	ToolYarn Tool = "yarn"
	ToolNpm  Tool = "npm"
)

// Tools returns every supported tool
func Tools() []Tool {
	return []Tool{ToolUv, ToolPnpm, ToolYarn, ToolNpm}
}

// defaultTools is the per-language default. Every Language must have an entry.
var defaultTools = map[Language]Tool{
	LanguagePython:     ToolUv,
	LanguageTypeScript: ToolPnpm,
}

// compatibleTools lists the tools each language can be generated with
var compatibleTools = map[Language][]Tool{
	LanguagePython:     {ToolUv},
	LanguageTypeScript: {ToolPnpm, ToolYarn, ToolNpm},
}

// IsValid checks if the tool is supported
func (t Tool) IsValid() bool {
	switch t {
	case ToolUv, ToolPnpm, ToolYarn, ToolNpm:
		return true
	default:
		return false
	}
}

// String returns the string representation of Tool
func (t Tool) String() string {
	return string(t)
}

// ParseTool parses a tool name, ignoring case
func ParseTool(s string) (Tool, error) {
	t := Tool(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tool: %s (must be uv, pnpm, yarn, or npm)", s)
	}
	return t, nil
}

// DefaultTool returns the tool used for a language when none is given
func DefaultTool(language Language) Tool {
	return defaultTools[language]
}

// CompatibleTools returns the tools that can be used with a language
func CompatibleTools(language Language) []Tool {
	tools := compatibleTools[language]
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// Compatible reports whether tool can be used to generate a project in language
func Compatible(language Language, tool Tool) bool {
	for _, t := range compatibleTools[language] {
		if t == tool {
			return true
		}
	}
	return false
}
