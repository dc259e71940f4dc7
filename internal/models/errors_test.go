package models

import (
	"testing"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckCompatible(t *testing.T) {
	for _, language := range Languages() {
		for _, tool := range Tools() {
			err := CheckCompatible(language, tool)
			if Compatible(language, tool) {
				require.NoError(t, err, "%s/%s", language, tool)
				continue
			}
			require.ErrorIs(t, err, ErrIncompatibleTool, "%s/%s", language, tool)
		}
	}
}

func TestCheckCompatibleHint(t *testing.T) {
	err := CheckCompatible(LanguageTypeScript, ToolUv)
	require.EqualError(t, err, "uv cannot be used for TypeScript projects: incompatible tool")
	require.Equal(t, []string{"use one of: pnpm, yarn, npm"}, errors.Hints(err))

	err = CheckCompatible(LanguagePython, ToolNpm)
	require.Equal(t, []string{"use one of: uv"}, errors.Hints(err))
}
