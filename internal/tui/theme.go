package tui

import (
	huh "github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the orange/blue theme used by interactive forms
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeCharm()

	t.Focused.Base = t.Focused.Base.BorderForeground(blue)
	t.Focused.Title = t.Focused.Title.Foreground(orange).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(orange).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(grey)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(orange)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(blue)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(orange)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(blue)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(orange)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
