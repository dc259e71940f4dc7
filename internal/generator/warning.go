package generator

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Warning is a soft failure: reported to the user, never escalated
type Warning struct {
	// Message says what did not work
	Message string

	// Cause is the underlying error, if any
	Cause error

	// Dir is where the remediation commands must be run
	Dir string

	// Remediation lists commands the user can run to finish the step by hand
	Remediation [][]string
}

// Commands returns the remediation commands quoted for a POSIX shell
func (w Warning) Commands() []string {
	out := make([]string, 0, len(w.Remediation))
	for _, argv := range w.Remediation {
		out = append(out, shellquote.Join(argv...))
	}
	return out
}

func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(w.Message)
	if w.Cause != nil {
		b.WriteString(": ")
		b.WriteString(w.Cause.Error())
	}
	return b.String()
}
