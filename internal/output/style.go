package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f46251"))
)

// colorEnabled reports whether stdout is a terminal. Piped output (CI, the
// sync checker's own tests) stays free of escape sequences.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Success styles text as a success message when writing to a terminal.
func Success(text string) string {
	if !colorEnabled() {
		return text
	}
	return successStyle.Render(text)
}

// Failure styles text as a failure message when writing to a terminal.
func Failure(text string) string {
	if !colorEnabled() {
		return text
	}
	return failureStyle.Render(text)
}
