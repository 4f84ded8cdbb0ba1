// Package style provides shared colours, icons and text styles for CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Muted  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Arrow   = "→"
)

// Text styles used by the task listing.
var (
	TaskName = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Detail   = lipgloss.NewStyle().Foreground(Muted)
	Default  = lipgloss.NewStyle().Foreground(Green)
)
