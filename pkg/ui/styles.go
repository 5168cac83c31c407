// Package ui holds the terminal presentation layer: banner, color palette,
// and status output. Color usage is controlled by an explicit switch rather
// than package-global ANSI constants.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette.
var (
	Success = lipgloss.Color("#00D26A")
	Error   = lipgloss.Color("#FF3838")
	Accent  = lipgloss.Color("#4D96FF")
	Muted   = lipgloss.Color("#6B7280")
)

// Pre-configured styles.
var (
	BannerStyle  = lipgloss.NewStyle().Foreground(Accent)
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(Error)
	StatStyle    = lipgloss.NewStyle().Bold(true)
	RuleStyle    = lipgloss.NewStyle().Foreground(Muted)
)

// SetNoColor disables colored output for the whole presentation layer.
func SetNoColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
