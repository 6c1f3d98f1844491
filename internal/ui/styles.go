package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorPrimary   = "#81CCBB" // teal - card border, titles
	ColorSecondary = "#92E3D5" // light teal - progress bar end, highlights
	ColorAccent    = "205"     // magenta - selection
	ColorMuted     = "241"     // gray - hints
	ColorText      = "252"     // light gray - card text
	ColorWarm      = "208"     // orange - celebration
)

// Styles contains shared style definitions used across screens and modals.
var Styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	Card       lipgloss.Style // front face
	CardHidden lipgloss.Style // face mid-flip
	Box        lipgloss.Style // modals
	BoxCompact lipgloss.Style

	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Counter  lipgloss.Style
	Empty    lipgloss.Style
	Party    lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondary)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Foreground(lipgloss.Color(ColorText)).
		Align(lipgloss.Center, lipgloss.Center).
		Padding(1, 2),
	CardHidden: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorMuted)).
		Align(lipgloss.Center, lipgloss.Center).
		Padding(1, 0),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Counter: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSecondary)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Party: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarm)),
}

// NewCategoryDelegate returns the list delegate used on the home screen:
// title plus a muted "n tasks" description.
func NewCategoryDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(lipgloss.Color(ColorPrimary)).
		BorderForeground(lipgloss.Color(ColorPrimary))
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(lipgloss.Color(ColorSecondary)).
		BorderForeground(lipgloss.Color(ColorPrimary))
	d.Styles.NormalDesc = Styles.Muted.Padding(0, 0, 0, 2)
	return d
}
