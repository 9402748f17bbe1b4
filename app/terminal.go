package main

import (
	"github.com/charmbracelet/lipgloss"
)

// terminalScheme is the system color scheme for local commands, "auto" asks the terminal.
type terminalScheme string

func (s terminalScheme) PrefersDark() bool {
	switch s {
	case "dark":
		return true
	case "light":
		return false
	default:
		return lipgloss.HasDarkBackground()
	}
}

// iconGlyphs maps icon classes to characters a terminal can show
var iconGlyphs = map[string]string{
	"fas fa-moon": "☾",
	"fas fa-sun":  "☀",
}

// terminalView is the terminal counterpart of the page, it renders the applied theme as a styled badge.
type terminalView struct {
	theme string
	icon  string
	label string
}

func newTerminalView() *terminalView { return &terminalView{} }

func (v *terminalView) ThemeAttr() string         { return v.theme }
func (v *terminalView) SetThemeAttr(value string) { v.theme = value }
func (v *terminalView) SetClass(class string)     { v.icon = class }
func (v *terminalView) SetText(text string)       { v.label = text }

// Render returns the label styled for the applied theme.
func (v *terminalView) Render() string {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if v.theme == "dark" {
		style = style.Foreground(lipgloss.Color("#e6edf3")).Background(lipgloss.Color("#0d1117"))
	} else {
		style = style.Foreground(lipgloss.Color("#1f2328")).Background(lipgloss.Color("#ffffff"))
	}
	return style.Render(iconGlyphs[v.icon] + " " + v.label)
}
