package console

import "github.com/charmbracelet/lipgloss"

var (
	green     = lipgloss.Color("#00C832")
	cyan      = lipgloss.Color("#00D4AA")
	red       = lipgloss.Color("#FF5F56")
	lightGray = lipgloss.Color("#aaaaaa")
)

// separatorWidth - длина черты между контактами
const separatorWidth = 50

type theme struct {
	prompt    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	separator lipgloss.Style
	message   lipgloss.Style
	failure   lipgloss.Style
}

// newTheme привязывает стили к renderer, чтобы профиль цвета определялся по writer вывода
func newTheme(r *lipgloss.Renderer) theme {
	return theme{
		prompt:    r.NewStyle().Foreground(cyan).Bold(true),
		label:     r.NewStyle().Foreground(green).Bold(true),
		value:     r.NewStyle(),
		separator: r.NewStyle().Foreground(lightGray),
		message:   r.NewStyle(),
		failure:   r.NewStyle().Foreground(red),
	}
}
