package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/demoapps/taskboard/internal/types"
	"github.com/demoapps/taskboard/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	info   string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithInfo returns a copy of the status bar carrying an extra info segment,
// rendered right of the hints (active filter, sort order).
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	hints := GetHints(sb.mode)
	hintsRendered := sb.styles.StatusHint.Render(hints)

	separator := sb.styles.StatusHint.Render(" │ ")

	var content string
	if hints != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, hintsRendered)
	} else {
		content = modeBadge
	}

	if sb.info != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Left, content, separator, sb.styles.StatusInfo.Render(sb.info))
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
