package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/ui/styles"
)

// ActivityOverlay displays the recent activity log, newest first
type ActivityOverlay struct {
	entries     []domain.ActivityEntry
	scroll      int
	viewHeight  int
	styles      *Styles
	boardStyles *styles.Styles
}

// NewActivityOverlay creates a new activity log overlay
func NewActivityOverlay(entries []domain.ActivityEntry) *ActivityOverlay {
	return &ActivityOverlay{
		entries:     entries,
		viewHeight:  18,
		styles:      New(),
		boardStyles: styles.New(),
	}
}

// Init initializes the overlay
func (a *ActivityOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (a *ActivityOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "a":
			return a, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if a.scroll < a.maxScroll() {
				a.scroll++
			}
			return a, nil

		case "k", "up":
			if a.scroll > 0 {
				a.scroll--
			}
			return a, nil

		case "g":
			a.scroll = 0
			return a, nil

		case "G":
			a.scroll = a.maxScroll()
			return a, nil
		}
	}

	return a, nil
}

// View renders the activity log
func (a *ActivityOverlay) View() string {
	if len(a.entries) == 0 {
		return a.styles.MenuItem.Render("No activity yet.")
	}

	var lines []string
	for _, entry := range a.entries {
		line := fmt.Sprintf("%s %s %s",
			a.boardStyles.ActivityAction(entry.Action).Render(string(entry.Action)),
			a.styles.MenuItem.Render(entry.TaskTitle),
			a.boardStyles.ActivityTime.Render(entry.Timestamp),
		)
		lines = append(lines, line)
		if entry.Details != "" {
			lines = append(lines, "    "+a.styles.Footer.Render(entry.Details))
		}
	}

	start := min(a.scroll, len(lines))
	end := min(start+a.viewHeight, len(lines))
	result := strings.Join(lines[start:end], "\n")

	if a.maxScroll() > 0 {
		result += "\n\n" + a.styles.Footer.Render("[j/k to scroll, g/G to jump]")
	}

	return result
}

// Title returns the overlay title
func (a *ActivityOverlay) Title() string {
	return "Recent Activity"
}

// Size returns the overlay dimensions
func (a *ActivityOverlay) Size() (width, height int) {
	return 64, 24
}

func (a *ActivityOverlay) maxScroll() int {
	total := len(a.entries)
	for _, e := range a.entries {
		if e.Details != "" {
			total++
		}
	}
	return max(0, total-a.viewHeight)
}
