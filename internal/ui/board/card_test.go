package board

import (
	"strings"
	"testing"

	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/ui/styles"
)

func TestRenderCard_ContainsTaskFields(t *testing.T) {
	s := styles.New()
	task := domain.Task{
		ID:       "1",
		Title:    "Write release notes",
		Priority: domain.PriorityHigh,
		DueDate:  "2026-03-01",
		Tags:     []string{"docs"},
	}

	out := RenderCard(task, false, 40, s)

	if !strings.Contains(out, "Write release notes") {
		t.Error("card should contain the task title")
	}
	if !strings.Contains(out, "high") {
		t.Error("card should contain the priority badge")
	}
	if !strings.Contains(out, "2026-03-01") {
		t.Error("card should contain the due date")
	}
	if !strings.Contains(out, "docs") {
		t.Error("card should contain tags")
	}
}

func TestRenderCard_CursorIndicator(t *testing.T) {
	s := styles.New()
	task := domain.Task{Title: "Pointed at", Priority: domain.PriorityLow}

	with := RenderCard(task, true, 40, s)
	without := RenderCard(task, false, 40, s)

	if !strings.Contains(with, "▶") {
		t.Error("cursor card should contain the indicator")
	}
	if strings.Contains(without, "▶") {
		t.Error("non-cursor card should not contain the indicator")
	}
}

func TestRenderCard_TruncatesLongTitle(t *testing.T) {
	s := styles.New()
	task := domain.Task{
		Title:    strings.Repeat("x", 200),
		Priority: domain.PriorityMedium,
	}

	out := RenderCard(task, false, 30, s)

	if !strings.Contains(out, "…") {
		t.Error("long titles should be truncated with ellipsis")
	}
}
