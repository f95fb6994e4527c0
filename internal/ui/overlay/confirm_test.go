package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func resolveConfirm(t *testing.T, cmd tea.Cmd) (SelectionMsg, bool) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}

	// resolve returns a batch of SelectionMsg + CloseOverlayMsg; execute the
	// batch and pick out the selection.
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if sel, ok := c().(SelectionMsg); ok {
				return sel, true
			}
		}
		return SelectionMsg{}, false
	}
	sel, ok := msg.(SelectionMsg)
	return sel, ok
}

func TestConfirmDialog_YesKey(t *testing.T) {
	dialog := NewConfirmDialog("delete", "Delete Task", "Are you sure?")

	_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

	sel, ok := resolveConfirm(t, cmd)
	if !ok {
		t.Fatal("expected a SelectionMsg")
	}
	if sel.Key != "delete" {
		t.Errorf("expected key 'delete', got %q", sel.Key)
	}
	if !sel.Value.(ConfirmResult).Confirmed {
		t.Error("expected Confirmed to be true")
	}
}

func TestConfirmDialog_EscapeCancels(t *testing.T) {
	dialog := NewConfirmDialog("reset", "Reset Board", "Really?")

	_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEscape})

	sel, ok := resolveConfirm(t, cmd)
	if !ok {
		t.Fatal("expected a SelectionMsg")
	}
	if sel.Value.(ConfirmResult).Confirmed {
		t.Error("escape should cancel")
	}
}

func TestConfirmDialog_EnterConfirmsSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected bool
		want     bool
	}{
		{"enter on No", false, false},
		{"enter on Yes", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := NewConfirmDialog("k", "Title", "Message")
			dialog.selected = tt.selected

			_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})

			sel, ok := resolveConfirm(t, cmd)
			if !ok {
				t.Fatal("expected a SelectionMsg")
			}
			if got := sel.Value.(ConfirmResult).Confirmed; got != tt.want {
				t.Errorf("expected Confirmed %v, got %v", tt.want, got)
			}
		})
	}
}

func TestConfirmDialog_Navigation(t *testing.T) {
	dialog := NewConfirmDialog("k", "Title", "Message")
	if dialog.selected {
		t.Fatal("default selection should be No")
	}

	model, _ := dialog.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	if !model.(*ConfirmDialog).selected {
		t.Error("'l' should move selection to Yes")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	if model.(*ConfirmDialog).selected {
		t.Error("'h' should move selection back to No")
	}
}
