package run

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xhd2015/searchfield/component/search"
)

func typeKeys(m *bubbleModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestBubbleModel_Search(t *testing.T) {
	m := newBubbleModel("", []string{"Bengal", "Siamese", "Shiba Inu"}, false)

	typeKeys(m, "i")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.query != "i" {
		t.Fatalf("Expected query 'i', got %q", m.query)
	}
	view := m.View()
	if strings.Contains(view, "Bengal") {
		t.Errorf("Expected Bengal to be filtered out, got:\n%s", view)
	}
	if !strings.Contains(view, "amese") || !strings.Contains(view, "ba Inu") {
		t.Errorf("Expected matching items, got:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.query != "" || m.field.Value() != "" {
		t.Errorf("Expected esc to clear, got %q %q", m.query, m.field.Value())
	}
}

func TestBubbleModel_EmptySubmit(t *testing.T) {
	m := newBubbleModel("", []string{"Persian"}, false)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.query != "" {
		t.Errorf("Expected no query, got %q", m.query)
	}
	if !strings.Contains(m.View(), search.EmptyMessage) {
		t.Errorf("Expected empty message in view")
	}
}

func TestBubbleModel_ErrorFlag(t *testing.T) {
	m := newBubbleModel("", nil, true)
	if !m.field.HasError() {
		t.Fatalf("Expected starting error flag to show")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if m.field.HasError() {
		t.Errorf("Expected ctrl+e to reset the flag")
	}
}

func TestBubbleModel_CopyQuery(t *testing.T) {
	m := newBubbleModel("", []string{"Siamese"}, false)
	var copied []string
	m.copy = func(text string) error {
		copied = append(copied, text)
		return nil
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.statusError != "nothing to copy" || len(copied) != 0 {
		t.Errorf("Expected nothing to copy, got %q %v", m.statusError, copied)
	}

	typeKeys(m, "cats")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if len(copied) != 1 || copied[0] != "cats" {
		t.Errorf("Expected cats copied once, got %v", copied)
	}
	if !strings.Contains(m.View(), "copied cats") {
		t.Errorf("Expected status in view, got:\n%s", m.View())
	}
	if m.field.Value() != "cats" {
		t.Errorf("Expected ctrl+y not to reach the input, got %q", m.field.Value())
	}
}

func TestBubbleModel_DoubleCtrlC(t *testing.T) {
	m := newBubbleModel("", nil, false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("Expected a timer command after the first ctrl+c")
	}
	if !strings.Contains(m.View(), "press Ctrl-C again to exit") {
		t.Errorf("Expected exit hint, got:\n%s", m.View())
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Expected second ctrl+c to quit")
	}
}

func TestBubbleModel_CtrlCExpires(t *testing.T) {
	m := newBubbleModel("", nil, false)
	m.lastCtrlC = time.Now().Add(-2 * ctrlCWindow)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("Expected a timer command")
	}
	if !m.ctrlCPending() {
		t.Errorf("Expected an expired press to start a new window instead of quitting")
	}
}
