package tui

import (
	"context"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stathisch/mullroot/internal/orchestration"
)

// sextic is the reference target function f(x) = x^6 - 2.
func sextic(x float64) float64 {
	return math.Pow(x, 6) - 2
}

// newTestModel creates a model with the reference defaults.
func newTestModel() Model {
	return NewModel(context.Background(), sextic, 1, 2, 20, 15)
}

// keyMsg builds a key message from a single rune.
func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

// TestNewModel verifies the form is seeded with the configured defaults.
func TestNewModel(t *testing.T) {
	m := newTestModel()

	if got := m.inputs[fieldX0].Value(); got != "1" {
		t.Errorf("x0 field = %q, want %q", got, "1")
	}
	if got := m.inputs[fieldIterations].Value(); got != "20" {
		t.Errorf("iterations field = %q, want %q", got, "20")
	}
	if m.focused != fieldX0 {
		t.Errorf("initial focus = %d, want x0 field", m.focused)
	}
}

// TestModel_QuitKey verifies q produces a quit command.
func TestModel_QuitKey(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("q should produce a command")
	}
	if msg := cmd(); msg == nil {
		t.Error("quit command should produce a message")
	}
}

// TestModel_FieldNavigation verifies tab cycles the focus.
func TestModel_FieldNavigation(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyTab}))
	m = next.(Model)
	if m.focused != fieldX1 {
		t.Errorf("focus after tab = %d, want x1 field", m.focused)
	}

	prev, _ := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyShiftTab}))
	m = prev.(Model)
	if m.focused != fieldX0 {
		t.Errorf("focus after shift+tab = %d, want x0 field", m.focused)
	}
}

// TestModel_FormValidation verifies invalid form input surfaces inline
// instead of starting a solve.
func TestModel_FormValidation(t *testing.T) {
	m := newTestModel()
	m.inputs[fieldX1].SetValue("1") // same as x0

	next, cmd := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	m = next.(Model)

	if cmd != nil {
		t.Error("invalid form should not produce a solve command")
	}
	if m.formErr == nil {
		t.Fatal("invalid form should set formErr")
	}
	if !strings.Contains(m.View(), "x1") {
		t.Errorf("view should surface the validation error, got: %s", m.View())
	}
}

// TestModel_SolveFlow verifies enter starts a solve and the outcome message
// switches to the result view.
func TestModel_SolveFlow(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("valid form should produce a solve command")
	}

	msg := cmd()
	done, ok := msg.(solveDoneMsg)
	if !ok {
		t.Fatalf("solve command produced %T, want solveDoneMsg", msg)
	}
	if done.outcome.Err != nil {
		t.Fatalf("reference solve failed: %v", done.outcome.Err)
	}

	next, _ = m.Update(msg)
	m = next.(Model)
	if !m.showingResult {
		t.Fatal("model should switch to the result view")
	}

	view := m.View()
	if !strings.Contains(view, "Method has converged to a root.") {
		t.Errorf("result view should contain the summary, got: %s", view)
	}
	if !strings.Contains(view, "|step]") {
		t.Errorf("result view should contain the history table, got: %s", view)
	}
}

// TestModel_ResetKey verifies r returns from the result view to the form.
func TestModel_ResetKey(t *testing.T) {
	m := newTestModel()
	outcome := orchestration.SolveOutcome{}
	m.outcome = &outcome
	m.showingResult = true

	next, _ := m.Update(keyMsg('r'))
	m = next.(Model)

	if m.showingResult {
		t.Error("r should return to the form view")
	}
}
