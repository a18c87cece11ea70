// Package tui implements the interactive terminal mode: a parameter form
// feeding the solver, with the iteration history rendered in place.
package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/stathisch/mullroot/internal/errors"
	"github.com/stathisch/mullroot/internal/format"
	"github.com/stathisch/mullroot/internal/muller"
	"github.com/stathisch/mullroot/internal/orchestration"
)

// Form field indices.
const (
	fieldX0 = iota
	fieldX1
	fieldIterations
	fieldTolerance
	fieldCount
)

// fieldLabels maps form fields to their display labels.
var fieldLabels = [fieldCount]string{
	"Point x0",
	"Point x1",
	"Iterations",
	"Tolerance (digits)",
}

// keyMap defines the key bindings of the interactive mode.
type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Solve key.Binding
	Reset key.Binding
	Quit  key.Binding
}

// defaultKeyMap returns the standard bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Solve: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "solve")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new run")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// solveDoneMsg carries a finished solve back into the update loop.
type solveDoneMsg struct {
	outcome orchestration.SolveOutcome
}

// Model is the bubbletea model of the interactive mode. It is a two-state
// machine: editing the parameter form, then viewing a solve outcome.
type Model struct {
	ctx     context.Context
	f       muller.Func
	keys    keyMap
	inputs  [fieldCount]textinput.Model
	focused int

	showingResult bool
	outcome       *orchestration.SolveOutcome
	formErr       error

	exitCode int
}

// NewModel creates the interactive model with the form pre-filled from the
// given defaults.
//
// Parameters:
//   - ctx: The context bounding every solve started from the form.
//   - f: The target function.
//   - x0, x1: Initial form values for the starting points.
//   - iterations, tolerance: Initial form values for budget and precision.
//
// Returns:
//   - Model: The initialized model.
func NewModel(ctx context.Context, f muller.Func, x0, x1 float64, iterations, tolerance int) Model {
	m := Model{
		ctx:      ctx,
		f:        f,
		keys:     defaultKeyMap(),
		exitCode: apperrors.ExitSuccess,
	}

	defaults := [fieldCount]string{
		strconv.FormatFloat(x0, 'g', -1, 64),
		strconv.FormatFloat(x1, 'g', -1, 64),
		strconv.Itoa(iterations),
		strconv.Itoa(tolerance),
	}

	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.SetValue(defaults[i])
		ti.CharLimit = 24
		ti.Width = 26
		m.inputs[i] = ti
	}
	m.inputs[fieldX0].Focus()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset) && m.showingResult:
			m.showingResult = false
			m.outcome = nil
			return m, nil
		case key.Matches(msg, m.keys.Next) && !m.showingResult:
			m.focusField((m.focused + 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keys.Prev) && !m.showingResult:
			m.focusField((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keys.Solve) && !m.showingResult:
			params, err := m.formParams()
			if err != nil {
				m.formErr = err
				return m, nil
			}
			m.formErr = nil
			return m, m.solveCmd(params)
		}

	case solveDoneMsg:
		outcome := msg.outcome
		m.outcome = &outcome
		m.showingResult = true
		return m, nil
	}

	if !m.showingResult {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}
	return m, nil
}

// focusField moves the input focus to the given field.
func (m *Model) focusField(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

// formParams parses and validates the form into solver parameters.
func (m Model) formParams() (muller.Params, error) {
	x0, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldX0].Value()), 64)
	if err != nil {
		return muller.Params{}, apperrors.ValidationError{Field: "x0", Message: "not a number"}
	}
	x1, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldX1].Value()), 64)
	if err != nil {
		return muller.Params{}, apperrors.ValidationError{Field: "x1", Message: "not a number"}
	}
	iterations, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldIterations].Value()))
	if err != nil {
		return muller.Params{}, apperrors.ValidationError{Field: "iterations", Message: "not an integer"}
	}
	tolerance, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldTolerance].Value()))
	if err != nil {
		return muller.Params{}, apperrors.ValidationError{Field: "tolerance", Message: "not an integer"}
	}

	params := muller.Params{
		X0:              x0,
		X1:              x1,
		MaxIterations:   iterations,
		ToleranceDigits: tolerance,
		F:               m.f,
	}
	if err := params.Validate(); err != nil {
		return muller.Params{}, err
	}
	return params, nil
}

// solveCmd runs the solve off the update loop and delivers the outcome.
func (m Model) solveCmd(params muller.Params) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		outcome := orchestration.ExecuteSolve(ctx, params, orchestration.NullProgressReporter{}, io.Discard)
		return solveDoneMsg{outcome: outcome}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Muller's Root-Finding Method"))
	b.WriteString("\n")

	if m.showingResult && m.outcome != nil {
		m.renderResult(&b)
		b.WriteString(helpStyle.Render("r: new run  ·  q: quit"))
		return b.String()
	}

	for i := 0; i < fieldCount; i++ {
		label := labelStyle
		if i == m.focused {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.formErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.formErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: next field  ·  enter: solve  ·  q: quit"))
	return b.String()
}

// renderResult renders the outcome view: summary, root, and history table.
func (m Model) renderResult(b *strings.Builder) {
	outcome := *m.outcome

	if outcome.Err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", outcome.Err)))
		b.WriteString("\n")
		return
	}

	res := outcome.Result
	if res.Converged {
		b.WriteString(convergedStyle.Render("Method has converged to a root."))
	} else {
		b.WriteString(unconvergedStyle.Render("Method did not reach the allowed tolerance."))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Root x = %+.12e  (%d iterations, %s)\n\n",
		res.Root, res.IterationsUsed, format.FormatExecutionDuration(outcome.Duration)))

	var table strings.Builder
	fmt.Fprintf(&table, "%-11s%-25s%-25s%-25s%-s\n", "|step]", "|x]", "|f(x)]", "|d]", "|c]")
	for i := 0; i < res.History.Len(); i++ {
		fmt.Fprintf(&table, "| %08d | %s | %s | %s | %s\n",
			i+1,
			format.Scientific(res.History.X[i]),
			format.Scientific(res.History.Y[i]),
			format.Scientific(res.History.D[i]),
			format.Scientific(res.History.C[i]))
	}
	b.WriteString(tableStyle.Render(table.String()))
	b.WriteString("\n")
}

// Run starts the interactive mode and blocks until the user quits.
//
// Parameters:
//   - ctx: The context bounding the session.
//   - f: The target function.
//   - x0, x1, iterations, tolerance: Initial form values.
//
// Returns:
//   - int: The process exit code.
func Run(ctx context.Context, f muller.Func, x0, x1 float64, iterations, tolerance int) int {
	model := NewModel(ctx, f, x0, x1, iterations, tolerance)

	program := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}

	if m, ok := final.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
