package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/branxiety/gameplan-ai/internal/cli/formatter"
	"github.com/branxiety/gameplan-ai/internal/coach"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tuiState tracks which of the three screens is active.
type tuiState int

const (
	stateForm tuiState = iota
	stateLoading
	stateResult
)

// planReadyMsg carries a finished plan back into the update loop.
type planReadyMsg struct {
	plan *coach.Plan
}

// planFailedMsg carries a generation error back into the update loop.
type planFailedMsg struct {
	err error
}

// tuiKeyMap defines the shortcuts available on the result screen.
type tuiKeyMap struct {
	NewPlan key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultTUIKeyMap() tuiKeyMap {
	return tuiKeyMap{
		NewPlan: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new plan")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// tuiModel is the root bubbletea Model for the interactive planner.
// It cycles form -> loading -> result; a failed generation returns to the
// form with the error shown above it and all selections retained.
type tuiModel struct {
	app     *App
	state   tuiState
	profile *coach.Profile
	form    *huh.Form
	spin    spinner.Model
	vp      viewport.Model
	keys    tuiKeyMap
	plan    *coach.Plan
	errMsg  string

	width    int
	height   int
	quitting bool
}

func newTUIModel(app *App) tuiModel {
	profile := coach.DefaultProfile()

	vp := viewport.New(0, 0)
	vp.KeyMap = resultViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = formatter.StyleHeader

	return tuiModel{
		app:     app,
		state:   stateForm,
		profile: &profile,
		form:    newProfileForm(&profile),
		spin:    spin,
		vp:      vp,
		keys:    defaultTUIKeyMap(),
	}
}

// resultViewportKeyMap returns a restricted keymap for the plan viewport.
// Only arrow/page keys scroll — letter keys (n, q) are left free so they
// can trigger the result screen shortcuts.
func resultViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m tuiModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = m.contentHeight()
		if m.plan != nil {
			m.vp.SetContent(wrapToWidth(m.plan.Markdown, m.width))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

	case planReadyMsg:
		m.state = stateResult
		m.plan = msg.plan
		m.errMsg = ""
		m.vp.SetContent(wrapToWidth(msg.plan.Markdown, m.width))
		m.vp.GotoTop()
		return m, nil

	case planFailedMsg:
		// Back to the form with everything the user picked still in place.
		m.state = stateForm
		m.errMsg = coach.GenerationFailureMessage(msg.err)
		m.form = newProfileForm(m.profile)
		return m, m.form.Init()

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	switch m.state {
	case stateForm:
		return m.updateForm(msg)
	case stateResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m tuiModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.quitting = true
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.state = stateLoading
		m.errMsg = ""
		return m, tea.Batch(m.spin.Tick, generatePlanCmd(m.app.Planner, *m.profile))
	}
	return m, cmd
}

func (m tuiModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.NewPlan), key.Matches(keyMsg, m.keys.Back):
			m.state = stateForm
			m.plan = nil
			m.form = newProfileForm(m.profile)
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// generatePlanCmd runs plan generation off the update loop and reports the
// outcome as a message.
func generatePlanCmd(planner coach.Service, profile coach.Profile) tea.Cmd {
	return func() tea.Msg {
		plan, err := planner.GeneratePlan(context.Background(), profile)
		if err != nil {
			return planFailedMsg{err: err}
		}
		return planReadyMsg{plan: plan}
	}
}

// ── views ────────────────────────────────────────────────────────────────────

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case stateLoading:
		return m.loadingView()
	case stateResult:
		return m.resultView()
	default:
		return m.formView()
	}
}

func (m tuiModel) formView() string {
	var b strings.Builder
	b.WriteString(formatter.Header("GamePlan"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Your AI training companion. Fill in today's profile and describe the workout you want."))
	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(formatter.StyleRed.Render(m.errMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.View())
	return b.String()
}

func (m tuiModel) loadingView() string {
	return fmt.Sprintf("%s\n\n%s %s\n",
		formatter.Header("GamePlan"),
		m.spin.View(),
		formatter.Dim("Designing your GamePlan..."),
	)
}

func (m tuiModel) resultView() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Your GamePlan"))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	if m.plan != nil {
		b.WriteString(formatter.Dim(fmt.Sprintf("model %s · %d ms · exercise hints from %s",
			m.plan.Model, m.plan.LatencyMs, m.plan.Focus)))
		b.WriteString("\n")
	}
	b.WriteString(formatter.Dim("n new plan · esc back · q quit · arrows scroll"))
	return b.String()
}

// contentHeight returns the viewport height, reserving lines for the header
// and the footer.
func (m tuiModel) contentHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// wrapToWidth soft-wraps raw plan text to the terminal width.
func wrapToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// runTUI starts the interactive planner in the alternate screen.
func runTUI(app *App) error {
	p := tea.NewProgram(newTUIModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
