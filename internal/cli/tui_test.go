package cli

import (
	"testing"

	"github.com/branxiety/gameplan-ai/internal/coach"
	"github.com/branxiety/gameplan-ai/internal/llm"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTUI builds a model with a stub planner and a simulated 80x24 terminal.
func newTestTUI(planner coach.Service) tuiModel {
	m := newTUIModel(testApp(planner))
	_ = m.Init()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(tuiModel)
}

func TestTUI_StartsOnForm(t *testing.T) {
	m := newTestTUI(&stubPlanner{plan: testPlan()})

	assert.Equal(t, stateForm, m.state)
	view := m.View()
	assert.Contains(t, view, "GAMEPLAN")
	assert.Contains(t, view, "Experience level")
}

func TestTUI_PlanReadyShowsResult(t *testing.T) {
	m := newTestTUI(&stubPlanner{plan: testPlan()})

	updated, _ := m.Update(planReadyMsg{plan: testPlan()})
	m = updated.(tuiModel)

	assert.Equal(t, stateResult, m.state)
	view := m.View()
	assert.Contains(t, view, "YOUR GAMEPLAN")
	assert.Contains(t, view, "## Warm-Up")
	assert.Contains(t, view, "gpt-4o-mini")
	assert.Contains(t, view, "n new plan")
}

func TestTUI_PlanFailureReturnsToForm(t *testing.T) {
	m := newTestTUI(&stubPlanner{plan: testPlan()})

	updated, _ := m.Update(planFailedMsg{err: llm.ErrTimeout})
	m = updated.(tuiModel)

	assert.Equal(t, stateForm, m.state)
	view := m.View()
	assert.Contains(t, view, "Something went wrong while generating your plan")
	assert.Contains(t, view, "timed out")
}

func TestTUI_FailureRetainsSelections(t *testing.T) {
	m := newTestTUI(&stubPlanner{plan: testPlan()})
	m.profile.Focus = coach.FocusLegs
	m.profile.Minutes = 45

	updated, _ := m.Update(planFailedMsg{err: llm.ErrUnavailable})
	m = updated.(tuiModel)

	assert.Equal(t, coach.FocusLegs, m.profile.Focus)
	assert.Equal(t, 45, m.profile.Minutes)
}

func TestTUI_ResultQuitKey(t *testing.T) {
	m := newTestTUI(&stubPlanner{plan: testPlan()})
	updated, _ := m.Update(planReadyMsg{plan: testPlan()})
	m = updated.(tuiModel)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTUI_ResultNewPlanKey(t *testing.T) {
	m := newTestTUI(&stubPlanner{plan: testPlan()})
	updated, _ := m.Update(planReadyMsg{plan: testPlan()})
	m = updated.(tuiModel)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(tuiModel)

	assert.Equal(t, stateForm, m.state)
	assert.Nil(t, m.plan)
	assert.NotNil(t, cmd)
}

func TestTUI_CtrlCQuits(t *testing.T) {
	m := newTestTUI(&stubPlanner{plan: testPlan()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTUI_EscOnFormQuits(t *testing.T) {
	m := newTestTUI(&stubPlanner{plan: testPlan()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTUI_LoadingViewShowsProgress(t *testing.T) {
	m := newTestTUI(&stubPlanner{plan: testPlan()})
	m.state = stateLoading

	assert.Contains(t, m.View(), "Designing your GamePlan...")
}

func TestTUI_SpinnerTickIgnoredOutsideLoading(t *testing.T) {
	m := newTestTUI(&stubPlanner{plan: testPlan()})

	updated, cmd := m.Update(spinner.TickMsg{})
	m = updated.(tuiModel)

	assert.Equal(t, stateForm, m.state)
	assert.Nil(t, cmd)
}

func TestGeneratePlanCmd_Success(t *testing.T) {
	stub := &stubPlanner{plan: testPlan()}

	msg := generatePlanCmd(stub, coach.DefaultProfile())()
	ready, ok := msg.(planReadyMsg)
	require.True(t, ok)
	assert.Equal(t, "gpt-4o-mini", ready.plan.Model)
	assert.Equal(t, 1, stub.calls)
}

func TestGeneratePlanCmd_Failure(t *testing.T) {
	stub := &stubPlanner{err: llm.ErrUnavailable}

	msg := generatePlanCmd(stub, coach.DefaultProfile())()
	failed, ok := msg.(planFailedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, failed.err, llm.ErrUnavailable)
}
