package cli

import (
	"testing"

	"github.com/branxiety/gameplan-ai/internal/coach"
	"github.com/stretchr/testify/assert"
)

func newTestShell(planner coach.Service) *shellSession {
	return &shellSession{
		app:     testApp(planner),
		profile: coach.DefaultProfile(),
	}
}

func TestShellSession_SetUpdatesProfile(t *testing.T) {
	sess := newTestShell(&stubPlanner{plan: testPlan()})

	sess.execSet([]string{"focus", "legs"})
	assert.Equal(t, coach.FocusLegs, sess.profile.Focus)

	sess.execSet([]string{"minutes", "33"})
	assert.Equal(t, 35, sess.profile.Minutes)

	sess.execSet([]string{"mood", "very", "motivated"})
	assert.Equal(t, coach.MoodVeryMotivated, sess.profile.Mood)
}

func TestShellSession_SetInvalidValueKeepsProfile(t *testing.T) {
	sess := newTestShell(&stubPlanner{plan: testPlan()})

	sess.execSet([]string{"level", "epic"})
	assert.Equal(t, coach.LevelBeginner, sess.profile.Level)

	sess.execSet([]string{"minutes", "lots"})
	assert.Equal(t, coach.DefaultMinutes, sess.profile.Minutes)
}

func TestShellSession_PlanUsesStickyProfile(t *testing.T) {
	stub := &stubPlanner{plan: testPlan()}
	sess := newTestShell(stub)
	sess.profile.Focus = coach.FocusLegs
	sess.profile.Minutes = 20

	sess.execPlan("quick legs before practice")

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, coach.FocusLegs, stub.got.Focus)
	assert.Equal(t, 20, stub.got.Minutes)
	assert.Equal(t, "quick legs before practice", stub.got.Request)

	// The sticky profile itself never keeps the request text.
	assert.Empty(t, sess.profile.Request)
}

func TestShellSession_EmptyPlanSkipsCall(t *testing.T) {
	stub := &stubPlanner{plan: testPlan()}
	sess := newTestShell(stub)

	sess.execPlan("   ")
	assert.Equal(t, 0, stub.calls)
}

func TestShellSession_ExecutorRoutesFreeTextToPlan(t *testing.T) {
	stub := &stubPlanner{plan: testPlan()}
	sess := newTestShell(stub)

	sess.executor("20 minute leg blast for basketball")

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "20 minute leg blast for basketball", stub.got.Request)
}

func TestShellSession_ExecutorExit(t *testing.T) {
	sess := newTestShell(&stubPlanner{plan: testPlan()})

	sess.executor("exit")
	assert.True(t, sess.wantExit)
}

func TestShellSession_LivePrefixShowsProfile(t *testing.T) {
	sess := newTestShell(&stubPlanner{plan: testPlan()})
	sess.profile.Minutes = 45
	sess.profile.Focus = coach.FocusLegs

	prefix, ok := sess.livePrefix()
	assert.True(t, ok)
	assert.Contains(t, prefix, "45m legs")
}

func TestSetValueSuggestions(t *testing.T) {
	assert.Len(t, setValueSuggestions("level"), 3)
	assert.Len(t, setValueSuggestions("goal"), 5)
	assert.Len(t, setValueSuggestions("minutes"), 17)
	assert.Len(t, setValueSuggestions("mood"), 4)
	assert.Len(t, setValueSuggestions("focus"), 4)
	assert.Empty(t, setValueSuggestions("bogus"))
}
