package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/hlog"

	"github.com/branxiety/gameplan-ai/internal/coach"
)

// pageData feeds the single page template for both the blank form and every
// POST outcome.
type pageData struct {
	Title      string
	Levels     []coach.Level
	Goals      []coach.Goal
	Moods      []coach.Mood
	FocusAreas []coach.FocusArea
	MinMinutes int
	MaxMinutes int
	Step       int
	Profile    coach.Profile
	Notice     string
	Error      string
	Plan       *coach.Plan
}

func newPageData() pageData {
	return pageData{
		Title:      "GamePlan – AI Training Companion",
		Levels:     coach.Levels(),
		Goals:      coach.Goals(),
		Moods:      coach.Moods(),
		FocusAreas: coach.FocusAreas(),
		MinMinutes: coach.MinMinutes,
		MaxMinutes: coach.MaxMinutes,
		Step:       coach.MinutesStep,
		Profile:    coach.DefaultProfile(),
	}
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "index", newPageData())
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	// Values the form widgets cannot produce are client errors; the one
	// reachable mistake, a blank request, gets the soft notice below.
	profile, err := profileFromForm(r.Form)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := newPageData()
	data.Profile = profile

	plan, err := s.planner.GeneratePlan(r.Context(), profile)
	switch {
	case errors.Is(err, coach.ErrEmptyRequest):
		data.Notice = coach.EmptyRequestHint
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("plan generation failed")
		data.Error = coach.GenerationFailureMessage(err)
	default:
		data.Plan = plan
	}
	s.render(w, "index", data)
}

func profileFromForm(form url.Values) (coach.Profile, error) {
	var p coach.Profile

	level, err := coach.ParseLevel(form.Get("level"))
	if err != nil {
		return p, err
	}
	goal, err := coach.ParseGoal(form.Get("goal"))
	if err != nil {
		return p, err
	}
	mood, err := coach.ParseMood(form.Get("mood"))
	if err != nil {
		return p, err
	}
	focus, err := coach.ParseFocusArea(form.Get("focus"))
	if err != nil {
		return p, err
	}
	minutes, err := strconv.Atoi(form.Get("minutes"))
	if err != nil {
		return p, fmt.Errorf("invalid session length %q", form.Get("minutes"))
	}

	return coach.Profile{
		Level:   level,
		Goal:    goal,
		Minutes: coach.ClampMinutes(minutes),
		Mood:    mood,
		Focus:   focus,
		Request: form.Get("request"),
	}, nil
}
