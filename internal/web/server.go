// Package web serves the single-page form shell: one page collecting the
// training profile, one POST that turns it into a generated plan.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/branxiety/gameplan-ai/internal/coach"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Server struct {
	Router  *chi.Mux
	tmpl    *template.Template
	planner coach.Service
	log     zerolog.Logger
}

type ServerOptions struct {
	Planner coach.Service
	Logger  zerolog.Logger
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(hlog.NewHandler(opts.Logger))
	r.Use(hlog.AccessHandler(func(req *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(req).Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", status).
			Dur("duration", duration).
			Msg("request")
	}))

	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

	s := &Server{Router: r, tmpl: tmpl, planner: opts.Planner, log: opts.Logger}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			s.log.Error().Err(err).Msg("writing health check response")
		}
	})

	r.Get("/", s.handleHome)
	r.Post("/generate", s.handleGenerate)

	return s
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
