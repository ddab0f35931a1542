package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"quizdown/internal/quiz"
)

const maxBodyBytes = 1 << 20

// Handler owns the served session. All access goes through mu.
type Handler struct {
	mu       sync.Mutex
	session  quiz.Session
	source   string
	opts     quiz.ConvertOptions
	log      zerolog.Logger
	onFinish func(source string, session quiz.Session)
}

// NewHandler builds the router for the quiz API.
func NewHandler(cfg Config) http.Handler {
	h := &Handler{
		session:  quiz.NewSession(nil),
		opts:     cfg.Convert,
		log:      cfg.Logger,
		onFinish: cfg.OnFinish,
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(requestLogger(cfg.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)
	r.Route("/api", func(api chi.Router) {
		api.Post("/convert", h.Convert)
		api.Get("/session", h.Session)
		api.Post("/session/toggle", h.Toggle)
		api.Post("/session/advance", h.Advance)
	})
	return r
}

type convertRequest struct {
	Text string `json:"text"`
}

type toggleRequest struct {
	ID      string `json:"id"`
	Checked bool   `json:"checked"`
}

type advanceResponse struct {
	Correct        bool        `json:"correct"`
	CorrectAnswers []string    `json:"correct_answers"`
	Session        sessionView `json:"session"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Convert replaces the session with one built from the posted text.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusBadRequest, errors.New("text is empty"))
		return
	}

	h.mu.Lock()
	h.session = quiz.Convert(req.Text, h.opts)
	h.source = req.Text
	view := newSessionView(h.session, h.source)
	h.mu.Unlock()

	h.log.Debug().Int("questions", view.Total).Msg("converted quiz")
	writeJSON(w, http.StatusCreated, view)
}

// Session returns the current session.
func (h *Handler) Session(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	view := newSessionView(h.session, h.source)
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

// Toggle selects or deselects an option of the current question.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	question, ok := h.session.Current()
	if !ok {
		respondError(w, http.StatusConflict, errors.New("session is finished"))
		return
	}
	if _, ok := question.Option(req.ID); !ok {
		respondError(w, http.StatusNotFound, errors.New("unknown option "+req.ID))
		return
	}
	h.session = h.session.Toggle(req.ID, req.Checked)
	writeJSON(w, http.StatusOK, newSessionView(h.session, h.source))
}

// Advance scores the current question and moves on.
func (h *Handler) Advance(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	next, outcome, ok := h.session.Advance()
	if !ok {
		h.mu.Unlock()
		respondError(w, http.StatusConflict, errors.New("session is finished"))
		return
	}
	h.session = next
	source := h.source
	h.mu.Unlock()

	if next.Finished() && h.onFinish != nil {
		h.onFinish(source, next)
	}
	writeJSON(w, http.StatusOK, advanceResponse{
		Correct:        outcome.Correct,
		CorrectAnswers: nonNil(quiz.CorrectTexts(outcome.Question)),
		Session:        newSessionView(next, source),
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.New("invalid request body: " + err.Error())
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// requestLogger logs one line per request.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
