// Package api serves the quiz over a small stateless JSON API.
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"englex/internal/domain"
	"englex/internal/quiz"
	"englex/internal/vocab"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// MaxFactsCount caps the count parameter of /api/facts
const MaxFactsCount = 10

// WordInfoProvider builds the entry for a word
type WordInfoProvider interface {
	GetWordInfo(ctx context.Context, word string) *domain.WordEntry
}

// FactProvider returns a set of facts
type FactProvider interface {
	Facts(ctx context.Context, count int) []domain.Fact
}

// Handler holds the dependencies of the HTTP endpoints
type Handler struct {
	Words      WordInfoProvider
	Facts      FactProvider
	FactsCount int
	Logger     *zap.Logger
}

// CheckRequest is the body of POST /api/check
type CheckRequest struct {
	Word   string `json:"word"`
	Answer string `json:"answer"`
}

// CheckResponse reports whether an answer is accepted for a word
type CheckResponse struct {
	Correct     bool     `json:"correct"`
	Translation string   `json:"translation"`
	Synonyms    []string `json:"synonyms"`
}

// Router returns the chi router for all endpoints
func (h *Handler) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(h.logRequests)

	router.Get("/healthz", h.Health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/levels", h.GetLevels)
		r.Get("/levels/{level}/words", h.GetLevelWords)
		r.Get("/words/{word}", h.GetWord)
		r.Post("/check", h.CheckAnswer)
		r.Get("/facts", h.GetFacts)
	})

	return router
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (h *Handler) GetLevels(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, domain.Levels)
}

func (h *Handler) GetLevelWords(w http.ResponseWriter, r *http.Request) {
	level, ok := domain.ParseLevel(chi.URLParam(r, "level"))
	if !ok {
		renderError(w, r, http.StatusBadRequest, "Unknown level")
		return
	}
	render.JSON(w, r, vocab.WordsByLevel(level))
}

func (h *Handler) GetWord(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if word == "" {
		renderError(w, r, http.StatusBadRequest, "Word is required")
		return
	}
	render.JSON(w, r, h.Words.GetWordInfo(r.Context(), word))
}

// CheckAnswer evaluates an answer without touching any learner's ledger
func (h *Handler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Word == "" {
		renderError(w, r, http.StatusBadRequest, "Word is required")
		return
	}

	entry := h.Words.GetWordInfo(r.Context(), req.Word)
	render.JSON(w, r, CheckResponse{
		Correct:     quiz.Evaluate(req.Answer, entry.AcceptedAnswers),
		Translation: entry.Translation,
		Synonyms:    entry.Synonyms,
	})
}

func (h *Handler) GetFacts(w http.ResponseWriter, r *http.Request) {
	count := h.FactsCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxFactsCount {
			renderError(w, r, http.StatusBadRequest, "count must be between 1 and 10")
			return
		}
		count = n
	}
	render.JSON(w, r, h.Facts.Facts(r.Context(), count))
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.Logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]interface{}{
		"error": map[string]interface{}{
			"statusCode": status,
			"message":    message,
		},
	})
}
