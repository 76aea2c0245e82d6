// Package server exposes the screening core over HTTP for the presentation
// layer. All endpoints are stateless: each request carries the full project
// selection and the response is computed on the spot.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/alterra-fm/screening-cli/internal/catalog"
	"github.com/alterra-fm/screening-cli/internal/chat"
	"github.com/alterra-fm/screening-cli/internal/config"
	"github.com/alterra-fm/screening-cli/internal/model"
	"github.com/alterra-fm/screening-cli/internal/project"
	"github.com/alterra-fm/screening-cli/internal/screening"
)

// Server wires the catalog and scoring configuration into HTTP handlers.
type Server struct {
	cat     *catalog.Catalog
	weights screening.Weights
	replier *chat.Replier
	limiter *rate.Limiter
}

// New creates a Server.
func New(cat *catalog.Catalog, cfg *config.Config) *Server {
	return &Server{
		cat: cat,
		weights: screening.Weights{
			Sector:             cfg.Scoring.SectorWeight,
			Country:            cfg.Scoring.CountryWeight,
			GeneralClauseFloor: cfg.Scoring.GeneralClauseFloor,
		},
		replier: chat.NewReplier(time.Duration(cfg.Chat.ReplyDelayMillis) * time.Millisecond),
		limiter: rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst),
	}
}

// Routes builds the chi router.
func (s *Server) Routes(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.rateLimit)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog/sectors", s.handleSectors)
		r.Get("/catalog/countries", s.handleCountries)
		r.Get("/catalog/funds", s.handleFunds)
		r.Post("/screen", s.handleScreen)
		r.Post("/assess", s.handleAssess)
		r.Post("/questions", s.handleQuestions)
		r.Post("/documents", s.handleDocuments)
		r.Post("/chat", s.handleChat)
	})
	return r
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSectors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.Sectors)
}

func (s *Server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.Countries)
}

func (s *Server) handleFunds(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.Funds)
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (model.ProjectState, bool) {
	var req project.File
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return model.ProjectState{}, false
	}
	state, err := project.Resolve(req, s.cat)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return model.ProjectState{}, false
	}
	return state, true
}

func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	state, ok := s.resolve(w, r)
	if !ok {
		return
	}
	decision := screening.Evaluate(state.Sector, state.Activities)
	sectorID := ""
	if state.Sector != nil {
		sectorID = state.Sector.ID
	}
	zap.L().Info("server: screen",
		zap.String("sector", sectorID),
		zap.String("decision", string(decision.Kind)),
	)
	writeJSON(w, http.StatusOK, decision)
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	state, ok := s.resolve(w, r)
	if !ok {
		return
	}
	questions := model.FilterQuestions(s.cat.Questions, state.Fund, state.Sector)
	result, err := screening.CalculateRisk(&state, questions, s.cat.Clauses, s.weights)
	if err != nil {
		// Incomplete triage is the only error the engine raises; surface it
		// as unprocessable so the client can prompt for the missing step.
		writeError(w, http.StatusUnprocessableEntity, "complete la clasificación del proyecto antes de calcular el rating")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Decision screening.Decision      `json:"decision"`
		Result   *model.AssessmentResult `json:"result"`
	}{screening.Evaluate(state.Sector, state.Activities), result})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	state, ok := s.resolve(w, r)
	if !ok {
		return
	}
	questions := model.FilterQuestions(s.cat.Questions, state.Fund, state.Sector)
	writeJSON(w, http.StatusOK, struct {
		Questions []model.Question `json:"questions"`
		Answered  int              `json:"answered"`
	}{questions, model.AnsweredCount(questions, state.Answers)})
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	state, ok := s.resolve(w, r)
	if !ok {
		return
	}
	docs := model.FilterDocuments(s.cat.Documents, state.Fund, state.Sector)
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	msg, replies := s.replier.Send(chat.SenderClient, req.Text)
	// The reply arrives on a timer; the handler waits for it so the client
	// gets a complete exchange, but the replier itself never blocks senders.
	reply := <-replies
	writeJSON(w, http.StatusOK, struct {
		Message chat.Message `json:"message"`
		Reply   chat.Message `json:"reply"`
	}{msg, reply})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
