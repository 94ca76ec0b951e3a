package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cueline/score-services/internal/scoresvc/service"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	gameService   *service.GameService
	playerService *service.PlayerService
	scoreService  *service.ScoreService
}

// NewHandler wires the route handlers. Services may be nil when the
// store configuration is absent; the data routes then answer 503 while
// /health keeps working.
func NewHandler(gameService *service.GameService, playerService *service.PlayerService, scoreService *service.ScoreService) *Handler {
	return &Handler{
		gameService:   gameService,
		playerService: playerService,
		scoreService:  scoreService,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, map[string]string{"error": msg})
}

// writeServiceError maps the service error taxonomy to HTTP statuses:
// validation 400, not found 404, no-updates 400, anything else a generic
// 500 with the detail kept in the log.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		h.writeError(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, service.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoScoreUpdates):
		h.writeError(w, http.StatusBadRequest, "no score updates to undo")
	default:
		log.Errorf("store operation failed: %v", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireStore guards the data routes while the service runs without a
// configured store.
func (h *Handler) requireStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.gameService == nil {
			h.writeError(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
