package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cueline/score-services/internal/scoresvc/service"
)

type applyRoundRequest struct {
	Scores []service.ScoreDelta `json:"scores"`
	Note   *string              `json:"note"`
}

type applyRoundResponse struct {
	Success bool                  `json:"success"`
	Results []service.RoundResult `json:"results"`
}

func (h *Handler) ApplyRoundHandler(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDParam(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	var req applyRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.scoreService.ApplyRound(r.Context(), gameID, req.Scores, req.Note)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, applyRoundResponse{Success: true, Results: results})
}

func (h *Handler) UndoHandler(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDParam(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	result, err := h.scoreService.UndoLast(r.Context(), gameID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
