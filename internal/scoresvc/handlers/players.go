package handlers

import (
	"encoding/json"
	"net/http"
)

type registerPlayerRequest struct {
	Name string `json:"name"`
}

func (h *Handler) RegisterPlayerHandler(w http.ResponseWriter, r *http.Request) {
	var req registerPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := h.playerService.RegisterPlayer(r.Context(), req.Name)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, player)
}

func (h *Handler) ListPlayersHandler(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ListPlayers(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, players)
}
