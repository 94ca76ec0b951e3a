package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cueline/score-services/internal/scoresvc/models"
	"github.com/go-chi/chi"
)

func gameIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

type createGameRequest struct {
	Title   *string `json:"title"`
	Players []int64 `json:"players"`
}

type createGameResponse struct {
	Game    *models.Game         `json:"game"`
	Players []*models.GamePlayer `json:"players"`
}

func (h *Handler) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, players, err := h.gameService.CreateGameWithPlayers(r.Context(), req.Title, req.Players)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, createGameResponse{Game: game, Players: players})
}

func (h *Handler) ListGamesHandler(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, games)
}

func (h *Handler) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDParam(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	detail, err := h.gameService.GetGameDetail(r.Context(), gameID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) StartGameHandler(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDParam(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	game, err := h.gameService.StartGame(r.Context(), gameID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, game)
}
