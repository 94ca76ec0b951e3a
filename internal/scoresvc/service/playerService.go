package service

import (
	"context"
	"strings"

	"github.com/cueline/score-services/internal/scoresvc/models"
)

type PlayerService struct {
	players PlayerStore
}

func NewPlayerService(players PlayerStore) *PlayerService {
	return &PlayerService{players: players}
}

func (s *PlayerService) RegisterPlayer(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("player name is required")
	}
	return s.players.CreatePlayer(ctx, name)
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	return s.players.ListPlayers(ctx)
}
