package service

import (
	"context"

	"github.com/cueline/score-services/internal/scoresvc/models"
)

// Store interfaces consumed by the services. The pgx-backed stores in
// internal/scoresvc/store satisfy them; tests inject failing fakes. Every
// method is a single statement against the store — there is no
// transaction surface here, which is why the services compensate by hand.

type GameStore interface {
	CreateGame(ctx context.Context, title *string, maxPlayers int) (*models.Game, error)
	GetGameByID(ctx context.Context, gameID int64) (*models.Game, error)
	ListGames(ctx context.Context) ([]*models.Game, error)
	UpdateGameStatus(ctx context.Context, gameID int64, status string) (*models.Game, error)
	DeleteGame(ctx context.Context, gameID int64) error
}

type PlayerStore interface {
	CreatePlayer(ctx context.Context, name string) (*models.Player, error)
	GetPlayersByIDs(ctx context.Context, ids []int64) ([]*models.Player, error)
	ListPlayers(ctx context.Context) ([]*models.Player, error)
}

type GamePlayerStore interface {
	CreateGamePlayer(ctx context.Context, gameID, playerID int64, seat int) (*models.GamePlayer, error)
	GetPlayersByGameID(ctx context.Context, gameID int64) ([]*models.GamePlayer, error)
	GetGamePlayer(ctx context.Context, gameID, playerID int64) (*models.GamePlayer, error)
	UpdateScore(ctx context.Context, gameID, playerID int64, score int) error
	DeletePlayersByGameID(ctx context.Context, gameID int64) error
}

type ScoreUpdateStore interface {
	CreateScoreUpdate(ctx context.Context, gameID, playerID int64, delta int, note *string) (*models.ScoreUpdate, error)
	GetLatestByGameID(ctx context.Context, gameID int64) (*models.ScoreUpdate, error)
	GetUpdatesByGameID(ctx context.Context, gameID int64) ([]*models.ScoreUpdate, error)
	DeleteScoreUpdate(ctx context.Context, id int64) error
}
