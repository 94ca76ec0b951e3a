package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/cueline/score-services/internal/scoresvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GameStore struct {
	db *pgxpool.Pool
}

func NewGameStore(db *pgxpool.Pool) *GameStore {
	return &GameStore{db: db}
}

func (s *GameStore) CreateGame(ctx context.Context, title *string, maxPlayers int) (*models.Game, error) {
	query := `
		INSERT INTO games (title, status, max_players)
		VALUES ($1, 'pending', $2)
		RETURNING id, title, status, max_players, created_at
	`

	game := &models.Game{}
	err := s.db.QueryRow(ctx, query, title, maxPlayers).Scan(
		&game.ID,
		&game.Title,
		&game.Status,
		&game.MaxPlayers,
		&game.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (s *GameStore) GetGameByID(ctx context.Context, gameID int64) (*models.Game, error) {
	query := `
		SELECT id, title, status, max_players, created_at
		FROM games
		WHERE id = $1
	`

	game := &models.Game{}
	err := s.db.QueryRow(ctx, query, gameID).Scan(
		&game.ID,
		&game.Title,
		&game.Status,
		&game.MaxPlayers,
		&game.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Game not found
		}
		return nil, fmt.Errorf("failed to get game by ID: %w", err)
	}

	return game, nil
}

// ListGames returns all games, newest first.
func (s *GameStore) ListGames(ctx context.Context) ([]*models.Game, error) {
	query := `
		SELECT id, title, status, max_players, created_at
		FROM games
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		game := &models.Game{}
		err := rows.Scan(
			&game.ID,
			&game.Title,
			&game.Status,
			&game.MaxPlayers,
			&game.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, rows.Err()
}

// UpdateGameStatus sets the game status and returns the updated row, or
// nil when the game does not exist.
func (s *GameStore) UpdateGameStatus(ctx context.Context, gameID int64, status string) (*models.Game, error) {
	query := `
		UPDATE games
		SET status = $2
		WHERE id = $1
		RETURNING id, title, status, max_players, created_at
	`

	game := &models.Game{}
	err := s.db.QueryRow(ctx, query, gameID, status).Scan(
		&game.ID,
		&game.Title,
		&game.Status,
		&game.MaxPlayers,
		&game.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update game status: %w", err)
	}

	return game, nil
}

func (s *GameStore) DeleteGame(ctx context.Context, gameID int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM games WHERE id = $1`, gameID)
	if err != nil {
		return fmt.Errorf("failed to delete game %d: %w", gameID, err)
	}
	return nil
}
