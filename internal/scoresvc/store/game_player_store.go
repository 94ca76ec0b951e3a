package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/cueline/score-services/internal/scoresvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GamePlayerStore struct {
	db *pgxpool.Pool
}

func NewGamePlayerStore(db *pgxpool.Pool) *GamePlayerStore {
	return &GamePlayerStore{db: db}
}

// CreateGamePlayer seats a player in a game with score 0.
// It fails with an error if:
// - The seat is already taken in the same game (unique_game_seat constraint).
// - The player already participates in the game (unique_game_player constraint).
// - Any foreign key (game_id, player_id) is invalid.
func (s *GamePlayerStore) CreateGamePlayer(ctx context.Context, gameID, playerID int64, seat int) (*models.GamePlayer, error) {
	if seat < 1 {
		return nil, fmt.Errorf("invalid seat: %d", seat)
	}

	const query = `
		INSERT INTO game_players (game_id, player_id, seat, score)
		VALUES ($1, $2, $3, 0)
		RETURNING id, game_id, player_id, seat, score, created_at
	`

	gp := &models.GamePlayer{}
	err := s.db.QueryRow(ctx, query, gameID, playerID, seat).Scan(
		&gp.ID,
		&gp.GameID,
		&gp.PlayerID,
		&gp.Seat,
		&gp.Score,
		&gp.CreatedAt,
	)
	if err != nil {
		// unique constraint violations
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "unique_game_seat":
				return nil, fmt.Errorf("seat %d is already taken for game %d", seat, gameID)
			case "unique_game_player":
				return nil, fmt.Errorf("player %d has already joined game %d", playerID, gameID)
			}
		}
		// foreign key violations
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("invalid reference: %s", pgErr.Message)
		}
		return nil, fmt.Errorf("failed to create game player: %w", err)
	}

	return gp, nil
}

func (s *GamePlayerStore) GetPlayersByGameID(ctx context.Context, gameID int64) ([]*models.GamePlayer, error) {
	query := `
		SELECT gp.id, gp.game_id, gp.player_id, p.name, gp.seat, gp.score, gp.created_at
		FROM game_players gp
		JOIN players p ON p.id = gp.player_id
		WHERE gp.game_id = $1
		ORDER BY gp.seat
	`

	rows, err := s.db.Query(ctx, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*models.GamePlayer
	for rows.Next() {
		gp := &models.GamePlayer{}
		err := rows.Scan(
			&gp.ID,
			&gp.GameID,
			&gp.PlayerID,
			&gp.PlayerName,
			&gp.Seat,
			&gp.Score,
			&gp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		players = append(players, gp)
	}

	return players, rows.Err()
}

// GetGamePlayer returns one membership row, or nil when the player is not
// part of the game.
func (s *GamePlayerStore) GetGamePlayer(ctx context.Context, gameID, playerID int64) (*models.GamePlayer, error) {
	query := `
		SELECT gp.id, gp.game_id, gp.player_id, p.name, gp.seat, gp.score, gp.created_at
		FROM game_players gp
		JOIN players p ON p.id = gp.player_id
		WHERE gp.game_id = $1 AND gp.player_id = $2
	`

	gp := &models.GamePlayer{}
	err := s.db.QueryRow(ctx, query, gameID, playerID).Scan(
		&gp.ID,
		&gp.GameID,
		&gp.PlayerID,
		&gp.PlayerName,
		&gp.Seat,
		&gp.Score,
		&gp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game player: %w", err)
	}

	return gp, nil
}

func (s *GamePlayerStore) UpdateScore(ctx context.Context, gameID, playerID int64, score int) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE game_players
		SET score = $3
		WHERE game_id = $1 AND player_id = $2
	`, gameID, playerID, score)
	if err != nil {
		return fmt.Errorf("failed to update score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no membership for player %d in game %d", playerID, gameID)
	}
	return nil
}

func (s *GamePlayerStore) DeletePlayersByGameID(ctx context.Context, gameID int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM game_players WHERE game_id = $1`, gameID)
	if err != nil {
		return fmt.Errorf("failed to delete game players for game %d: %w", gameID, err)
	}
	return nil
}
