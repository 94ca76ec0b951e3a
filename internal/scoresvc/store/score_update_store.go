package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/cueline/score-services/internal/scoresvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScoreUpdateStore struct {
	db *pgxpool.Pool
}

func NewScoreUpdateStore(db *pgxpool.Pool) *ScoreUpdateStore {
	return &ScoreUpdateStore{db: db}
}

func (s *ScoreUpdateStore) CreateScoreUpdate(ctx context.Context, gameID, playerID int64, delta int, note *string) (*models.ScoreUpdate, error) {
	query := `
		INSERT INTO score_updates (game_id, player_id, delta, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, game_id, player_id, delta, note, created_at
	`

	su := &models.ScoreUpdate{}
	err := s.db.QueryRow(ctx, query, gameID, playerID, delta, note).Scan(
		&su.ID,
		&su.GameID,
		&su.PlayerID,
		&su.Delta,
		&su.Note,
		&su.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create score update: %w", err)
	}

	return su, nil
}

// GetLatestByGameID returns the most recently created ledger row for a
// game, or nil when the ledger is empty.
func (s *ScoreUpdateStore) GetLatestByGameID(ctx context.Context, gameID int64) (*models.ScoreUpdate, error) {
	query := `
		SELECT id, game_id, player_id, delta, note, created_at
		FROM score_updates
		WHERE game_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	su := &models.ScoreUpdate{}
	err := s.db.QueryRow(ctx, query, gameID).Scan(
		&su.ID,
		&su.GameID,
		&su.PlayerID,
		&su.Delta,
		&su.Note,
		&su.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest score update: %w", err)
	}

	return su, nil
}

func (s *ScoreUpdateStore) GetUpdatesByGameID(ctx context.Context, gameID int64) ([]*models.ScoreUpdate, error) {
	query := `
		SELECT id, game_id, player_id, delta, note, created_at
		FROM score_updates
		WHERE game_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list score updates: %w", err)
	}
	defer rows.Close()

	var updates []*models.ScoreUpdate
	for rows.Next() {
		su := &models.ScoreUpdate{}
		err := rows.Scan(
			&su.ID,
			&su.GameID,
			&su.PlayerID,
			&su.Delta,
			&su.Note,
			&su.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		updates = append(updates, su)
	}

	return updates, rows.Err()
}

func (s *ScoreUpdateStore) DeleteScoreUpdate(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM score_updates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete score update %d: %w", id, err)
	}
	return nil
}
