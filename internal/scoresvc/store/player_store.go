package store

import (
	"context"
	"fmt"

	"github.com/cueline/score-services/internal/scoresvc/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlayerStore struct {
	db *pgxpool.Pool
}

func NewPlayerStore(db *pgxpool.Pool) *PlayerStore {
	return &PlayerStore{db: db}
}

func (s *PlayerStore) CreatePlayer(ctx context.Context, name string) (*models.Player, error) {
	query := `
		INSERT INTO players (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`

	p := &models.Player{}
	err := s.db.QueryRow(ctx, query, name).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return p, nil
}

// GetPlayersByIDs resolves the given ids in a single select. Missing ids
// simply produce fewer rows than asked for; the caller compares counts.
func (s *PlayerStore) GetPlayersByIDs(ctx context.Context, ids []int64) ([]*models.Player, error) {
	query := `
		SELECT id, name, created_at
		FROM players
		WHERE id = ANY($1)
	`

	rows, err := s.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by ids: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		p := &models.Player{}
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, rows.Err()
}

func (s *PlayerStore) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	query := `
		SELECT id, name, created_at
		FROM players
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		p := &models.Player{}
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, rows.Err()
}
