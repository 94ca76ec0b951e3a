package models

import "time"

// ScoreUpdate is one row of the append-only score ledger. Undo reverts
// the newest row for a game and removes it.
type ScoreUpdate struct {
	ID        int64     `json:"id"`
	GameID    int64     `json:"game_id"`
	PlayerID  int64     `json:"player_id"`
	Delta     int       `json:"delta"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
