package models

import "time"

// GamePlayer is one player's participation and running score within a
// single game. Seats are 1-based and assigned in join order.
type GamePlayer struct {
	ID         int64     `json:"id"`          // Primary key
	GameID     int64     `json:"game_id"`     // FK to games(id)
	PlayerID   int64     `json:"player_id"`   // FK to players(id)
	PlayerName string    `json:"player_name"` // Joined from players, read paths only
	Seat       int       `json:"seat"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"` // Timestamp
}
