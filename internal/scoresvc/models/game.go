package models

import "time"

const (
	GameStatusPending = "pending"
	GameStatusStarted = "started"
)

type Game struct {
	ID         int64     `json:"id"`          // Primary key
	Title      *string   `json:"title"`       // Optional display title
	Status     string    `json:"status"`      // 'pending' or 'started'
	MaxPlayers *int      `json:"max_players"` // Optional bound, 2..5
	CreatedAt  time.Time `json:"created_at"`  // Timestamp
}
