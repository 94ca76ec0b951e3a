package service

import (
	"context"
	"fmt"

	"github.com/cueline/score-services/internal/scoresvc/models"
)

const (
	MinGamePlayers = 2
	MaxGamePlayers = 5
)

type GameService struct {
	games   GameStore
	players PlayerStore
	members GamePlayerStore
	updates ScoreUpdateStore
}

func NewGameService(games GameStore, players PlayerStore, members GamePlayerStore, updates ScoreUpdateStore) *GameService {
	return &GameService{games: games, players: players, members: members, updates: updates}
}

// GameDetail is a game with its seated players and full ledger.
type GameDetail struct {
	Game    *models.Game          `json:"game"`
	Players []*models.GamePlayer  `json:"players"`
	Updates []*models.ScoreUpdate `json:"updates"`
}

// GameSummary is the list shape: the game with its ordered player list.
type GameSummary struct {
	models.Game
	Players []*models.GamePlayer `json:"players"`
}

// CreateGameWithPlayers creates a game and seats the given roster players
// in input order, seats 1..N. The store offers no transaction, so the
// membership inserts run one by one with compensation: if any insert
// fails, the memberships written so far and the game row are deleted and
// the original error is returned.
func (s *GameService) CreateGameWithPlayers(ctx context.Context, title *string, playerIDs []int64) (*models.Game, []*models.GamePlayer, error) {
	if len(playerIDs) < MinGamePlayers || len(playerIDs) > MaxGamePlayers {
		return nil, nil, validationf("a game needs %d to %d players, got %d", MinGamePlayers, MaxGamePlayers, len(playerIDs))
	}
	seen := make(map[int64]bool, len(playerIDs))
	for _, id := range playerIDs {
		if seen[id] {
			return nil, nil, validationf("duplicate player id %d", id)
		}
		seen[id] = true
	}

	// Resolve the whole roster before writing anything.
	resolved, err := s.players.GetPlayersByIDs(ctx, playerIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve players: %w", err)
	}
	if len(resolved) != len(playerIDs) {
		return nil, nil, validationf("one or more players do not exist")
	}
	names := make(map[int64]string, len(resolved))
	for _, p := range resolved {
		names[p.ID] = p.Name
	}

	game, err := s.games.CreateGame(ctx, title, len(playerIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("create game: %w", err)
	}

	comp := newCompensator("create-game")
	comp.push("delete game", func(ctx context.Context) error {
		return s.games.DeleteGame(ctx, game.ID)
	})

	members := make([]*models.GamePlayer, 0, len(playerIDs))
	for i, playerID := range playerIDs {
		gp, err := s.members.CreateGamePlayer(ctx, game.ID, playerID, i+1)
		if err != nil {
			comp.rollback(ctx, err)
			return nil, nil, fmt.Errorf("seat player %d in game %d: %w", playerID, game.ID, err)
		}
		if i == 0 {
			comp.push("delete game players", func(ctx context.Context) error {
				return s.members.DeletePlayersByGameID(ctx, game.ID)
			})
		}
		gp.PlayerName = names[gp.PlayerID]
		members = append(members, gp)
	}

	return game, members, nil
}

func (s *GameService) GetGameDetail(ctx context.Context, gameID int64) (*GameDetail, error) {
	game, err := s.games.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}

	players, err := s.members.GetPlayersByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	updates, err := s.updates.GetUpdatesByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return &GameDetail{Game: game, Players: players, Updates: updates}, nil
}

func (s *GameService) ListGames(ctx context.Context) ([]*GameSummary, error) {
	games, err := s.games.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*GameSummary, 0, len(games))
	for _, game := range games {
		players, err := s.members.GetPlayersByGameID(ctx, game.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &GameSummary{Game: *game, Players: players})
	}

	return summaries, nil
}

// StartGame moves a game to 'started'. Starting an already started game
// is a no-op returning the current row.
func (s *GameService) StartGame(ctx context.Context, gameID int64) (*models.Game, error) {
	game, err := s.games.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}
	if game.Status == models.GameStatusStarted {
		return game, nil
	}

	updated, err := s.games.UpdateGameStatus(ctx, gameID, models.GameStatusStarted)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}
	return updated, nil
}
