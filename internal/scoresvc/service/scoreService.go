package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type ScoreService struct {
	games   GameStore
	members GamePlayerStore
	updates ScoreUpdateStore
}

func NewScoreService(games GameStore, members GamePlayerStore, updates ScoreUpdateStore) *ScoreService {
	return &ScoreService{games: games, members: members, updates: updates}
}

// ScoreDelta is one (player, delta) pair of a round.
type ScoreDelta struct {
	PlayerID int64 `json:"playerId"`
	Delta    int   `json:"delta"`
}

// RoundResult reports one applied delta and the score it produced.
type RoundResult struct {
	PlayerID int64 `json:"playerId"`
	Delta    int   `json:"delta"`
	NewScore int   `json:"newScore"`
}

// UndoResult reports a reverted ledger row.
type UndoResult struct {
	Reverted int64 `json:"reverted"`
	PlayerID int64 `json:"playerId"`
	NewScore int   `json:"newScore"`
}

// ApplyRound records one ledger row per delta and bumps each member's
// score, in input order. Per pair: insert the ScoreUpdate, read the
// member's current score, write back current+delta. Any failure rolls
// the whole round back: inserted ledger rows are deleted and touched
// scores restored. The restore re-reads the current score and subtracts
// the delta rather than trusting the value written earlier, so a
// rollback after an interleaved write does not clobber it.
//
// There is no locking: two concurrent rounds against the same game can
// lose updates. Known limitation of the single-statement store access.
func (s *ScoreService) ApplyRound(ctx context.Context, gameID int64, deltas []ScoreDelta, note *string) ([]RoundResult, error) {
	if len(deltas) == 0 {
		return nil, validationf("a round needs at least one score delta")
	}
	seen := make(map[int64]bool, len(deltas))
	for _, d := range deltas {
		if seen[d.PlayerID] {
			return nil, validationf("duplicate player id %d in round", d.PlayerID)
		}
		seen[d.PlayerID] = true
	}

	game, err := s.games.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}

	// Precondition: every named player is seated in this game.
	members, err := s.members.GetPlayersByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seated := make(map[int64]bool, len(members))
	for _, m := range members {
		seated[m.PlayerID] = true
	}
	for _, d := range deltas {
		if !seated[d.PlayerID] {
			return nil, validationf("player %d is not part of game %d", d.PlayerID, gameID)
		}
	}

	comp := newCompensator("apply-round")
	results := make([]RoundResult, 0, len(deltas))
	for _, d := range deltas {
		su, err := s.updates.CreateScoreUpdate(ctx, gameID, d.PlayerID, d.Delta, note)
		if err != nil {
			comp.rollback(ctx, err)
			return nil, fmt.Errorf("record delta for player %d: %w", d.PlayerID, err)
		}
		comp.push("delete score update", func(ctx context.Context) error {
			return s.updates.DeleteScoreUpdate(ctx, su.ID)
		})

		gp, err := s.members.GetGamePlayer(ctx, gameID, d.PlayerID)
		if err != nil {
			comp.rollback(ctx, err)
			return nil, fmt.Errorf("read score for player %d: %w", d.PlayerID, err)
		}
		if gp == nil {
			err := fmt.Errorf("player %d left game %d mid-round", d.PlayerID, gameID)
			comp.rollback(ctx, err)
			return nil, err
		}

		newScore := gp.Score + d.Delta
		if err := s.members.UpdateScore(ctx, gameID, d.PlayerID, newScore); err != nil {
			comp.rollback(ctx, err)
			return nil, fmt.Errorf("write score for player %d: %w", d.PlayerID, err)
		}
		comp.push("restore score", func(ctx context.Context) error {
			cur, err := s.members.GetGamePlayer(ctx, gameID, d.PlayerID)
			if err != nil {
				return err
			}
			if cur == nil {
				return fmt.Errorf("player %d no longer in game %d", d.PlayerID, gameID)
			}
			return s.members.UpdateScore(ctx, gameID, d.PlayerID, cur.Score-d.Delta)
		})

		results = append(results, RoundResult{PlayerID: d.PlayerID, Delta: d.Delta, NewScore: newScore})
	}

	return results, nil
}

// UndoLast reverts the newest ledger row of a game: the affected member's
// score decreases by the row's delta and the row is deleted. Two
// dependent writes with no transaction; if the delete fails after the
// score write the ledger keeps a residual row.
func (s *ScoreService) UndoLast(ctx context.Context, gameID int64) (*UndoResult, error) {
	game, err := s.games.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}

	su, err := s.updates.GetLatestByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if su == nil {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrNoScoreUpdates)
	}

	gp, err := s.members.GetGamePlayer(ctx, gameID, su.PlayerID)
	if err != nil {
		return nil, err
	}
	if gp == nil {
		return nil, fmt.Errorf("player %d of update %d: %w", su.PlayerID, su.ID, ErrNotFound)
	}

	newScore := gp.Score - su.Delta
	if err := s.members.UpdateScore(ctx, gameID, su.PlayerID, newScore); err != nil {
		return nil, err
	}

	if err := s.updates.DeleteScoreUpdate(ctx, su.ID); err != nil {
		log.Errorf("undo for game %d reverted score but left ledger row %d: %v", gameID, su.ID, err)
		return nil, err
	}

	return &UndoResult{Reverted: su.ID, PlayerID: su.PlayerID, NewScore: newScore}, nil
}
