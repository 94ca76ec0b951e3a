package service

import (
	"context"
	"errors"
	"time"

	"github.com/cueline/score-services/internal/scoresvc/models"
)

// fakeStore is an in-memory stand-in for all four pgx stores. Failures
// are injected per method: failOn returns the given error on every call,
// failOnCall triggers once on the Nth call to the method and then clears
// so that compensation paths still work.
type fakeStore struct {
	games   map[int64]*models.Game
	players map[int64]*models.Player
	members []*models.GamePlayer
	updates []*models.ScoreUpdate

	nextID int64

	failOn     map[string]error
	failOnCall map[string]int
	callCounts map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		games:      make(map[int64]*models.Game),
		players:    make(map[int64]*models.Player),
		failOn:     make(map[string]error),
		failOnCall: make(map[string]int),
		callCounts: make(map[string]int),
	}
}

var errInjected = errors.New("injected store failure")

func (f *fakeStore) fail(method string) error {
	if err, ok := f.failOn[method]; ok {
		return err
	}
	f.callCounts[method]++
	if n, ok := f.failOnCall[method]; ok && f.callCounts[method] == n {
		delete(f.failOnCall, method)
		return errInjected
	}
	return nil
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) addPlayer(name string) *models.Player {
	p := &models.Player{ID: f.id(), Name: name, CreatedAt: time.Now()}
	f.players[p.ID] = p
	return p
}

func (f *fakeStore) addGame(title string) *models.Game {
	g := &models.Game{ID: f.id(), Title: &title, Status: models.GameStatusPending, CreatedAt: time.Now()}
	f.games[g.ID] = g
	return g
}

func (f *fakeStore) seat(gameID, playerID int64, seat, score int) *models.GamePlayer {
	gp := &models.GamePlayer{ID: f.id(), GameID: gameID, PlayerID: playerID, Seat: seat, Score: score, CreatedAt: time.Now()}
	f.members = append(f.members, gp)
	return gp
}

func (f *fakeStore) addUpdate(gameID, playerID int64, delta int) *models.ScoreUpdate {
	su := &models.ScoreUpdate{ID: f.id(), GameID: gameID, PlayerID: playerID, Delta: delta, CreatedAt: time.Now()}
	f.updates = append(f.updates, su)
	return su
}

func (f *fakeStore) membersOf(gameID int64) []*models.GamePlayer {
	var out []*models.GamePlayer
	for _, m := range f.members {
		if m.GameID == gameID {
			out = append(out, m)
		}
	}
	return out
}

// GameStore

func (f *fakeStore) CreateGame(ctx context.Context, title *string, maxPlayers int) (*models.Game, error) {
	if err := f.fail("CreateGame"); err != nil {
		return nil, err
	}
	g := &models.Game{ID: f.id(), Title: title, Status: models.GameStatusPending, MaxPlayers: &maxPlayers, CreatedAt: time.Now()}
	f.games[g.ID] = g
	return g, nil
}

func (f *fakeStore) GetGameByID(ctx context.Context, gameID int64) (*models.Game, error) {
	if err := f.fail("GetGameByID"); err != nil {
		return nil, err
	}
	return f.games[gameID], nil
}

func (f *fakeStore) ListGames(ctx context.Context) ([]*models.Game, error) {
	if err := f.fail("ListGames"); err != nil {
		return nil, err
	}
	var out []*models.Game
	for id := f.nextID; id > 0; id-- {
		if g, ok := f.games[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateGameStatus(ctx context.Context, gameID int64, status string) (*models.Game, error) {
	if err := f.fail("UpdateGameStatus"); err != nil {
		return nil, err
	}
	g, ok := f.games[gameID]
	if !ok {
		return nil, nil
	}
	g.Status = status
	return g, nil
}

func (f *fakeStore) DeleteGame(ctx context.Context, gameID int64) error {
	if err := f.fail("DeleteGame"); err != nil {
		return err
	}
	delete(f.games, gameID)
	return nil
}

// PlayerStore

func (f *fakeStore) CreatePlayer(ctx context.Context, name string) (*models.Player, error) {
	if err := f.fail("CreatePlayer"); err != nil {
		return nil, err
	}
	return f.addPlayer(name), nil
}

func (f *fakeStore) GetPlayersByIDs(ctx context.Context, ids []int64) ([]*models.Player, error) {
	if err := f.fail("GetPlayersByIDs"); err != nil {
		return nil, err
	}
	var out []*models.Player
	for _, id := range ids {
		if p, ok := f.players[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	if err := f.fail("ListPlayers"); err != nil {
		return nil, err
	}
	var out []*models.Player
	for _, p := range f.players {
		out = append(out, p)
	}
	return out, nil
}

// GamePlayerStore

func (f *fakeStore) CreateGamePlayer(ctx context.Context, gameID, playerID int64, seat int) (*models.GamePlayer, error) {
	if err := f.fail("CreateGamePlayer"); err != nil {
		return nil, err
	}
	return f.seat(gameID, playerID, seat, 0), nil
}

func (f *fakeStore) GetPlayersByGameID(ctx context.Context, gameID int64) ([]*models.GamePlayer, error) {
	if err := f.fail("GetPlayersByGameID"); err != nil {
		return nil, err
	}
	return f.membersOf(gameID), nil
}

func (f *fakeStore) GetGamePlayer(ctx context.Context, gameID, playerID int64) (*models.GamePlayer, error) {
	if err := f.fail("GetGamePlayer"); err != nil {
		return nil, err
	}
	for _, m := range f.members {
		if m.GameID == gameID && m.PlayerID == playerID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateScore(ctx context.Context, gameID, playerID int64, score int) error {
	if err := f.fail("UpdateScore"); err != nil {
		return err
	}
	for _, m := range f.members {
		if m.GameID == gameID && m.PlayerID == playerID {
			m.Score = score
			return nil
		}
	}
	return errors.New("no membership row")
}

func (f *fakeStore) DeletePlayersByGameID(ctx context.Context, gameID int64) error {
	if err := f.fail("DeletePlayersByGameID"); err != nil {
		return err
	}
	var kept []*models.GamePlayer
	for _, m := range f.members {
		if m.GameID != gameID {
			kept = append(kept, m)
		}
	}
	f.members = kept
	return nil
}

// ScoreUpdateStore

func (f *fakeStore) CreateScoreUpdate(ctx context.Context, gameID, playerID int64, delta int, note *string) (*models.ScoreUpdate, error) {
	if err := f.fail("CreateScoreUpdate"); err != nil {
		return nil, err
	}
	su := f.addUpdate(gameID, playerID, delta)
	su.Note = note
	return su, nil
}

func (f *fakeStore) GetLatestByGameID(ctx context.Context, gameID int64) (*models.ScoreUpdate, error) {
	if err := f.fail("GetLatestByGameID"); err != nil {
		return nil, err
	}
	var latest *models.ScoreUpdate
	for _, su := range f.updates {
		if su.GameID == gameID && (latest == nil || su.ID > latest.ID) {
			latest = su
		}
	}
	return latest, nil
}

func (f *fakeStore) GetUpdatesByGameID(ctx context.Context, gameID int64) ([]*models.ScoreUpdate, error) {
	if err := f.fail("GetUpdatesByGameID"); err != nil {
		return nil, err
	}
	var out []*models.ScoreUpdate
	for i := len(f.updates) - 1; i >= 0; i-- {
		if f.updates[i].GameID == gameID {
			out = append(out, f.updates[i])
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteScoreUpdate(ctx context.Context, id int64) error {
	if err := f.fail("DeleteScoreUpdate"); err != nil {
		return err
	}
	var kept []*models.ScoreUpdate
	for _, su := range f.updates {
		if su.ID != id {
			kept = append(kept, su)
		}
	}
	f.updates = kept
	return nil
}
