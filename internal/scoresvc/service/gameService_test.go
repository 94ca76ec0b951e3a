package service

import (
	"context"
	"testing"

	"github.com/cueline/score-services/internal/scoresvc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGameService(f *fakeStore) *GameService {
	return NewGameService(f, f, f, f)
}

func TestCreateGameWithPlayers_SeatsInInputOrder(t *testing.T) {
	f := newFakeStore()
	alice := f.addPlayer("alice")
	bob := f.addPlayer("bob")
	carol := f.addPlayer("carol")

	title := "friday night"
	game, members, err := newGameService(f).CreateGameWithPlayers(context.Background(), &title, []int64{bob.ID, carol.ID, alice.ID})
	require.NoError(t, err)
	require.NotNil(t, game)

	assert.Equal(t, models.GameStatusPending, game.Status)
	require.NotNil(t, game.MaxPlayers)
	assert.Equal(t, 3, *game.MaxPlayers)

	require.Len(t, members, 3)
	assert.Equal(t, []int64{bob.ID, carol.ID, alice.ID}, []int64{members[0].PlayerID, members[1].PlayerID, members[2].PlayerID})
	for i, m := range members {
		assert.Equal(t, i+1, m.Seat)
		assert.Equal(t, 0, m.Score)
	}
	assert.Equal(t, "bob", members[0].PlayerName)
}

func TestCreateGameWithPlayers_PlayerCountBounds(t *testing.T) {
	f := newFakeStore()
	p := f.addPlayer("solo")

	svc := newGameService(f)

	_, _, err := svc.CreateGameWithPlayers(context.Background(), nil, []int64{p.ID})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	six := make([]int64, 0, 6)
	for i := 0; i < 6; i++ {
		six = append(six, f.addPlayer("p").ID)
	}
	_, _, err = svc.CreateGameWithPlayers(context.Background(), nil, six)
	require.ErrorAs(t, err, &ve)

	assert.Empty(t, f.games, "no game may exist after rejected creation")
	assert.Empty(t, f.members)
}

func TestCreateGameWithPlayers_UnknownPlayerWritesNothing(t *testing.T) {
	f := newFakeStore()
	alice := f.addPlayer("alice")

	_, _, err := newGameService(f).CreateGameWithPlayers(context.Background(), nil, []int64{alice.ID, 9999})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, f.games)
	assert.Empty(t, f.members)
	assert.Zero(t, f.callCounts["CreateGame"])
}

func TestCreateGameWithPlayers_RejectsDuplicateIDs(t *testing.T) {
	f := newFakeStore()
	alice := f.addPlayer("alice")

	_, _, err := newGameService(f).CreateGameWithPlayers(context.Background(), nil, []int64{alice.ID, alice.ID})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, f.games)
}

func TestCreateGameWithPlayers_CompensatesWhenSeatingFails(t *testing.T) {
	f := newFakeStore()
	ids := []int64{f.addPlayer("a").ID, f.addPlayer("b").ID, f.addPlayer("c").ID}

	// Third membership insert blows up; the two seated rows and the game
	// row must be gone afterwards.
	f.failOnCall["CreateGamePlayer"] = 3

	_, _, err := newGameService(f).CreateGameWithPlayers(context.Background(), nil, ids)

	require.ErrorIs(t, err, errInjected)
	assert.Empty(t, f.games, "game row must be compensated away")
	assert.Empty(t, f.members, "membership rows must be compensated away")
}

func TestStartGame(t *testing.T) {
	f := newFakeStore()
	game := f.addGame("g")

	svc := newGameService(f)

	started, err := svc.StartGame(context.Background(), game.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusStarted, started.Status)

	// already started is a no-op
	again, err := svc.StartGame(context.Background(), game.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusStarted, again.Status)
}

func TestStartGame_NotFound(t *testing.T) {
	f := newFakeStore()
	_, err := newGameService(f).StartGame(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetGameDetail(t *testing.T) {
	f := newFakeStore()
	game := f.addGame("g")
	p := f.addPlayer("alice")
	f.seat(game.ID, p.ID, 1, 7)
	f.addUpdate(game.ID, p.ID, 7)

	detail, err := newGameService(f).GetGameDetail(context.Background(), game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.ID, detail.Game.ID)
	require.Len(t, detail.Players, 1)
	assert.Equal(t, 7, detail.Players[0].Score)
	require.Len(t, detail.Updates, 1)
}

func TestGetGameDetail_NotFound(t *testing.T) {
	f := newFakeStore()
	_, err := newGameService(f).GetGameDetail(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListGames_EmbedsOrderedPlayers(t *testing.T) {
	f := newFakeStore()
	g1 := f.addGame("first")
	g2 := f.addGame("second")
	p1 := f.addPlayer("a")
	p2 := f.addPlayer("b")
	f.seat(g1.ID, p1.ID, 1, 0)
	f.seat(g1.ID, p2.ID, 2, 0)
	f.seat(g2.ID, p2.ID, 1, 0)

	games, err := newGameService(f).ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)

	// newest first
	assert.Equal(t, g2.ID, games[0].ID)
	assert.Len(t, games[0].Players, 1)
	assert.Len(t, games[1].Players, 2)
}
