package room

import (
	"context"
	"ctchen222/titac/internal/bot"
	"ctchen222/titac/internal/game"
	"ctchen222/titac/internal/room/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDelay = 80 * time.Millisecond

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newMockRoom(t *testing.T) (*Room, *mocks.MockOpponent) {
	t.Helper()
	ctrl := gomock.NewController(t)
	opp := mocks.NewMockOpponent(ctrl)
	return NewRoom(opp, testDelay), opp
}

func TestNewRoom(t *testing.T) {
	r, _ := newMockRoom(t)

	s := r.Snapshot()
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, game.PlayerOne, r.Human.Mark)
	assert.Equal(t, game.PlayerTwo, r.Bot.Mark)
	assert.True(t, r.Bot.IsBot())
	assert.Equal(t, game.Board{}, s.Board)
	assert.Equal(t, game.PlayerOneTurn, s.Turn)
	assert.Equal(t, game.Continue, s.Phase)
	assert.Equal(t, 1, s.Round)
	assert.False(t, s.Thinking)
	assert.False(t, r.IsFull())
}

func TestRoom_OpponentAnswersAfterDelay(t *testing.T) {
	ctx := context.Background()
	r, opp := newMockRoom(t)

	// Given: the human places at the centre
	require.True(t, r.Click(ctx, 4))
	assert.Equal(t, game.PlayerTwoTurn, r.Snapshot().Turn)

	// When: the frame loop runs, the opponent picks a move and starts thinking
	opp.EXPECT().NextMove(gomock.Any()).Return(0, true).Times(1)
	r.Update(ctx, t0)

	s := r.Snapshot()
	assert.True(t, s.Thinking)
	assert.Equal(t, game.Empty, s.Board[0], "move must not land before the delay")

	// Then: frames inside the delay change nothing
	r.Update(ctx, t0.Add(testDelay/2))
	assert.Equal(t, game.Empty, r.Snapshot().Board[0])

	// Then: once the delay is over the move lands and the turn flips back
	r.Update(ctx, t0.Add(testDelay))
	s = r.Snapshot()
	assert.Equal(t, game.PlayerTwo, s.Board[0])
	assert.Equal(t, game.PlayerOneTurn, s.Turn)
	assert.False(t, s.Thinking)
}

func TestRoom_ClickIgnoredWhileOpponentThinks(t *testing.T) {
	ctx := context.Background()
	r, opp := newMockRoom(t)
	opp.EXPECT().NextMove(gomock.Any()).Return(8, true).Times(1)

	require.True(t, r.Click(ctx, 4))
	r.Update(ctx, t0)

	assert.False(t, r.Click(ctx, 1))
	assert.Equal(t, game.Empty, r.Snapshot().Board[1])
}

func TestRoom_ClickOnOccupiedCell(t *testing.T) {
	ctx := context.Background()
	r, opp := newMockRoom(t)
	opp.EXPECT().NextMove(gomock.Any()).Return(8, true).Times(1)

	require.True(t, r.Click(ctx, 4))
	r.Update(ctx, t0)
	r.Update(ctx, t0.Add(testDelay))
	before := r.Snapshot()

	assert.False(t, r.Click(ctx, 4))
	assert.False(t, r.Click(ctx, 8))
	assert.Equal(t, before, r.Snapshot())
}

func TestRoom_ResetCancelsPendingMove(t *testing.T) {
	ctx := context.Background()
	r, opp := newMockRoom(t)
	opp.EXPECT().NextMove(gomock.Any()).Return(0, true).Times(1)

	// Given: the opponent is thinking
	require.True(t, r.Click(ctx, 4))
	r.Update(ctx, t0)
	require.True(t, r.Snapshot().Thinking)

	// When: reset is pressed during the delay
	r.Reset(ctx)
	assert.Equal(t, game.Start, r.Phase())
	r.Update(ctx, t0.Add(testDelay))

	// Then: a fresh round starts and the opponent's move never lands
	s := r.Snapshot()
	assert.Equal(t, game.Board{}, s.Board)
	assert.Equal(t, game.PlayerOneTurn, s.Turn)
	assert.Equal(t, game.Continue, s.Phase)
	assert.False(t, s.Thinking)
	assert.Equal(t, 2, s.Round)

	// Then: later frames do not replay the cancelled move
	r.Update(ctx, t0.Add(time.Second))
	assert.Equal(t, game.Board{}, r.Snapshot().Board)
}

func TestRoom_WinStopsPlay(t *testing.T) {
	ctx := context.Background()
	r, opp := newMockRoom(t)

	// Human plays 0, 1, 2; opponent answers 3, 4.
	gomock.InOrder(
		opp.EXPECT().NextMove(gomock.Any()).Return(3, true),
		opp.EXPECT().NextMove(gomock.Any()).Return(4, true),
	)

	now := t0
	for _, i := range []int{0, 1} {
		require.True(t, r.Click(ctx, i))
		r.Update(ctx, now)
		now = now.Add(testDelay)
		r.Update(ctx, now)
	}
	require.True(t, r.Click(ctx, 2))

	s := r.Snapshot()
	assert.Equal(t, game.WinPlayerOne, s.Phase)
	assert.True(t, s.HasWinner)
	assert.Equal(t, game.Line{0, 1, 2}, s.WinningLine)

	// The opponent is not asked again and clicks are ignored.
	r.Update(ctx, now.Add(time.Second))
	assert.False(t, r.Click(ctx, 8))
	assert.Equal(t, game.WinPlayerOne, r.Phase())

	// Reset is the only way out.
	r.Reset(ctx)
	r.Update(ctx, now.Add(2*time.Second))
	assert.Equal(t, game.Continue, r.Phase())
	assert.False(t, r.Snapshot().HasWinner)
}

func TestRoom_ResetIgnoredWhileStarting(t *testing.T) {
	ctx := context.Background()
	r, _ := newMockRoom(t)

	r.Reset(ctx)
	r.Reset(ctx)
	r.Update(ctx, t0)

	assert.Equal(t, 2, r.Snapshot().Round)
}

func TestRoom_FullGameAgainstRandomOpponent(t *testing.T) {
	ctx := context.Background()
	r := NewRoom(bot.NewRandom(7), 0)
	now := t0

	for step := 0; step < 20 && r.Phase() == game.Continue; step++ {
		s := r.Snapshot()
		if s.Turn == game.PlayerOneTurn {
			empty := s.Board.EmptyIndices()
			require.NotEmpty(t, empty)
			require.True(t, r.Click(ctx, empty[0]))
		}
		now = now.Add(time.Millisecond)
		r.Update(ctx, now)
	}

	s := r.Snapshot()
	assert.True(t, s.Phase.Terminal(), "game should finish, got %s with board\n%s", s.Phase, s.Board)
	assert.Equal(t, s.Board.Classify(), s.Phase)
}
