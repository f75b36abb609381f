package room

import (
	"context"
	"ctchen222/titac/internal/game"
	"ctchen222/titac/internal/player"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Click handles a left click resolved to a board index. It reports
// whether the human's mark was placed.
func (r *Room) Click(ctx context.Context, index int) bool {
	ctx, span := tracer.Start(ctx, "room.Click", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player.id", r.Human.ID),
		attribute.Int("cell.index", index),
	))
	defer span.End()

	if r.session.Turn != game.PlayerOneTurn || r.thinker.Thinking() {
		slog.DebugContext(ctx, "ignoring click outside the human's turn", "session.id", r.ID, "cell.index", index, "turn", r.session.Turn)
		span.SetStatus(codes.Error, "Not the human's turn")
		return false
	}

	if err := r.session.Move(index); err != nil {
		slog.DebugContext(ctx, "ignoring click", "session.id", r.ID, "cell.index", index, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Move rejected")
		return false
	}

	r.recordMove(ctx, r.Human, index)
	return true
}

// Reset handles the keyboard reset. The board is cleared on the next Update.
func (r *Room) Reset(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "room.Reset", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("phase", r.session.Phase.String()),
	))
	defer span.End()

	if r.session.Phase == game.Start {
		return
	}

	r.thinker.Cancel()
	r.session.RequestReset()
	slog.InfoContext(ctx, "Reset requested", "session.id", r.ID, "round", r.round)
}

// Update advances the room by one frame: it resolves a pending reset and
// lets the opponent play once its thinking time is over.
func (r *Room) Update(ctx context.Context, now time.Time) {
	if r.session.Step() {
		r.thinker.Cancel()
		r.round++
		slog.InfoContext(ctx, "New round", "session.id", r.ID, "round", r.round)
	}

	if r.session.Phase != game.Continue || r.session.Turn != game.PlayerTwoTurn {
		return
	}

	if !r.thinker.Thinking() {
		index, ok := r.opponent.NextMove(r.session.Board)
		if !ok {
			slog.WarnContext(ctx, "opponent found no move", "session.id", r.ID, "board", r.session.Board.String())
			return
		}
		r.thinker.Start(now, index)
		slog.DebugContext(ctx, "Opponent is thinking", "player.id", r.Bot.ID, "cell.index", index, "delay", r.thinker.Delay())
	}

	if index, ok := r.thinker.Ready(now); ok {
		r.opponentMove(ctx, index)
	}
}

// opponentMove places the computer's mark chosen before the delay.
func (r *Room) opponentMove(ctx context.Context, index int) {
	ctx, span := tracer.Start(ctx, "room.opponentMove", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player.id", r.Bot.ID),
		attribute.Int("cell.index", index),
	))
	defer span.End()

	if err := r.session.Move(index); err != nil {
		slog.ErrorContext(ctx, "opponent move rejected", "session.id", r.ID, "cell.index", index, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Opponent move rejected")
		return
	}

	r.recordMove(ctx, r.Bot, index)
}

// recordMove logs and counts an accepted placement and closes the round
// when the board reached a terminal phase.
func (r *Room) recordMove(ctx context.Context, p *player.Player, index int) {
	phase := r.session.Phase
	slog.InfoContext(ctx, "Move placed", "session.id", r.ID, "player.id", p.ID, "cell.index", index, "phase", phase)

	r.moveCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("player.kind", string(p.Kind))))

	if !phase.Terminal() {
		return
	}

	slog.InfoContext(ctx, "Round finished", "session.id", r.ID, "round", r.round, "outcome", phase, "board", r.session.Board.String())
	r.roundCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", phase.String())))
}
