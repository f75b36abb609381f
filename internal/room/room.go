package room

import (
	"ctchen222/titac/internal/bot"
	"ctchen222/titac/internal/game"
	"ctchen222/titac/internal/player"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

//go:generate mockgen -source=room.go -destination=mocks/opponent.go -package=mocks

var (
	tracer = otel.Tracer("room")
	meter  = otel.Meter("room")
)

// Opponent defines an agent that chooses the computer's next cell.
type Opponent interface {
	NextMove(board game.Board) (index int, ok bool)
}

// Room sequences turns between the human seat and the computer seat of
// a single game session.
type Room struct {
	ID       string
	Human    *player.Player
	Bot      *player.Player
	session  *game.Session
	opponent Opponent
	thinker  *bot.Thinker
	round    int

	moveCounter  metric.Int64Counter
	roundCounter metric.Int64Counter
}

// NewRoom creates a room whose opponent answers after thinkDelay.
func NewRoom(opponent Opponent, thinkDelay time.Duration) *Room {
	r := &Room{
		ID:       uuid.New().String(),
		Human:    player.NewHuman(game.PlayerOne),
		Bot:      player.NewComputer(game.PlayerTwo),
		session:  game.NewSession(),
		opponent: opponent,
		thinker:  bot.NewThinker(thinkDelay),
		round:    1,
	}
	r.initMetrics()

	slog.Info("Room created", "session.id", r.ID, "human.id", r.Human.ID, "bot.id", r.Bot.ID, "think_delay", thinkDelay)
	return r
}

func (r *Room) initMetrics() {
	var err error

	r.moveCounter, err = meter.Int64Counter("titac.moves",
		metric.WithDescription("Placements accepted by the board"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		slog.Warn("failed to create move counter", "error", err)
		r.moveCounter = noop.Int64Counter{}
	}

	r.roundCounter, err = meter.Int64Counter("titac.rounds",
		metric.WithDescription("Finished rounds by outcome"),
		metric.WithUnit("{round}"),
	)
	if err != nil {
		slog.Warn("failed to create round counter", "error", err)
		r.roundCounter = noop.Int64Counter{}
	}
}

// seat returns the player owning the given mark.
func (r *Room) seat(mark game.Cell) *player.Player {
	if mark == r.Bot.Mark {
		return r.Bot
	}
	return r.Human
}
