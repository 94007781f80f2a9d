package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// GameSession owns the state shown on screen. MakeTurn and Reset are the only ways to change it.
type GameSession struct {
	logger *slog.Logger

	mu      sync.Mutex
	state   entity.GameState
	roundID string
}

func NewGameSession(logger *slog.Logger) *GameSession {
	return &GameSession{
		logger:  logger.With("component", "session"),
		state:   tictactoe.Reset(),
		roundID: uuid.NewString(),
	}
}

func (that *GameSession) State() entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

func (that *GameSession) RoundID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.roundID
}

// MakeTurn applies a tap on cell. An ignored tap returns the unchanged state together with the reason.
func (that *GameSession) MakeTurn(ctx context.Context, cell int) (entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "MakeTurn", "round_id", that.roundID, "cell", cell)

	if err := tictactoe.ValidateMove(that.state, cell); err != nil {
		log.DebugContext(ctx, "move ignored", "reason", err)
		return that.state, fmt.Errorf("failed make turn: %w", err)
	}

	mark := that.state.CurrentPlayer()
	that.state = tictactoe.ApplyMove(that.state, cell)

	log.DebugContext(ctx, "move applied", "mark", mark, "status", that.state.Outcome().Status)

	if that.state.IsFinished() {
		outcome := that.state.Outcome()
		log.InfoContext(ctx, "round finished",
			"status", outcome.Status,
			"winner", outcome.Winner,
			"moves", that.state.MoveCount(),
		)
	}

	return that.state, nil
}

// Reset starts a new round.
func (that *GameSession) Reset(ctx context.Context) entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	previous := that.roundID
	that.state = tictactoe.Reset()
	that.roundID = uuid.NewString()

	that.logger.InfoContext(ctx, "round reset", "method", "Reset", "previous_round_id", previous, "round_id", that.roundID)

	return that.state
}
