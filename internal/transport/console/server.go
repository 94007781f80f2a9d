package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/view"
)

const (
	actionMove  = "move"
	actionReset = "reset"
	actionQuit  = "quit"
	actionHelp  = "help"

	// not registered, so it always falls through to the help text
	actionUnknown = "unknown"
)

const helpText = "Enter 1-9 to mark a cell, r to reset, q to quit."

var errQuit = errors.New("quit requested")

type gameSession interface {
	State() entity.GameState
	MakeTurn(ctx context.Context, cell int) (entity.GameState, error)
	Reset(ctx context.Context) entity.GameState
}

// Server plays the game over a line oriented terminal.
type Server struct {
	logger  *slog.Logger
	session gameSession

	output    *termenv.Output
	theme     config.Theme
	highlight *view.Highlight
	now       func() time.Time

	handlers map[string]func(ctx context.Context, arg string) error
}

func New(logger *slog.Logger, session gameSession, out io.Writer, conf *config.Config, opts ...termenv.OutputOption) *Server {
	server := &Server{
		logger:    logger.With("component", "console"),
		session:   session,
		output:    termenv.NewOutput(out, opts...),
		theme:     conf.Theme,
		highlight: view.NewHighlight(conf.Highlight),
		now:       time.Now,
		handlers:  make(map[string]func(context.Context, string) error),
	}

	server.handlers[actionMove] = server.handleMove
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionQuit] = server.handleQuit
	server.handlers[actionHelp] = server.handleHelp

	return server
}

// Run - reads commands from in until quit, end of input or context cancellation.
func (that *Server) Run(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := that.render(); err != nil {
		return err
	}

	lines, readErr := readLines(ctx, in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return fmt.Errorf("failed to read input: %w", err)
				default:
					return nil
				}
			}

			if ctx.Err() != nil {
				return nil
			}

			action, arg := parseCommand(line)
			if action == "" {
				continue
			}

			handler, ok := that.handlers[action]
			if !ok {
				log.Debug("unknown command", "line", line)
				if _, err := fmt.Fprintln(that.output, helpText); err != nil {
					return fmt.Errorf("failed to write help: %w", err)
				}
				continue
			}

			if err := handler(ctx, arg); err != nil {
				if errors.Is(err, errQuit) {
					log.Info("quit requested")
					return nil
				}
				return fmt.Errorf("failed to handle %s: %w", action, err)
			}
		}
	}
}

// readLines scans in on its own goroutine so a blocked read does not delay cancellation.
// A scanner error is sent on the second channel before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			readErr <- err
		}
	}()

	return lines, readErr
}

func parseCommand(line string) (string, string) {
	line = strings.ToLower(strings.TrimSpace(line))

	switch line {
	case "":
		return "", ""
	case "r", "reset":
		return actionReset, ""
	case "q", "quit", "exit":
		return actionQuit, ""
	case "h", "help", "?":
		return actionHelp, ""
	}

	if _, err := view.ParseCell(line); err == nil {
		return actionMove, line
	}

	return actionUnknown, line
}

func (that *Server) handleMove(ctx context.Context, arg string) error {
	cell, err := view.ParseCell(arg)
	if err != nil {
		that.logger.Debug("tap ignored", "method", "handleMove", "input", arg, "reason", err)
		return nil
	}

	if _, err = that.session.MakeTurn(ctx, cell); err == nil {
		that.highlight.Select(cell, that.now())
	}

	return that.render()
}

func (that *Server) handleReset(ctx context.Context, _ string) error {
	that.session.Reset(ctx)
	that.highlight.Clear()

	return that.render()
}

func (that *Server) handleQuit(_ context.Context, _ string) error {
	return errQuit
}

func (that *Server) handleHelp(_ context.Context, _ string) error {
	if _, err := fmt.Fprintln(that.output, helpText); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}
	return nil
}

func (that *Server) render() error {
	model := view.Build(that.session.State(), that.highlight.Cell(that.now()))

	if _, err := io.WriteString(that.output, that.board(model)); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func (that *Server) board(model view.Model) string {
	var sb strings.Builder

	sb.WriteString(that.output.String(model.Status).Bold().String())
	sb.WriteString("\n\n")

	for row := 0; row < entity.BoardSize; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		for col := 0; col < entity.BoardSize; col++ {
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" ")
			sb.WriteString(that.cell(model, entity.CellIndex(row, col)))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n[ " + view.ResetLabel + " ] (r)\n")

	return sb.String()
}

func (that *Server) cell(model view.Model, i int) string {
	style := that.output.String(model.Cells[i])

	switch model.Cells[i] {
	case entity.MarkX.String():
		style = style.Foreground(that.output.Color(that.theme.MarkX))
	case entity.MarkO.String():
		style = style.Foreground(that.output.Color(that.theme.MarkO))
	}

	if model.Winning[i] {
		style = style.Bold()
	}

	if model.Highlighted == i {
		style = style.Reverse()
	}

	return style.String()
}
