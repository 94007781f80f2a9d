package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const (
	maxWaitDuration   = 10 * time.Second
	highlightDuration = 300 * time.Millisecond
)

const (
	screenWidth  = 48
	screenHeight = 20
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Config  *config.Config
	Session *usecase.GameSession
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	conf := &config.Config{
		LogLevel:  "info",
		Renderer:  config.RendererConsole,
		Highlight: highlightDuration,
		Theme: config.Theme{
			MarkX:     "#ff5f5f",
			MarkO:     "#5fafff",
			Highlight: "#add8e6",
		},
	}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Config:  conf,
		Session: usecase.NewGameSession(logger),
	}
}

// NewScreen returns an initialised simulation screen that is finalised when the test ends.
func (that *Suite) NewScreen() tcell.SimulationScreen {
	that.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		that.Fatalf("could not init simulation screen: %v", err)
	}

	screen.SetSize(screenWidth, screenHeight)

	that.Cleanup(func() {
		screen.Fini()
	})

	return screen
}

// Row returns the text of line y as currently shown on screen.
func Row(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()

	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			runes = append(runes, ' ')
			continue
		}
		runes = append(runes, cell.Runes[0])
	}

	return string(runes)
}
