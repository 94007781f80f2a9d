package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/view"
)

const (
	actionMove  = "move"
	actionReset = "reset"
)

const helpText = "1-9 or click: play   r: reset   q: quit"

type gameSession interface {
	State() entity.GameState
	MakeTurn(ctx context.Context, cell int) (entity.GameState, error)
	Reset(ctx context.Context) entity.GameState
}

type styles struct {
	text      tcell.Style
	grid      tcell.Style
	markX     tcell.Style
	markO     tcell.Style
	highlight tcell.Color
	button    tcell.Style
}

func newStyles(theme config.Theme) styles {
	return styles{
		text:      tcell.StyleDefault,
		grid:      tcell.StyleDefault.Dim(true),
		markX:     tcell.StyleDefault.Foreground(tcell.GetColor(theme.MarkX)).Bold(true),
		markO:     tcell.StyleDefault.Foreground(tcell.GetColor(theme.MarkO)).Bold(true),
		highlight: tcell.GetColor(theme.Highlight),
		button:    tcell.StyleDefault.Reverse(true),
	}
}

// Server draws the board on a terminal screen and turns keys and mouse clicks into taps.
type Server struct {
	logger  *slog.Logger
	session gameSession
	screen  tcell.Screen

	layout    layout
	styles    styles
	highlight *view.Highlight
	now       func() time.Time
	redraw    *time.Timer
	buttons   tcell.ButtonMask

	handlers map[string]func(ctx context.Context, cell int)
}

// New - creates a server on an initialised screen. The caller owns the screen and finalises it.
func New(logger *slog.Logger, session gameSession, screen tcell.Screen, conf *config.Config) *Server {
	server := &Server{
		logger:    logger.With("component", "tui"),
		session:   session,
		screen:    screen,
		layout:    defaultLayout,
		styles:    newStyles(conf.Theme),
		highlight: view.NewHighlight(conf.Highlight),
		now:       time.Now,
		handlers:  make(map[string]func(context.Context, int)),
	}

	server.handlers[actionMove] = server.handleMove
	server.handlers[actionReset] = server.handleReset

	return server
}

// NewScreen - opens and initialises the terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	return screen, nil
}

// Run - processes screen events until the user quits or ctx is done.
func (that *Server) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.screen.EnableMouse()
	that.screen.HideCursor()
	defer that.screen.DisableMouse()
	defer that.stopRedraw()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = that.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
		case <-done:
		}
	}()

	that.draw()

	for {
		event := that.screen.PollEvent()
		if event == nil {
			log.Info("screen finalised")
			return nil
		}

		if quit := that.handleEvent(ctx, event); quit {
			log.Info("quit requested")
			return nil
		}
	}
}

// handleEvent - reacts to one screen event and reports whether the loop should stop.
func (that *Server) handleEvent(ctx context.Context, event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventResize:
		that.screen.Sync()
		that.draw()

	case *tcell.EventInterrupt:
		if err, ok := ev.Data().(error); ok && err != nil {
			return true
		}
		that.draw()

	case *tcell.EventKey:
		return that.handleKey(ctx, ev)

	case *tcell.EventMouse:
		that.handleMouse(ctx, ev)
	}

	return false
}

func (that *Server) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := ev.Rune(); {
	case r == 'q' || r == 'Q':
		return true
	case r == 'r' || r == 'R':
		that.handlers[actionReset](ctx, view.NoCell)
	case r >= '1' && r <= '9':
		that.handlers[actionMove](ctx, int(r-'1'))
	}

	return false
}

// handleMouse - acts on the press of the primary button only, so holding or dragging does not repeat taps.
func (that *Server) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0 && that.buttons&tcell.Button1 == 0
	that.buttons = ev.Buttons()

	if !pressed {
		return
	}

	x, y := ev.Position()

	if cell, ok := that.layout.cellAt(x, y); ok {
		that.handlers[actionMove](ctx, cell)
		return
	}

	if that.layout.onReset(x, y) {
		that.handlers[actionReset](ctx, view.NoCell)
	}
}

func (that *Server) handleMove(ctx context.Context, cell int) {
	if _, err := that.session.MakeTurn(ctx, cell); err != nil {
		that.logger.Debug("tap ignored", "method", "handleMove", "cell", cell, "reason", err)
		return
	}

	that.highlight.Select(cell, that.now())
	that.scheduleRedraw()
	that.draw()
}

func (that *Server) handleReset(ctx context.Context, _ int) {
	that.session.Reset(ctx)
	that.highlight.Clear()
	that.stopRedraw()
	that.draw()
}

// scheduleRedraw - wakes the event loop when the highlight expires.
func (that *Server) scheduleRedraw() {
	that.stopRedraw()

	that.redraw = time.AfterFunc(that.highlight.Duration(), func() {
		_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
}

func (that *Server) stopRedraw() {
	if that.redraw != nil {
		that.redraw.Stop()
		that.redraw = nil
	}
}

func (that *Server) draw() {
	model := view.Build(that.session.State(), that.highlight.Cell(that.now()))

	that.screen.Clear()

	that.drawText(that.layout.x, that.layout.statusY(), that.styles.text.Bold(true), model.Status)
	that.drawGrid()

	for cell := range model.Cells {
		that.drawCell(model, cell)
	}

	that.drawText(that.layout.x, that.layout.resetY(), that.styles.button, that.layout.resetButton())
	that.drawText(that.layout.x, that.layout.helpY(), that.styles.grid, helpText)

	that.screen.Show()
}

func (that *Server) drawGrid() {
	for dy := 0; dy < boardHeight; dy++ {
		for dx := 0; dx < boardWidth; dx++ {
			vertical := dx%(cellWidth+1) == cellWidth
			horizontal := dy%(cellHeight+1) == cellHeight

			var r rune
			switch {
			case vertical && horizontal:
				r = tcell.RunePlus
			case vertical:
				r = tcell.RuneVLine
			case horizontal:
				r = tcell.RuneHLine
			default:
				continue
			}

			that.screen.SetContent(that.layout.x+dx, that.layout.y+dy, r, nil, that.styles.grid)
		}
	}
}

func (that *Server) drawCell(model view.Model, cell int) {
	x, y := that.layout.cellOrigin(cell)

	background := tcell.StyleDefault
	if model.Highlighted == cell {
		background = background.Background(that.styles.highlight)
	}

	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			that.screen.SetContent(x+dx, y+dy, ' ', nil, background)
		}
	}

	style := background
	switch model.Cells[cell] {
	case entity.MarkX.String():
		style = that.styles.markX
	case entity.MarkO.String():
		style = that.styles.markO
	}

	if model.Highlighted == cell {
		style = style.Background(that.styles.highlight)
	}

	if model.Winning[cell] {
		style = style.Reverse(true)
	}

	label := []rune(model.Cells[cell])[0]
	that.screen.SetContent(x+cellWidth/2, y+cellHeight/2, label, nil, style)
}

func (that *Server) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		that.screen.SetContent(x+i, y, r, nil, style)
	}
}
