package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	session := usecase.NewGameSession(logger)

	// run renderer
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting renderer", "renderer", conf.Renderer, "round_id", session.RoundID())
		errCh <- runRenderer(ctx, logger, conf, session)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("renderer error: %w", err)
		}
		log.Info("Renderer stopped")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		// wait for the renderer to restore the terminal; a second signal skips the wait
		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("renderer error: %w", err)
			}
		case sig := <-sigs:
			log.Warn("Received second signal, exiting without waiting for the renderer", "signal", sig)
		}
		return nil
	}
}

func runRenderer(ctx context.Context, logger *slog.Logger, conf *config.Config, session *usecase.GameSession) error {
	switch conf.Renderer {
	case config.RendererConsole:
		return console.New(logger, session, os.Stdout, conf).Run(ctx, os.Stdin)

	case config.RendererTUI:
		screen, err := tui.NewScreen()
		if err != nil {
			return fmt.Errorf("could not open terminal: %w", err)
		}
		defer screen.Fini()

		return tui.New(logger, session, screen, conf).Run(ctx)

	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownRenderer, conf.Renderer)
	}
}
