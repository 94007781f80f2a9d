package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. The TUI owns the terminal, so without a log file its logs are discarded.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var out io.Writer = os.Stderr
	closeLog := func() {}

	switch {
	case conf.LogFile != "":
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		out = file
		closeLog = func() { _ = file.Close() }
	case conf.Renderer == config.RendererTUI:
		out = io.Discard
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: conf.SlogLevel()})), closeLog
}
