package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	RendererTUI     = "tui"
	RendererConsole = "console"
)

var (
	ErrUnknownRenderer  = errors.New("unknown renderer")
	ErrInvalidHighlight = errors.New("highlight duration must be positive")
	ErrUnknownLogLevel  = errors.New("unknown log level")
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type Config struct {
	LogLevel  string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile   string        `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Renderer  string        `yaml:"renderer" env:"RENDERER" env-default:"tui"`
	Highlight time.Duration `yaml:"highlight" env:"HIGHLIGHT" env-default:"300ms"`
	Theme     Theme         `yaml:"theme"`
}

type Theme struct {
	MarkX     string `yaml:"mark-x" env:"THEME_MARK_X" env-default:"#ff5f5f"`
	MarkO     string `yaml:"mark-o" env:"THEME_MARK_O" env-default:"#5fafff"`
	Highlight string `yaml:"highlight" env:"THEME_HIGHLIGHT" env-default:"#add8e6"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if _, ok := logLevels[that.LogLevel]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	switch that.Renderer {
	case RendererTUI, RendererConsole:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, that.Renderer)
	}

	if that.Highlight <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidHighlight, that.Highlight)
	}

	return nil
}

// SlogLevel - returns the validated log level.
func (that *Config) SlogLevel() slog.Level {
	return logLevels[that.LogLevel]
}
