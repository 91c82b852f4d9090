// Package logging builds the zap logger used by the command and by the Log
// failure reporter.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnsupportedFormat is returned for a Format other than console or json.
var ErrUnsupportedFormat = errors.New("unsupported log format")

// Config configures a logger.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level  string `toml:"level" yaml:"level"`
	// Format is "console" or "json".
	Format string `toml:"format" yaml:"format"`
	// File is the log file. Empty means stderr.
	File   string `toml:"file" yaml:"file"`

	// Rotation settings, used only with File.
	MaxSizeMB  int `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int `toml:"max_backups" yaml:"max_backups"`
	MaxAgeDays int `toml:"max_age_days" yaml:"max_age_days"`
}

// DefaultConfig returns a warn-level console logger on stderr.
func DefaultConfig() Config {
	return Config{
		Level:     "warn",
		Format:    FormatConsole,
		MaxSizeMB: 64,
	}
}

// Validate checks the level and format.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	if _, err := c.encoder(); err != nil {
		return err
	}
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}
	return nil
}

func (c Config) level() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return lvl, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

func (c Config) encoder() (zapcore.Encoder, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	switch strings.ToLower(c.Format) {
	case "", FormatConsole:
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(ec), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(ec), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, c.Format)
	}
}

func (c Config) syncer() zapcore.WriteSyncer {
	if c.File == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
	})
}

// New builds a logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	return NewWithWriter(cfg, nil)
}

// NewWithWriter is New with output sent to w instead of cfg.File or stderr.
// A nil w keeps the configured destination.
func NewWithWriter(cfg Config, w io.Writer) (*zap.Logger, error) {
	lvl, err := cfg.level()
	if err != nil {
		return nil, err
	}
	enc, err := cfg.encoder()
	if err != nil {
		return nil, err
	}
	ws := cfg.syncer()
	if w != nil {
		ws = zapcore.AddSync(w)
	}
	core := zapcore.NewCore(enc, ws, zap.NewAtomicLevelAt(lvl))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel)), nil
}
