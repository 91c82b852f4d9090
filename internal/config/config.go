package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dshills/fixbuf/internal/failure"
	"github.com/dshills/fixbuf/internal/fixedstr"
	"github.com/dshills/fixbuf/internal/logging"
)

// MaxCapacity bounds the capacity accepted from configuration.
const MaxCapacity = 1 << 20

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FIXBUF_"

// Format is a configuration file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Config holds the fixbuf settings.
type Config struct {
	// Failure names the failure policy: silent, log or raise.
	Failure    string         `toml:"failure" yaml:"failure"`
	// Capacity is the capacity of strings created without an explicit one.
	Capacity   int            `toml:"capacity" yaml:"capacity"`
	// Truncation controls how clamping to capacity is surfaced.
	Truncation Truncation     `toml:"truncation" yaml:"truncation"`
	// Log configures the logger used by the log policy.
	Log        logging.Config `toml:"log" yaml:"log"`
}

// Truncation controls truncation tracking.
type Truncation struct {
	// Track keeps a sticky flag once content has been clamped.
	Track bool `toml:"track" yaml:"track"`
	// Error reports clamping to the failure reporter and returns an error.
	Error bool `toml:"error" yaml:"error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Failure:    failure.PolicySilent.String(),
		Capacity:   256,
		Truncation: Truncation{Track: true},
		Log:        logging.DefaultConfig(),
	}
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := failure.ParsePolicy(c.Failure); err != nil {
		return &ValidationError{Setting: "failure", Value: c.Failure, Message: "must be silent, log or raise"}
	}
	if c.Capacity < 0 || c.Capacity > MaxCapacity {
		return &ValidationError{
			Setting: "capacity",
			Value:   c.Capacity,
			Message: fmt.Sprintf("must be in [0, %d]", MaxCapacity),
		}
	}
	if err := c.Log.Validate(); err != nil {
		return &ValidationError{Setting: "log", Value: c.Log.Level, Message: err.Error()}
	}
	return nil
}

// Reporter builds the failure reporter named by Failure. logger is used by
// the log policy.
func (c Config) Reporter(logger *zap.Logger) (failure.Reporter, error) {
	p, err := failure.ParsePolicy(c.Failure)
	if err != nil {
		return nil, err
	}
	return failure.NewReporter(p, logger), nil
}

// Options translates the configuration into fixedstr options.
func (c Config) Options(logger *zap.Logger) ([]fixedstr.Option, error) {
	r, err := c.Reporter(logger)
	if err != nil {
		return nil, err
	}
	opts := []fixedstr.Option{fixedstr.WithReporter(r)}
	if c.Truncation.Track {
		opts = append(opts, fixedstr.WithTruncationTracking())
	}
	if c.Truncation.Error {
		opts = append(opts, fixedstr.WithTruncationError())
	}
	return opts, nil
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads path from the OS file system, then applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg, err := loadFile(path, os.ReadFile)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFS reads path from fsys and validates the result. Environment
// overrides are not applied.
func LoadFS(fsys fs.FS, path string) (Config, error) {
	cfg, err := loadFile(path, func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	})
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func loadFile(path string, read func(string) ([]byte, error)) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Default(), err
	}
	data, err := read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(format, path, data)
}

// Parse decodes data over Default. Unknown keys are rejected. source names
// the data in errors.
func Parse(format Format, source string, data []byte) (Config, error) {
	cfg := Default()
	var err error
	switch format {
	case FormatTOML:
		err = decodeTOML(source, data, &cfg)
	case FormatYAML:
		err = decodeYAML(source, data, &cfg)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return cfg, err
}

func decodeTOML(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	if err == nil {
		return nil
	}

	pe := &ParseError{Path: source, Err: err}
	var derr *toml.DecodeError
	var serr *toml.StrictMissingError
	switch {
	case errors.As(err, &derr):
		pe.Line, pe.Column = derr.Position()
	case errors.As(err, &serr) && len(serr.Errors) > 0:
		pe.Line, pe.Column = serr.Errors[0].Position()
	}
	return pe
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func decodeYAML(source string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	pe := &ParseError{Path: source, Err: err}
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}

// ApplyEnv overrides settings from FIXBUF_ variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = b
		return nil
	}

	str("FAILURE", &c.Failure)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("LOG_FILE", &c.Log.File)
	if v, ok := lookup(EnvPrefix + "CAPACITY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sCAPACITY: %w", EnvPrefix, err)
		}
		c.Capacity = n
	}
	if err := boolean("TRUNCATION_TRACK", &c.Truncation.Track); err != nil {
		return err
	}
	return boolean("TRUNCATION_ERROR", &c.Truncation.Error)
}
