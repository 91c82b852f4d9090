// Package main is the entry point for the fixbuf command.
//
// fixbuf builds a fixed-capacity string and edits it with either a JSON
// batch or a Lua script. Batch results are written to stdout as JSON.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dshills/fixbuf/internal/batch"
	"github.com/dshills/fixbuf/internal/config"
	"github.com/dshills/fixbuf/internal/logging"
	"github.com/dshills/fixbuf/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// errUsage marks errors that should print usage and exit with status 2.
var errUsage = errors.New("usage")

type options struct {
	configPath string
	capacity   int
	init       string
	scriptPath string
	batchPath  string
	logLevel   string
	failure    string
	pretty     bool
	version    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, flags, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			flags.Usage()
		}
		return 2
	}
	if opts.version {
		fmt.Fprintf(stdout, "fixbuf %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := loadConfig(opts, flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	strOpts, err := cfg.Options(logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.scriptPath != "" {
		state := script.NewState(
			script.WithLogger(logger),
			script.WithOutput(stdout),
			script.WithMaxCapacity(config.MaxCapacity),
			script.WithStringOptions(strOpts...),
		)
		defer state.Close()
		if err := state.DoFile(ctx, opts.scriptPath); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	b := &batch.Batch{Capacity: cfg.Capacity, Init: opts.init}
	if opts.batchPath != "" {
		data, err := readInput(opts.batchPath, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error: reading batch: %v\n", err)
			return 1
		}
		if b, err = batch.Parse(data, cfg.Capacity, config.MaxCapacity); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		if flags.Changed("init") {
			b.Init = opts.init
		}
	}

	res := batch.NewRunner(logger, strOpts...).Run(b)
	out, err := batch.Report(res)
	if err != nil {
		fmt.Fprintf(stderr, "Error: encoding report: %v\n", err)
		return 1
	}
	if isTerminal(stdout) {
		out = pretty.Color(pretty.Pretty(out), nil)
	} else if opts.pretty {
		out = pretty.Pretty(out)
	} else {
		out = append(out, '\n')
	}
	if _, err := stdout.Write(out); err != nil {
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, *pflag.FlagSet, error) {
	var opts options
	flags := pflag.NewFlagSet("fixbuf", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a TOML or YAML configuration file")
	flags.IntVarP(&opts.capacity, "capacity", "n", 0, "Capacity of the string (overrides configuration)")
	flags.StringVarP(&opts.init, "init", "i", "", "Initial content")
	flags.StringVarP(&opts.scriptPath, "script", "s", "", "Lua script to run")
	flags.StringVarP(&opts.batchPath, "batch", "b", "", "JSON batch to apply (- reads stdin)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.failure, "failure", "", "Failure policy (silent, log, raise)")
	flags.BoolVarP(&opts.pretty, "pretty", "p", false, "Indent JSON output")
	flags.BoolVarP(&opts.version, "version", "v", false, "Show version information")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "fixbuf - edit fixed-capacity strings\n\n")
		fmt.Fprintf(stderr, "Usage: fixbuf [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fixbuf -n 8 -i 'Hello, World'     Show how content is clamped\n")
		fmt.Fprintf(stderr, "  fixbuf -b edits.json              Apply a batch\n")
		fmt.Fprintf(stderr, "  fixbuf -s edit.lua --failure log  Run a script, logging failures\n")
	}

	if err := flags.Parse(args); err != nil {
		return opts, flags, err
	}
	if flags.NArg() > 0 {
		return opts, flags, fmt.Errorf("%w: unexpected arguments %v", errUsage, flags.Args())
	}
	if opts.scriptPath != "" && opts.batchPath != "" {
		return opts, flags, fmt.Errorf("%w: --script and --batch are mutually exclusive", errUsage)
	}
	return opts, flags, nil
}

// loadConfig reads the configuration file, if any, and applies flags on top.
func loadConfig(opts options, flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	} else if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if flags.Changed("capacity") {
		cfg.Capacity = opts.capacity
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("failure") {
		cfg.Failure = opts.failure
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config, stderr io.Writer) (*zap.Logger, error) {
	if cfg.Log.File != "" {
		return logging.New(cfg.Log)
	}
	return logging.NewWithWriter(cfg.Log, stderr)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
