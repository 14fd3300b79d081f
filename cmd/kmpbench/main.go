// Command kmpbench times the kmp matcher on best, worst and average case
// inputs over a table of sizes and prints a report.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/mhr3/kmp/internal/harness"
)

type options struct {
	configPath  string
	seed        int64
	repetitions int
	cases       []string
	format      string
	logLevel    string
	help        bool
}

func parseFlags(args []string, output io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("kmpbench", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&opts.configPath, "config", "c", "", "Path to YAML config file (default $"+harness.EnvConfig+")")
	fs.Int64Var(&opts.seed, "seed", 0, "Generator seed (0 seeds from the clock)")
	fs.IntVarP(&opts.repetitions, "repetitions", "r", 0, "Timed runs per experiment")
	fs.StringSliceVar(&opts.cases, "case", nil, "Cases to run: best, worst, average (repeatable)")
	fs.StringVarP(&opts.format, "format", "f", "", "Report format: text or yaml")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return opts, fs, nil
}

// resolve merges flags that were set explicitly into the loaded config.
func resolve(opts *options, fs *flag.FlagSet) (*harness.Config, error) {
	cfg, err := harness.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if fs.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if fs.Changed("repetitions") {
		cfg.Repetitions = opts.repetitions
	}
	if fs.Changed("format") {
		cfg.Format = opts.format
	}
	if len(opts.cases) > 0 {
		cfg.Cases = cfg.Cases[:0]
		for _, name := range opts.cases {
			c, err := harness.ParseCase(name)
			if err != nil {
				return nil, err
			}
			cfg.Cases = append(cfg.Cases, c)
		}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.ToUpper(s)))
	return l, err
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	if opts.help {
		fmt.Fprintf(stdout, "Usage: kmpbench [flags]\n\n%s", fs.FlagUsages())
		return 0
	}

	level, err := parseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid log level %q\n", opts.logLevel)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := resolve(opts, fs)
	if err != nil {
		logger.Error("loading config", slog.Any("err", err))
		return 1
	}
	logger.Info("starting",
		slog.Int64("seed", cfg.Seed),
		slog.Int("repetitions", cfg.Repetitions),
		slog.Int("experiments", len(cfg.Experiments)),
		slog.Int("cases", len(cfg.Cases)))

	runner := harness.NewRunner(harness.NewGenerator(cfg.Seed), cfg.Repetitions, logger)
	ms, err := runner.Run(ctx, cfg.Experiments, cfg.Cases)
	if err != nil {
		logger.Error("benchmark failed", slog.Any("err", err))
		return 1
	}

	report := harness.NewReport(harness.DetectHost(), cfg.Seed, ms)
	if err := harness.Write(stdout, cfg.Format, report); err != nil {
		logger.Error("writing report", slog.Any("err", err))
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
