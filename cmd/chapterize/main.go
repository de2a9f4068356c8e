package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/chapterize/chapterize/internal/boundary"
	"github.com/chapterize/chapterize/internal/config"
	"github.com/chapterize/chapterize/internal/logger"
	"github.com/chapterize/chapterize/internal/processor"
	"github.com/chapterize/chapterize/internal/summarizer"
	"github.com/chapterize/chapterize/internal/watcher"
	"github.com/chapterize/chapterize/pkg/executor"
)

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	// .env is optional; it usually only carries GEMINI_API_KEYS.
	_ = godotenv.Load()

	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := opts.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync() //nolint:errcheck // stdout sync errors are not actionable

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "%v", err)
		log.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts options, log logger.Logger) error {
	detector, err := newClassifier(cfg)
	if err != nil {
		return err
	}

	exec := executor.New()
	if err := exec.LookPath(cfg.FFmpeg.BinaryPath); err != nil {
		return fmt.Errorf("ffmpeg is required: %w", err)
	}
	if err := exec.LookPath(cfg.Whisper.BinaryPath); err != nil {
		log.Warn(ctx, "whisper.cpp not found (%v); only recordings with an existing .srt can be processed", err)
	}

	var procOpts []processor.Option
	if cfg.Summary.Enabled {
		if keys := cfg.SummaryKeys(); len(keys) > 0 {
			procOpts = append(procOpts, processor.WithSummarizer(summarizer.New(keys, cfg.Summary.Model, log)))
		} else {
			log.Warn(ctx, "summary.enabled is set but %s is empty; skipping summaries", cfg.Summary.KeysEnv)
		}
	}
	proc := processor.New(cfg, exec, log, detector, procOpts...)

	if !opts.watch {
		return proc.Process(ctx, opts.input)
	}
	return watch(ctx, cfg, proc, log)
}

func newClassifier(cfg *config.Config) (*boundary.Classifier, error) {
	rules, err := boundary.DefaultRules()
	if err != nil {
		return nil, err
	}
	if cfg.Chapters.RulesPath != "" {
		extra, err := boundary.LoadRules(cfg.Chapters.RulesPath)
		if err != nil {
			return nil, err
		}
		rules = rules.Merge(extra)
	}
	return boundary.New(rules)
}

func watch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger) error {
	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	handler := func(ctx context.Context, path string) error {
		if err := proc.Process(ctx, path); err != nil {
			return err
		}
		return proc.Archive(ctx, path)
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Chapterize is watching %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	return w.Start(ctx)
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
