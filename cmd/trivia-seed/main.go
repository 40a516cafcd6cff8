package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"trivia-api/internal/config"
	"trivia-api/internal/importer"
	"trivia-api/internal/logging"
	"trivia-api/internal/opentdb"
	"trivia-api/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	source := flag.String("source", "opentdb", "question source: opentdb, fake or none")
	amount := flag.Int("amount", 20, "number of questions to import")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for -source=fake")
	timeout := flag.Duration("timeout", 10*time.Second, "OpenTriviaDB HTTP timeout")
	allCategories := flag.Bool("all-categories", false, "also create every OpenTriviaDB category")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	client := opentdb.NewClient(&http.Client{Timeout: *timeout})
	names := append([]string(nil), importer.DefaultCategories...)
	if *allCategories {
		remote, err := client.FetchCategories(ctx)
		if err != nil {
			return fmt.Errorf("fetch categories: %w", err)
		}
		for _, category := range remote {
			names = append(names, importer.CategoryName(category.Name))
		}
	}

	im := importer.New(store, logger)
	created, err := im.SeedCategories(ctx, names)
	if err != nil {
		return err
	}
	logger.Info("seeded categories", zap.Int("created", created))

	switch *source {
	case "none":
		return nil
	case "fake":
		_, err = im.ImportQuestions(ctx, importer.FakeQuestions(*amount, *seed))
		return err
	case "opentdb":
		raw, err := client.FetchQuestions(ctx, *amount)
		if err != nil {
			return fmt.Errorf("fetch questions: %w", err)
		}
		_, err = im.ImportQuestions(ctx, raw)
		return err
	default:
		return fmt.Errorf("unknown source %q", *source)
	}
}
