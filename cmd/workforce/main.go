package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	json "github.com/goccy/go-json"
	flag "github.com/spf13/pflag"

	"github.com/whiteelite/workforce/internal/app/lifecycle"
	"github.com/whiteelite/workforce/internal/config"
	"github.com/whiteelite/workforce/internal/domain/entities"
	domainrepos "github.com/whiteelite/workforce/internal/domain/repositories"
	"github.com/whiteelite/workforce/internal/infrastructure/messaging/kafka/repositories/repository"
	"github.com/whiteelite/workforce/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	verbosity, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse log level: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(verbosity, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(err, "Run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logr.Logger) error {
	journal, err := repository.NewJournal(repository.JournalParams{Topic: cfg.Journal.Topic})
	if err != nil {
		return err
	}
	svc := lifecycle.NewService(journal, cfg.Journal.Topic, logger)

	intern := entities.Intern()
	manager := entities.Manager()

	for _, w := range []*entities.Worker{intern, manager} {
		if err := svc.Hire(ctx, w); err != nil {
			return err
		}
		logger.Info("Hired worker", "subject", w.Handle(), "name", w.Name)
	}

	if err := svc.GoToWork(ctx, intern); err != nil {
		return err
	}
	if err := svc.Sleep(ctx, intern); err != nil {
		return err
	}

	if err := printJSON("workers", []*entities.Worker{intern, manager}); err != nil {
		return err
	}

	history, err := svc.History(ctx, intern.Handle(), domainrepos.Page{Size: cfg.Journal.PageSize})
	if err != nil {
		return err
	}
	if err := printJSON("intern history", history); err != nil {
		return err
	}

	restored := make([]*entities.Worker, 0, 2)
	for _, w := range []*entities.Worker{intern, manager} {
		got, err := svc.RestoreWorker(ctx, w.Handle())
		if err != nil {
			return err
		}
		restored = append(restored, got)
	}

	logger.Info("Replayed journal", "records", journal.Len(), "topic", journal.Topic())
	return printJSON("restored", restored)
}

func printJSON(title string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("%s:\n%s\n", title, out)
	return nil
}
