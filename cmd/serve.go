package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autopostr/internal/api"
	"autopostr/worker"

	"github.com/spf13/cobra"
)

var serveNoScheduler bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the post scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, rdb, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer rdb.Close()

		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}
		h := &api.Handlers{
			Generator:    gen,
			Store:        store,
			Moderator:    newModerator(cfg),
			HistoryLimit: cfg.Generator.HistoryLimit,
		}
		if cfg.ModerationEnabled() {
			slog.Info("serve: moderation enabled", "model", cfg.OpenAI.ModerationModel)
		}
		workers := []worker.Worker{&api.Server{Addr: cfg.API.Addr, Handler: api.NewRouter(h)}}

		if !serveNoScheduler {
			interval, err := time.ParseDuration(cfg.Scheduler.Interval)
			if err != nil {
				return fmt.Errorf("scheduler.interval: %w", err)
			}
			s := &worker.Scheduler{
				Store:     store,
				OutputDir: cfg.Export.OutputDir,
				Interval:  interval,
				BatchSize: cfg.Scheduler.BatchSize,
			}
			if cfg.PublisherEnabled() {
				pub, err := newPublisher(cfg)
				if err != nil {
					return err
				}
				s.Publisher = pub
			} else {
				slog.Info("serve: publisher not configured, due posts are only exported")
			}
			workers = append(workers, s)
		}

		return worker.NewManager(workers...).Start(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveNoScheduler, "no-scheduler", false, "only serve the API")
	rootCmd.AddCommand(serveCmd)
}
