package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/leflux-api/internal/config"
	"github.com/phrazzld/leflux-api/internal/platform/postgres"
	"github.com/phrazzld/leflux-api/internal/redact"
	"github.com/spf13/cobra"
)

func newMigrateCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate {up|down|status|version}",
		Short:     "Apply or inspect database schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus, postgres.MigrateVersion},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			log, closer, err := setupLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			ctx := cmd.Context()
			db, err := postgres.Open(ctx, cfg.Database)
			if err != nil {
				log.Error("failed to connect to database", slog.String("error", redact.Error(err)))
				return err
			}
			defer func() { _ = db.Close() }()

			if err := postgres.Migrate(ctx, db, args[0], log); err != nil {
				log.Error("migration failed", slog.String("command", args[0]), slog.String("error", redact.Error(err)))
				return err
			}
			log.Info("migration finished", slog.String("command", args[0]))
			return nil
		},
	}
}
