package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/config"
	"github.com/zrohdes/ai-survey-platform/internal/infra"
	"github.com/zrohdes/ai-survey-platform/internal/printer"
	"github.com/zrohdes/ai-survey-platform/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for the configured SQL store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return printer.Error("Failed to load configuration", err.Error(), nil)
		}
		if cfg.Store.Driver == config.StoreMemory {
			printer.Warning("store.driver is memory, nothing to migrate\n")
			return nil
		}
		if cfg.Store.DSN == "" {
			return printer.Error("Missing database DSN",
				"The "+cfg.Store.Driver+" store needs a connection string.",
				[]string{"Set DATABASE_URL", "Set store.dsn in the config file"})
		}

		log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
		if err != nil {
			return printer.Error("Failed to create logger", err.Error(), nil)
		}
		defer func() { _ = log.Sync() }()

		db, err := infra.OpenDatabase(cfg.Store.Driver, cfg.Store.DSN)
		if err != nil {
			return printer.Error("Failed to open database", err.Error(), nil)
		}
		defer infra.CloseDatabase(db, log)

		printer.Step("Migrating %s store\n", cfg.Store.Driver)
		if err := infra.RunMigrations(cmd.Context(), db, cfg.Store.Driver); err != nil {
			log.Error("migration failed", zap.Error(err))
			return printer.Error("Migration failed", err.Error(), nil)
		}
		printer.Success("Database is up to date\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
