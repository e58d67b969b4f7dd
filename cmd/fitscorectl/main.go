package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/fitscore/internal/config"
	"github.com/2beens/fitscore/internal/db"
	"github.com/2beens/fitscore/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	env        string
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "fitscorectl",
	Short: "Maintenance tasks for the fitscore database",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logging.LoggerSetupParams{
			LogToStdout: true,
			LogLevel:    logLevel,
		})
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openPool connects to the postgres instance of the selected environment.
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, err
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITSCORE_DB_PASSWORD"),
	})
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	log.Debugf("connected to %s:%s/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName)
	return pool, nil
}
