package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"zetanom/cmd/config"
	migration "zetanom/cmd/database/migrate"
	"zetanom/internal/repl"
	"zetanom/internal/utils"
	"zetanom/internal/utils/storage"
	"zetanom/pkg/food"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	root := &cobra.Command{
		Use:           "zetanom",
		Short:         "Personal diet log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file (default config.yaml or ~/.config/zetanom/config.yaml)")
	root.AddCommand(serveCmd(), replCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "zetanom: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (utils.Config, error) {
	return utils.LoadConfig(utils.ConfigPath(configFile))
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := config.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			app, err := config.NewApp(store, cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				if err := app.Shutdown(); err != nil {
					log.Errorf("error shutting down server: %v", err)
				}
			}()

			addr := fmt.Sprintf(":%d", cfg.Port)
			log.Infof("Started server on %s", addr)
			return app.Listen(addr)
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive console",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := config.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			foodService := food.NewFoodService(food.NewFoodRepository(store))
			return repl.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), foodService)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.DBDriver == storage.DriverSQLite && cfg.DBPath == storage.MemoryPath {
				return errors.New("refusing to migrate an in-memory database")
			}
			db, err := config.ConnectDB(cfg)
			if err != nil {
				return err
			}
			return migration.Migrate(db)
		},
	}
}
