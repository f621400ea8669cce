package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mcorpas/podarc/internal/app"
	"github.com/mcorpas/podarc/internal/config"
	"github.com/mcorpas/podarc/internal/logger"
	"github.com/mcorpas/podarc/internal/store"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:           "podarc",
		Short:         "Podcast archive fetcher and publisher",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file")

	root.AddCommand(fetchCmd())
	root.AddCommand(addCmd())
	root.AddCommand(statusCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap builds the shared application context. When requireStore is
// false a broken store only logs a warning; downloads must not depend on
// the history database.
func bootstrap(requireStore bool) (*app.Context, error) {
	// A .env next to the binary can override config through PODARC_* vars
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Path, logger.ParseLevel(cfg.Log.Level), cfg.Log.IncludeStdout)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	appCtx := app.NewContext(cfg, log)

	st, err := store.NewArchiveStore(cfg.Store.SQLitePath)
	if err != nil {
		if requireStore {
			return nil, err
		}
		log.Warn("archive store unavailable, history will not be recorded: %v", err)
	} else {
		appCtx.Store = st
	}

	return appCtx, nil
}
