package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcorpas/podarc/internal/fetcher"
	"github.com/mcorpas/podarc/internal/manifest"
)

func fetchCmd() *cobra.Command {
	var manifestPath string
	var workers int

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download every manifest entry into the archive",
		Long: `Walks the episode manifest in order and downloads each audio file
into the archive's audio directory. The run stops at the first failure;
files downloaded before that point are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := bootstrap(false)
			if err != nil {
				return err
			}
			if appCtx.Store != nil {
				defer appCtx.Store.Close()
			}

			if workers > 0 {
				appCtx.Config.Fetch.Workers = workers
			}
			if manifestPath == "" {
				manifestPath = appCtx.Config.Fetch.ManifestPath
			}

			m := manifest.Default()
			if manifestPath != "" {
				if m, err = manifest.Load(manifestPath); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return fetcher.New(appCtx).Run(ctx, m)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest file (default: built-in episode table)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel downloads (default 1, strictly sequential)")

	return cmd
}
