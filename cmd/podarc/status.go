package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcorpas/podarc/internal/domain"
)

func statusCmd() *cobra.Command {
	var showResults bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show recorded fetch runs and published episodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer appCtx.Store.Close()

			ctx := cmd.Context()

			runs, err := appCtx.Store.ListRuns(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Fetch runs: %d\n", len(runs))
			for _, run := range runs {
				fmt.Printf("  %s  %-9s  started %s", run.ID, run.Status, run.StartedAt.Format("2006-01-02 15:04:05"))
				if run.Error != "" {
					fmt.Printf("  (%s)", run.Error)
				}
				fmt.Println()

				if showResults {
					results, err := appCtx.Store.ListResults(ctx, run.ID)
					if err != nil {
						return err
					}
					for _, res := range results {
						marker := "ok"
						if res.Status == domain.StatusFailed {
							marker = "FAILED"
						}
						fmt.Printf("    [%d] %-6s %s (%d bytes)\n", res.Index, marker, res.Dest, res.Bytes)
					}
				}
			}

			episodes, err := appCtx.Store.ListEpisodes(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Published episodes: %d\n", len(episodes))
			for _, ep := range episodes {
				fmt.Printf("  %s  %s (%dm)\n", ep.PubDate.Format("2006-01-02"), ep.Title, ep.Duration/60)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&showResults, "results", "r", false, "include per-entry results for each run")

	return cmd
}
