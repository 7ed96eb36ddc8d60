package main

import (
	"fmt"
	"log"

	"github.com/jonathan/applyday/internal/applications"
	"github.com/jonathan/applyday/internal/backend"
	"github.com/jonathan/applyday/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-status counts from the backend and the local summary",
	Long: `Fetch the backend get_stats counts and the full collection concurrently.
If the stats action fails, only the locally computed summary is shown.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	var (
		all      []types.Application
		remote   *types.Stats
		statsErr error
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		all, err = client.ListApplications(ctx, backend.ListOptions{})
		return err
	})
	g.Go(func() error {
		remote, statsErr = client.GetStats(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load applications: %w", err)
	}

	if statsErr != nil {
		log.Printf("[stats] backend stats unavailable: %v", statsErr)
		remote = nil
	}
	newPrinter(cmd).PrintStats(applications.Summarize(all), remote)
	return nil
}
