package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gasdata/gie/gie"
)

var snapshotPlatforms []string

// snapshotCmd fetches the current storage listing from several
// platforms at once. The client itself is strictly one request per
// call; the fan-out lives here in the caller.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Fetch the storage listing from several platforms at once",
	Long: `Fetch the first page of storage data from each named platform
concurrently and print one JSON document keyed by platform name.`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringSliceVar(&snapshotPlatforms, "platforms", []string{"agsi", "alsi"}, "platforms to include")
	snapshotCmd.Flags().IntVar(&size, "size", 0, "page size per platform (1-300)")

	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	endpoints := make([]gie.Endpoint, 0, len(snapshotPlatforms))
	for _, name := range snapshotPlatforms {
		endpoint, ok := client.LookupEndpoint(strings.ToLower(name))
		if !ok {
			return fmt.Errorf("unknown platform %q", name)
		}
		endpoints = append(endpoints, endpoint)
	}

	var mu sync.Mutex
	combined := make(map[string]gie.JSON, len(endpoints))

	g, ctx := errgroup.WithContext(context.Background())
	for _, endpoint := range endpoints {
		endpoint := endpoint
		g.Go(func() error {
			logger.Debug().Str("platform", endpoint.Name()).Msg("fetching snapshot")

			result, err := client.QueryStorage(ctx, endpoint, gie.StorageQuery{Size: size})
			if err != nil {
				return fmt.Errorf("%s: %w", endpoint.Name(), err)
			}

			mu.Lock()
			combined[endpoint.Name()] = result
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return printResult(combined)
}
