package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gasdata/gie/filter"
	"github.com/gasdata/gie/gie"
)

var (
	country  string
	company  string
	facility string
	fromDate string
	toDate   string
	onDate   string
	updated  string
	dataType string
	page     int
	size     int
	reverse  string

	startDate string
	endDate   string
	endFlag   string

	fullListing bool
	newsURL     string
)

// storageCmd queries storage data
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Query storage data",
	Long: `Query gas or LNG storage data from a platform.

Company and facility filters require a country; a facility filter
additionally requires its company.`,
	RunE: runStorage,
}

// unavailabilityCmd queries unavailability events
var unavailabilityCmd = &cobra.Command{
	Use:   "unavailability",
	Short: "Query unavailability events",
	RunE:  runUnavailability,
}

// eicCmd queries the EIC identifier listing
var eicCmd = &cobra.Command{
	Use:   "eic",
	Short: "Query the EIC identifier listing",
	RunE:  runEIC,
}

// newsCmd queries the news listing
var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Query the news listing",
	RunE:  runNews,
}

func init() {
	for _, c := range []*cobra.Command{storageCmd, unavailabilityCmd} {
		c.Flags().StringVar(&country, "country", "", "country code, e.g. DE")
		c.Flags().StringVar(&company, "company", "", "company EIC or name (requires --country)")
		c.Flags().StringVar(&facility, "facility", "", "facility EIC (requires --country and --company)")
		c.Flags().StringVar(&fromDate, "from", "", "start of the gas-day range (YYYY-MM-DD)")
		c.Flags().StringVar(&toDate, "to", "", "end of the gas-day range (YYYY-MM-DD)")
		c.Flags().StringVar(&dataType, "type", "", "record type filter")
		c.Flags().IntVar(&page, "page", 0, "result page, starting at 1")
		c.Flags().IntVar(&size, "size", 0, "page size (1-300)")
		c.Flags().StringVar(&reverse, "reverse", "", "reverse ordering (true, false, 0 or 1)")
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "expression to filter result records client-side")
	}

	storageCmd.Flags().StringVar(&onDate, "date", "", "exact gas day (YYYY-MM-DD)")
	storageCmd.Flags().StringVar(&updated, "updated", "", "only records updated since (YYYY-MM-DD)")

	unavailabilityCmd.Flags().StringVar(&startDate, "start", "", "start of the unavailability period (YYYY-MM-DD)")
	unavailabilityCmd.Flags().StringVar(&endDate, "end", "", "end of the unavailability period (YYYY-MM-DD)")
	unavailabilityCmd.Flags().StringVar(&endFlag, "end-flag", "", "end flag (Confirmed or Estimate)")

	eicCmd.Flags().BoolVar(&fullListing, "listing", false, "fetch the complete listing")
	newsCmd.Flags().StringVar(&newsURL, "url", "", "fetch a single news item by URL")

	rootCmd.AddCommand(storageCmd)
	rootCmd.AddCommand(unavailabilityCmd)
	rootCmd.AddCommand(eicCmd)
	rootCmd.AddCommand(newsCmd)
}

func runStorage(cmd *cobra.Command, args []string) error {
	endpoint, err := selectedPlatform()
	if err != nil {
		return err
	}

	query := gie.StorageQuery{
		Page:     page,
		Size:     size,
		Reverse:  reverse,
		Type:     dataType,
		Country:  country,
		Company:  company,
		Facility: facility,
	}
	if query.From, err = parseDateFlag("from", fromDate); err != nil {
		return err
	}
	if query.To, err = parseDateFlag("to", toDate); err != nil {
		return err
	}
	if query.Date, err = parseDateFlag("date", onDate); err != nil {
		return err
	}
	if query.Updated, err = parseDateFlag("updated", updated); err != nil {
		return err
	}

	logger.Info().Str("platform", endpoint.Name()).Msg("querying storage data")

	result, err := client.QueryStorage(context.Background(), endpoint, query)
	if err != nil {
		return err
	}
	return printResult(result)
}

func runUnavailability(cmd *cobra.Command, args []string) error {
	endpoint, err := selectedPlatform()
	if err != nil {
		return err
	}

	query := gie.UnavailabilityQuery{
		Page:     page,
		Size:     size,
		Reverse:  reverse,
		Type:     dataType,
		EndFlag:  endFlag,
		Country:  country,
		Company:  company,
		Facility: facility,
	}
	if query.From, err = parseDateFlag("from", fromDate); err != nil {
		return err
	}
	if query.To, err = parseDateFlag("to", toDate); err != nil {
		return err
	}
	if query.Start, err = parseDateFlag("start", startDate); err != nil {
		return err
	}
	if query.End, err = parseDateFlag("end", endDate); err != nil {
		return err
	}

	logger.Info().Str("platform", endpoint.Name()).Msg("querying unavailability events")

	result, err := client.QueryUnavailability(context.Background(), endpoint, query)
	if err != nil {
		return err
	}
	return printResult(result)
}

func runEIC(cmd *cobra.Command, args []string) error {
	endpoint, err := selectedPlatform()
	if err != nil {
		return err
	}

	result, err := client.QueryEICListing(context.Background(), endpoint, fullListing)
	if err != nil {
		return err
	}
	return printResult(result)
}

func runNews(cmd *cobra.Command, args []string) error {
	endpoint, err := selectedPlatform()
	if err != nil {
		return err
	}

	result, err := client.QueryNewsListing(context.Background(), endpoint, newsURL)
	if err != nil {
		return err
	}
	return printResult(result)
}

// parseDateFlag parses a YYYY-MM-DD flag value; empty means unset.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(gie.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: expected YYYY-MM-DD", name, value)
	}
	return t, nil
}

// printResult applies the --filter expression, if any, and writes the
// result as indented JSON to stdout.
func printResult(result gie.JSON) error {
	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		result = filterResult(result, f)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// filterResult narrows the record array of a decoded response. The
// platforms wrap listings in a "data" array; bare arrays are filtered
// directly, anything else passes through untouched.
func filterResult(result gie.JSON, f *filter.Filter) gie.JSON {
	switch v := result.(type) {
	case []any:
		return f.Apply(v)
	case map[string]any:
		if records, ok := v["data"].([]any); ok {
			filtered := make(map[string]any, len(v))
			for k, val := range v {
				filtered[k] = val
			}
			filtered["data"] = f.Apply(records)
			return filtered
		}
	}
	return result
}
