package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyorn/xivseek/xivapi"
)

var (
	marketWorlds     []string
	marketDatacenter string
	marketMaxHistory int
	marketRaw        bool
)

// marketCmd represents the market command
var marketCmd = &cobra.Command{
	Use:   "market <item-id>",
	Short: "Fetch market board prices and sale history for an item",
	Long: `Fetch market board listings for an item, either from a set of worlds
queried concurrently or from every world of a datacenter. World queries
tolerate individual failures: reachable worlds are still reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runMarket,
}

func init() {
	rootCmd.AddCommand(marketCmd)

	marketCmd.Flags().StringSliceVarP(&marketWorlds, "worlds", "w", nil, "worlds to query (up to 15)")
	marketCmd.Flags().StringVarP(&marketDatacenter, "datacenter", "d", "", "datacenter to query instead of individual worlds")
	marketCmd.Flags().IntVar(&marketMaxHistory, "max-history", 0, "maximum history entries per world (default from config)")
	marketCmd.Flags().BoolVar(&marketRaw, "json", false, "print the full result as JSON")
	marketCmd.MarkFlagsMutuallyExclusive("worlds", "datacenter")
	marketCmd.MarkFlagsOneRequired("worlds", "datacenter")
}

func runMarket(cmd *cobra.Command, args []string) error {
	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item ID %q: must be a number", args[0])
	}

	opts := xivapi.MarketOptions{
		MaxHistory:  cfg.Market.MaxHistory,
		Concurrency: cfg.Market.Concurrency,
	}
	if cmd.Flags().Changed("max-history") {
		opts.MaxHistory = marketMaxHistory
	}

	ctx := context.Background()
	var result *xivapi.MarketResult
	if marketDatacenter != "" {
		result, err = client.MarketByDatacenter(ctx, itemID, marketDatacenter, opts)
	} else {
		result, err = client.MarketByWorlds(ctx, itemID, marketWorlds, opts)
	}
	if err != nil {
		return err
	}

	if marketRaw {
		return printJSON(result)
	}

	renderMarketResult(result)
	return nil
}

func renderMarketResult(result *xivapi.MarketResult) {
	fmt.Printf("Market board for item %d\n\n", result.ItemID)

	fmt.Println(strings.Repeat("━", 60))
	fmt.Printf("%-20s %-12s %-12s %s\n", "WORLD", "LISTINGS", "CHEAPEST", "HISTORY")
	fmt.Println(strings.Repeat("━", 60))

	for _, world := range result.Worlds {
		cheapest := "-"
		if price, ok := cheapestPrice(world.Listings.Prices); ok {
			cheapest = strconv.FormatInt(price, 10)
		}
		fmt.Printf("%-20s %-12d %-12s %d\n", world.World, len(world.Listings.Prices), cheapest, len(world.Listings.History))
	}
	fmt.Println(strings.Repeat("━", 60))

	for _, failed := range result.Failed {
		fmt.Printf("✗ %s: %v\n", failed.World, failed.Err)
	}

	if result.PartialFailure() {
		worldText := "world"
		if len(result.Failed) != 1 {
			worldText = "worlds"
		}
		fmt.Printf("\n%d %s could not be reached.\n", len(result.Failed), worldText)
	}
}

// cheapestPrice scans raw listing rows for the lowest PricePerUnit.
func cheapestPrice(prices []xivapi.Row) (int64, bool) {
	var best int64
	found := false
	for _, row := range prices {
		value, ok := row["PricePerUnit"].(float64)
		if !ok {
			continue
		}
		price := int64(value)
		if !found || price < best {
			best = price
			found = true
		}
	}
	return best, found
}
