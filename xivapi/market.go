package xivapi

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// MaxMarketWorlds is the most worlds a single market lookup may span
	MaxMarketWorlds = 15

	defaultMarketConcurrency = 4
)

// MarketOptions configures market lookups
type MarketOptions struct {
	// MaxHistory caps the number of sale history records per world; zero
	// leaves the server default
	MaxHistory int
	// Concurrency caps the number of per-world requests in flight at once
	Concurrency int
}

// MarketListings holds the current sale listings and sale history for an
// item on a single world.
type MarketListings struct {
	Prices  []Row `json:"Prices"`
	History []Row `json:"History"`
}

// WorldMarket pairs a world name with its market listings
type WorldMarket struct {
	World    string
	Listings MarketListings
}

// WorldError records a failed per-world market lookup
type WorldError struct {
	World string
	Err   error
}

// Error implements the error interface
func (e WorldError) Error() string {
	return fmt.Sprintf("market lookup failed for world %s: %v", e.World, e.Err)
}

// Unwrap returns the underlying cause
func (e WorldError) Unwrap() error {
	return e.Err
}

// MarketResult aggregates market data across worlds. Worlds that failed are
// reported in Failed instead of aborting the whole lookup, so callers can
// distinguish partial from total failure.
type MarketResult struct {
	ItemID int64
	Worlds []WorldMarket
	Failed []WorldError
}

// PartialFailure reports whether some but not all worlds failed
func (r *MarketResult) PartialFailure() bool {
	return len(r.Failed) > 0 && len(r.Worlds) > 0
}

// MarketByWorlds requests current sale listings and sale history for an item
// on the given worlds, one request per world issued concurrently. Results
// preserve the input world order. A non-nil error is returned only when
// every world fails; individual failures are reported in MarketResult.Failed.
func (c *Client) MarketByWorlds(ctx context.Context, itemID int64, worlds []string, opts MarketOptions) (*MarketResult, error) {
	if itemID <= 0 {
		return nil, newValidationError("item_id", "must be a positive integer")
	}

	worlds = uniqueWorlds(worlds)
	if len(worlds) == 0 || len(worlds) > MaxMarketWorlds {
		return nil, newValidationError("worlds", fmt.Sprintf("provide between 1 and %d world names", MaxMarketWorlds))
	}
	for _, world := range worlds {
		if strings.TrimSpace(world) == "" {
			return nil, newValidationError("worlds", "world names must not be empty")
		}
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultMarketConcurrency
	}

	type worldOutcome struct {
		listings *MarketListings
		err      error
	}

	outcomes := make([]worldOutcome, len(worlds))

	// Failures are recorded per world instead of returned, so the group
	// context is never cancelled by a single bad world.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, world := range worlds {
		g.Go(func() error {
			listings, err := c.marketWorld(gctx, world, itemID, opts.MaxHistory)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("world", world).
					Int64("item_id", itemID).
					Msg("Market lookup failed for world")
				outcomes[i] = worldOutcome{err: err}
				return nil
			}
			outcomes[i] = worldOutcome{listings: listings}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &MarketResult{ItemID: itemID}
	for i, world := range worlds {
		if outcomes[i].err != nil {
			result.Failed = append(result.Failed, WorldError{World: world, Err: outcomes[i].err})
			continue
		}
		result.Worlds = append(result.Worlds, WorldMarket{World: world, Listings: *outcomes[i].listings})
	}

	if len(result.Worlds) == 0 {
		return nil, fmt.Errorf("market lookup failed for all %d worlds: %w", len(worlds), result.Failed[0].Err)
	}

	return result, nil
}

// MarketByDatacenter requests current sale listings and sale history for an
// item on every world of the given datacenter. The single multi-world
// response is flattened into per-world results in canonical (sorted) world
// name order.
func (c *Client) MarketByDatacenter(ctx context.Context, itemID int64, datacenter string, opts MarketOptions) (*MarketResult, error) {
	if itemID <= 0 {
		return nil, newValidationError("item_id", "must be a positive integer")
	}
	if datacenter == "" {
		return nil, newValidationError("datacenter", `provide a datacenter name, e.g. "Chaos"`)
	}

	params := url.Values{}
	params.Set("dc", datacenter)
	if opts.MaxHistory > 0 {
		params.Set("max_history", strconv.Itoa(opts.MaxHistory))
	}

	var byWorld map[string]MarketListings
	if err := c.getJSON(ctx, fmt.Sprintf("/market/item/%d", itemID), params, &byWorld); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(byWorld))
	for world := range byWorld {
		names = append(names, world)
	}
	sort.Strings(names)

	result := &MarketResult{ItemID: itemID}
	for _, world := range names {
		result.Worlds = append(result.Worlds, WorldMarket{World: world, Listings: byWorld[world]})
	}

	return result, nil
}

// marketWorld fetches the market board for an item on a single world.
func (c *Client) marketWorld(ctx context.Context, world string, itemID int64, maxHistory int) (*MarketListings, error) {
	params := url.Values{}
	if maxHistory > 0 {
		params.Set("max_history", strconv.Itoa(maxHistory))
	}

	var listings MarketListings
	endpoint := fmt.Sprintf("/market/%s/item/%d", url.PathEscape(world), itemID)
	if err := c.getJSON(ctx, endpoint, params, &listings); err != nil {
		return nil, err
	}

	return &listings, nil
}

// uniqueWorlds drops duplicate world names while keeping first-occurrence order.
func uniqueWorlds(worlds []string) []string {
	seen := make(map[string]struct{}, len(worlds))
	unique := make([]string, 0, len(worlds))
	for _, world := range worlds {
		if _, ok := seen[world]; ok {
			continue
		}
		seen[world] = struct{}{}
		unique = append(unique, world)
	}
	return unique
}
