// Package xivapi provides a client for the XIVAPI game-data and
// player-lookup service.
//
// XIVAPI (https://xivapi.com) exposes FFXIV game data, Lodestone player
// lookups and market board data over HTTP/JSON. This package maps each
// endpoint group onto a typed client method, validates arguments before any
// network round trip, and classifies failures into structured error types.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API client; holds only read-only configuration and is safe
//     for concurrent use
//   - Types: locale and algorithm enums, filter/sort values, response shapes
//   - API: interface definition for testability
//   - Errors: structured error types for classification
//
// # Usage
//
// Create a client with your API key (empty for anonymous reduced-quota
// access):
//
//	logger := zerolog.New(os.Stderr)
//	client := xivapi.NewClient("your-api-key", logger,
//		xivapi.WithTimeout(15*time.Second),
//	)
//
//	ctx := context.Background()
//	page, err := client.IndexSearch(ctx, "grilled dodo", []string{"Recipe"}, xivapi.SearchOptions{
//		Columns: []string{"ID", "Name", "Icon"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Every method either returns a well-formed result or an error of one of
// four kinds:
//
//   - ValidationError: bad input, rejected before any network call
//   - APIError: non-success response status, with code and remote message
//   - DecodeError: response body was not the expected JSON shape
//   - TransportError: network-level failure, wrapping the original cause
//
// APIError includes helper methods for classification:
//
//	var apiErr *xivapi.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// handle missing record
//	}
//
// No retries, timeouts beyond the HTTP client's own, or caching are
// performed; callers needing resilience layer their own.
package xivapi
