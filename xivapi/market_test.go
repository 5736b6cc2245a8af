package xivapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marketFixture(world string, price int) string {
	return fmt.Sprintf(`{
		"Prices": [{"PricePerUnit": %d, "Quantity": 1, "RetainerName": "%s Retainer"}],
		"History": [{"PricePerUnit": %d, "Quantity": 2}]
	}`, price, world, price-10)
}

func TestMarketByWorldsPreservesOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("max_history"))
		switch r.URL.Path {
		case "/market/Phoenix/item/24280":
			w.Write([]byte(marketFixture("Phoenix", 500)))
		case "/market/Odin/item/24280":
			w.Write([]byte(marketFixture("Odin", 450)))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	result, err := client.MarketByWorlds(context.Background(), 24280, []string{"Phoenix", "Odin"}, MarketOptions{MaxHistory: 25})
	require.NoError(t, err)
	require.Len(t, result.Worlds, 2)
	assert.Empty(t, result.Failed)
	assert.False(t, result.PartialFailure())
	assert.Equal(t, int64(24280), result.ItemID)

	assert.Equal(t, "Phoenix", result.Worlds[0].World)
	assert.Equal(t, "Odin", result.Worlds[1].World)

	require.Len(t, result.Worlds[0].Listings.Prices, 1)
	assert.Equal(t, float64(500), result.Worlds[0].Listings.Prices[0]["PricePerUnit"])
	assert.Equal(t, float64(450), result.Worlds[1].Listings.Prices[0]["PricePerUnit"])
	require.Len(t, result.Worlds[0].Listings.History, 1)
}

func TestMarketByWorldsPartialFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/market/Odin/") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(marketFixture("Phoenix", 500)))
	})

	result, err := client.MarketByWorlds(context.Background(), 24280, []string{"Phoenix", "Odin"}, MarketOptions{})
	require.NoError(t, err)
	assert.True(t, result.PartialFailure())

	require.Len(t, result.Worlds, 1)
	assert.Equal(t, "Phoenix", result.Worlds[0].World)

	require.Len(t, result.Failed, 1)
	assert.Equal(t, "Odin", result.Failed[0].World)

	var apiErr *APIError
	require.ErrorAs(t, result.Failed[0].Err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestMarketByWorldsTotalFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.MarketByWorlds(context.Background(), 24280, []string{"Phoenix", "Odin"}, MarketOptions{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestMarketByWorldsDeduplicates(t *testing.T) {
	var requests atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(marketFixture("Phoenix", 500)))
	})

	result, err := client.MarketByWorlds(context.Background(), 24280, []string{"Phoenix", "Phoenix"}, MarketOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Worlds, 1)
	assert.Equal(t, int64(1), requests.Load())
}

func TestMarketByWorldsValidation(t *testing.T) {
	var requests atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})
	ctx := context.Background()

	tooMany := make([]string, MaxMarketWorlds+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("World%d", i)
	}

	tests := []struct {
		name      string
		itemID    int64
		worlds    []string
		wantField string
	}{
		{name: "zero item id", itemID: 0, worlds: []string{"Phoenix"}, wantField: "item_id"},
		{name: "negative item id", itemID: -1, worlds: []string{"Phoenix"}, wantField: "item_id"},
		{name: "no worlds", itemID: 24280, worlds: nil, wantField: "worlds"},
		{name: "too many worlds", itemID: 24280, worlds: tooMany, wantField: "worlds"},
		{name: "blank world", itemID: 24280, worlds: []string{"Phoenix", " "}, wantField: "worlds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.MarketByWorlds(ctx, tt.itemID, tt.worlds, MarketOptions{})
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}

	assert.Equal(t, int64(0), requests.Load())
}

func TestMarketByDatacenter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/market/item/24280", r.URL.Path)
		assert.Equal(t, "Chaos", r.URL.Query().Get("dc"))
		assert.Equal(t, "10", r.URL.Query().Get("max_history"))
		w.Write([]byte(fmt.Sprintf(`{
			"Phoenix": %s,
			"Odin": %s
		}`, marketFixture("Phoenix", 500), marketFixture("Odin", 450))))
	})

	result, err := client.MarketByDatacenter(context.Background(), 24280, "Chaos", MarketOptions{MaxHistory: 10})
	require.NoError(t, err)
	require.Len(t, result.Worlds, 2)

	// Canonical sorted world order.
	assert.Equal(t, "Odin", result.Worlds[0].World)
	assert.Equal(t, "Phoenix", result.Worlds[1].World)
	assert.Equal(t, float64(450), result.Worlds[0].Listings.Prices[0]["PricePerUnit"])
}

func TestMarketByDatacenterValidation(t *testing.T) {
	var requests atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})
	ctx := context.Background()

	_, err := client.MarketByDatacenter(ctx, 24280, "", MarketOptions{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "datacenter", validationErr.Field)

	_, err = client.MarketByDatacenter(ctx, 0, "Chaos", MarketOptions{})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "item_id", validationErr.Field)

	assert.Equal(t, int64(0), requests.Load())
}

func TestWorldErrorMessage(t *testing.T) {
	err := WorldError{World: "Odin", Err: &APIError{StatusCode: 500, Message: "boom"}}
	assert.Contains(t, err.Error(), "Odin")
	assert.Contains(t, err.Error(), "boom")
}
