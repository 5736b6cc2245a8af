package xivapi

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSearchParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "iron ingot", query.Get("string"))
		assert.Equal(t, "Item,Recipe", query.Get("indexes"))
		assert.Equal(t, "ID,Name,Icon", query.Get("columns"))
		assert.Equal(t, "LevelItem>=50;LevelItem<=100", query.Get("filters"))
		assert.Equal(t, "fuzzy", query.Get("string_algo"))
		assert.Equal(t, "de", query.Get("language"))
		assert.Equal(t, "LevelItem", query.Get("sort_field"))
		assert.Equal(t, "desc", query.Get("sort_order"))
		assert.Equal(t, "3", query.Get("page"))
		assert.Equal(t, "50", query.Get("limit"))
		w.Write([]byte(`{"Pagination": {"Page": 3}, "Results": [{"ID": 1675, "Name": "Iron Ingot"}]}`))
	})

	// Duplicate index should be dropped while preserving order.
	page, err := client.IndexSearch(context.Background(), "iron ingot", []string{"Item", "Recipe", "Item"}, SearchOptions{
		Columns: []string{"ID", "Name", "Icon"},
		Filters: []Filter{
			{Field: "LevelItem", Comparison: ComparisonGTE, Value: 50},
			{Field: "LevelItem", Comparison: ComparisonLTE, Value: 100},
		},
		Sort:       &Sort{Field: "LevelItem", Ascending: false},
		StringAlgo: AlgoFuzzy,
		Language:   LangGerman,
		Page:       3,
		Limit:      50,
	})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Iron Ingot", page.Results[0]["Name"])
}

func TestIndexSearchOmitsUnsetParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "en", query.Get("language"))
		for _, param := range []string{"columns", "filters", "string_algo", "sort_field", "sort_order", "page", "limit"} {
			assert.False(t, query.Has(param), "unexpected %s param", param)
		}
		w.Write([]byte(`{"Pagination": {}, "Results": []}`))
	})

	_, err := client.IndexSearch(context.Background(), "iron ingot", []string{"Item"}, SearchOptions{})
	require.NoError(t, err)
}

func TestIndexSearchValidation(t *testing.T) {
	var requests atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})
	ctx := context.Background()

	tests := []struct {
		name      string
		search    string
		indexes   []string
		opts      SearchOptions
		wantField string
	}{
		{name: "empty name", indexes: []string{"Item"}, wantField: "name"},
		{name: "no indexes", search: "iron", indexes: nil, wantField: "indexes"},
		{name: "blank index", search: "iron", indexes: []string{"Item", " "}, wantField: "indexes"},
		{name: "bad algo", search: "iron", indexes: []string{"Item"}, opts: SearchOptions{StringAlgo: "soundex"}, wantField: "string_algo"},
		{name: "bad language", search: "iron", indexes: []string{"Item"}, opts: SearchOptions{Language: "pt"}, wantField: "language"},
		{name: "negative page", search: "iron", indexes: []string{"Item"}, opts: SearchOptions{Page: -1}, wantField: "page"},
		{name: "negative limit", search: "iron", indexes: []string{"Item"}, opts: SearchOptions{Limit: -1}, wantField: "limit"},
		{
			name: "bad filter comparison", search: "iron", indexes: []string{"Item"},
			opts:      SearchOptions{Filters: []Filter{{Field: "LevelItem", Comparison: "like", Value: 1}}},
			wantField: "filter",
		},
		{
			name: "empty filter field", search: "iron", indexes: []string{"Item"},
			opts:      SearchOptions{Filters: []Filter{{Comparison: ComparisonGT, Value: 1}}},
			wantField: "filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.IndexSearch(ctx, tt.search, tt.indexes, tt.opts)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}

	assert.Equal(t, int64(0), requests.Load())
}

func TestFilterRoundTrip(t *testing.T) {
	filters := []Filter{
		{Field: "LevelItem", Comparison: ComparisonGTE, Value: 50},
		{Field: "LevelItem", Comparison: ComparisonLTE, Value: 100},
		{Field: "ClassJobCategory.ID", Comparison: ComparisonGT, Value: 0},
		{Field: "Rarity", Comparison: ComparisonLT, Value: 4},
	}

	serialized := FormatFilters(filters)
	assert.Equal(t, "LevelItem>=50;LevelItem<=100;ClassJobCategory.ID>0;Rarity<4", serialized)

	parsed, err := ParseFilters(serialized)
	require.NoError(t, err)
	assert.Equal(t, filters, parsed)
}

func TestParseFilters(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		parsed, err := ParseFilters("  ")
		require.NoError(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("whitespace tolerated", func(t *testing.T) {
		parsed, err := ParseFilters(" LevelItem >= 50 ; Rarity < 4 ")
		require.NoError(t, err)
		assert.Equal(t, []Filter{
			{Field: "LevelItem", Comparison: ComparisonGTE, Value: 50},
			{Field: "Rarity", Comparison: ComparisonLT, Value: 4},
		}, parsed)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, input := range []string{"LevelItem=50", "LevelItem>fifty", ">=50", "LevelItem"} {
			_, err := ParseFilters(input)
			require.Error(t, err, "input %q", input)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		}
	})
}

func TestIndexByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Item/1675", r.URL.Path)
		assert.Equal(t, "ID,Name,Description", r.URL.Query().Get("columns"))
		assert.Equal(t, "ja", r.URL.Query().Get("language"))
		w.Write([]byte(`{"ID": 1675, "Name": "Iron Ingot"}`))
	})

	row, err := client.IndexByID(context.Background(), "Item", 1675, ContentOptions{
		Columns:  []string{"ID", "Name", "Description"},
		Language: LangJapanese,
	})
	require.NoError(t, err)
	assert.Equal(t, "Iron Ingot", row["Name"])
}

func TestIndexByIDValidation(t *testing.T) {
	var requests atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})
	ctx := context.Background()

	_, err := client.IndexByID(ctx, "", 1675, ContentOptions{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "index", validationErr.Field)

	_, err = client.IndexByID(ctx, "Item", 0, ContentOptions{})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "content_id", validationErr.Field)

	assert.Equal(t, int64(0), requests.Load())
}

func TestLoreSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lore", r.URL.Path)
		assert.Equal(t, "mother miounne", r.URL.Query().Get("string"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		w.Write([]byte(`{"Pagination": {"Page": 1}, "Results": [{"Text": "..."}]}`))
	})

	page, err := client.LoreSearch(context.Background(), "mother miounne", "")
	require.NoError(t, err)
	assert.Len(t, page.Results, 1)

	_, err = client.LoreSearch(context.Background(), "", LangEnglish)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
