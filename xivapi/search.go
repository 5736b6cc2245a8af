package xivapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// IndexSearch searches the given game-data indexes for records matching name.
// At least one index is required; index names themselves are validated by
// the server, since XIVAPI adds indexes over time. Column selection, range
// filters, sorting and the matching algorithm come from opts.
func (c *Client) IndexSearch(ctx context.Context, name string, indexes []string, opts SearchOptions) (*SearchPage, error) {
	if name == "" {
		return nil, newValidationError("name", "search text is required")
	}
	if len(indexes) == 0 {
		return nil, newValidationError("indexes", `specify at least one index to search, e.g. ["Recipe"]`)
	}
	for _, index := range indexes {
		if strings.TrimSpace(index) == "" {
			return nil, newValidationError("indexes", "index names must not be empty")
		}
	}

	lang, err := validateLanguage(opts.Language)
	if err != nil {
		return nil, err
	}
	if opts.StringAlgo != "" && !opts.StringAlgo.Valid() {
		return nil, newValidationError("string_algo", fmt.Sprintf("%q is not a supported string matching algorithm", string(opts.StringAlgo)))
	}
	for _, f := range opts.Filters {
		if err := f.validate(); err != nil {
			return nil, err
		}
	}
	if opts.Page < 0 {
		return nil, newValidationError("page", "page must not be negative")
	}
	if opts.Limit < 0 {
		return nil, newValidationError("limit", "limit must not be negative")
	}

	params := url.Values{}
	params.Set("string", name)
	params.Set("indexes", joinUnique(indexes))
	params.Set("language", string(lang))
	if len(opts.Columns) > 0 {
		params.Set("columns", strings.Join(opts.Columns, ","))
	}
	if filters := FormatFilters(opts.Filters); filters != "" {
		params.Set("filters", filters)
	}
	if opts.StringAlgo != "" {
		params.Set("string_algo", string(opts.StringAlgo))
	}
	if opts.Sort != nil {
		params.Set("sort_field", opts.Sort.Field)
		if opts.Sort.Ascending {
			params.Set("sort_order", "asc")
		} else {
			params.Set("sort_order", "desc")
		}
	}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}

	var result SearchPage
	if err := c.getJSON(ctx, "/search", params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// IndexByID requests a single record from a game-data index. A missing
// record surfaces as an *APIError with status 404.
func (c *Client) IndexByID(ctx context.Context, index string, contentID int64, opts ContentOptions) (Row, error) {
	if index == "" {
		return nil, newValidationError("index", `specify an index to look up, e.g. "Item"`)
	}
	if contentID <= 0 {
		return nil, newValidationError("content_id", "must be a positive integer")
	}

	lang, err := validateLanguage(opts.Language)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("language", string(lang))
	if len(opts.Columns) > 0 {
		params.Set("columns", strings.Join(opts.Columns, ","))
	}

	var result Row
	if err := c.getJSON(ctx, fmt.Sprintf("/%s/%d", index, contentID), params, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// LoreSearch searches cutscene subtitles, quest dialog, item and achievement
// descriptions and other game text for the query.
func (c *Client) LoreSearch(ctx context.Context, query string, language Language) (*SearchPage, error) {
	if query == "" {
		return nil, newValidationError("query", "search text is required")
	}

	lang, err := validateLanguage(language)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("string", query)
	params.Set("language", string(lang))

	var result SearchPage
	if err := c.getJSON(ctx, "/lore", params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// joinUnique joins values with commas, dropping duplicates while keeping
// first-occurrence order so the parameter stays deterministic.
func joinUnique(values []string) string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return strings.Join(unique, ",")
}
