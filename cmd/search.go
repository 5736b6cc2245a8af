package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyorn/xivseek/filter"
	"github.com/halcyorn/xivseek/xivapi"
)

var (
	searchIndexes  []string
	searchColumns  []string
	searchFilters  string
	searchAlgo     string
	searchLanguage string
	searchPage     int
	searchLimit    int
	searchSort     string
	searchDesc     bool
	searchWhere    string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search game content indexes",
	Long: `Search one or more game content indexes (Item, Recipe, Action, ...) by
name. Server-side filters support numeric range comparisons; use --where
for arbitrary boolean expressions evaluated locally against the results.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringSliceVarP(&searchIndexes, "index", "i", nil, "content index to search, repeatable (required)")
	searchCmd.Flags().StringSliceVarP(&searchColumns, "columns", "c", nil, "columns to return")
	searchCmd.Flags().StringVarP(&searchFilters, "filter", "f", "", `server-side filters, e.g. "LevelItem>=50;LevelItem<=100"`)
	searchCmd.Flags().StringVar(&searchAlgo, "algo", "", "string matching algorithm (fuzzy, wildcard, prefix, ...)")
	searchCmd.Flags().StringVarP(&searchLanguage, "language", "l", "", "response language (en, fr, de, ja)")
	searchCmd.Flags().IntVar(&searchPage, "page", 0, "result page to fetch")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum results per page")
	searchCmd.Flags().StringVar(&searchSort, "sort", "", "column to sort by")
	searchCmd.Flags().BoolVar(&searchDesc, "desc", false, "sort descending")
	searchCmd.Flags().StringVar(&searchWhere, "where", "", `local filter expression, e.g. 'LevelItem > 50 && contains(Name, "ingot")'`)
	searchCmd.MarkFlagRequired("index")
}

func runSearch(cmd *cobra.Command, args []string) error {
	filters, err := xivapi.ParseFilters(searchFilters)
	if err != nil {
		return err
	}

	opts := xivapi.SearchOptions{
		Columns:    searchColumns,
		Filters:    filters,
		StringAlgo: xivapi.StringAlgo(searchAlgo),
		Language:   xivapi.Language(searchLanguage),
		Page:       searchPage,
		Limit:      searchLimit,
	}
	if searchSort != "" {
		opts.Sort = &xivapi.Sort{Field: searchSort, Ascending: !searchDesc}
	}

	// Compile the local filter before spending a network call
	var rowFilter *filter.RowFilter
	if searchWhere != "" {
		rowFilter, err = filter.Compile(searchWhere)
		if err != nil {
			return err
		}
	}

	page, err := client.IndexSearch(context.Background(), args[0], searchIndexes, opts)
	if err != nil {
		return err
	}

	if rowFilter != nil {
		matched, err := rowFilter.Apply(page.Results)
		if err != nil {
			logger.Warn().Err(err).Str("expression", rowFilter.Expression()).Msg("Some rows could not be evaluated")
		}
		fmt.Printf("Local filter matched %d of %d results\n", len(matched), len(page.Results))
		page.Results = matched
	}

	return printSearchPage(page)
}
