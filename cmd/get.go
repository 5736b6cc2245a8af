package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/halcyorn/xivseek/xivapi"
)

var (
	getColumns  []string
	getLanguage string
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <index> <content-id>",
	Short: "Fetch a single piece of game content by index and ID",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringSliceVarP(&getColumns, "columns", "c", nil, "columns to return")
	getCmd.Flags().StringVarP(&getLanguage, "language", "l", "", "response language (en, fr, de, ja)")
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid content ID %q: must be a number", args[1])
	}

	row, err := client.IndexByID(context.Background(), args[0], id, xivapi.ContentOptions{
		Columns:  getColumns,
		Language: xivapi.Language(getLanguage),
	})
	if err != nil {
		return err
	}
	return printJSON(row)
}
