package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/halcyorn/xivseek/xivapi"
)

var loreLanguage string

// loreCmd represents the lore command
var loreCmd = &cobra.Command{
	Use:   "lore <query>",
	Short: "Search quest dialogue, item descriptions and other game text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := client.LoreSearch(context.Background(), args[0], xivapi.Language(loreLanguage))
		if err != nil {
			return err
		}
		return printSearchPage(page)
	},
}

func init() {
	rootCmd.AddCommand(loreCmd)

	loreCmd.Flags().StringVarP(&loreLanguage, "language", "l", "", "response language (en, fr, de, ja)")
}
