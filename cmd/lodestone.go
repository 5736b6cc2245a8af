package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/halcyorn/xivseek/xivapi"
)

var (
	lodestoneWorld string
	lodestonePage  int

	fcExtended       bool
	fcIncludeMembers bool
)

// freecompanyCmd represents the freecompany command
var freecompanyCmd = &cobra.Command{
	Use:   "freecompany",
	Short: "Look up free companies on the Lodestone",
}

var freecompanySearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search for a free company by name and world",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := client.FreeCompanySearch(context.Background(), lodestoneWorld, args[0], lodestonePage)
		if err != nil {
			return err
		}
		return printSearchPage(page)
	},
}

var freecompanyGetCmd = &cobra.Command{
	Use:   "get <lodestone-id>",
	Short: "Fetch a free company by Lodestone ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseLodestoneID(args[0])
		if err != nil {
			return err
		}
		result, err := client.FreeCompanyByID(context.Background(), id, xivapi.FreeCompanyOptions{
			Extended:       fcExtended,
			IncludeMembers: fcIncludeMembers,
		})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

// linkshellCmd represents the linkshell command
var linkshellCmd = &cobra.Command{
	Use:   "linkshell",
	Short: "Look up linkshells on the Lodestone",
}

var linkshellSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search for a linkshell by name and world",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := client.LinkshellSearch(context.Background(), lodestoneWorld, args[0], lodestonePage)
		if err != nil {
			return err
		}
		return printSearchPage(page)
	},
}

var linkshellGetCmd = &cobra.Command{
	Use:   "get <lodestone-id>",
	Short: "Fetch a linkshell by Lodestone ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseLodestoneID(args[0])
		if err != nil {
			return err
		}
		result, err := client.LinkshellByID(context.Background(), id)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

// pvpteamCmd represents the pvpteam command
var pvpteamCmd = &cobra.Command{
	Use:   "pvpteam",
	Short: "Look up PvP teams on the Lodestone",
}

var pvpteamSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search for a PvP team by name and world",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := client.PvPTeamSearch(context.Background(), lodestoneWorld, args[0], lodestonePage)
		if err != nil {
			return err
		}
		return printSearchPage(page)
	},
}

var pvpteamGetCmd = &cobra.Command{
	Use:   "get <lodestone-id>",
	Short: "Fetch a PvP team by Lodestone ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseLodestoneID(args[0])
		if err != nil {
			return err
		}
		result, err := client.PvPTeamByID(context.Background(), id)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	for _, parent := range []*cobra.Command{freecompanyCmd, linkshellCmd, pvpteamCmd} {
		rootCmd.AddCommand(parent)
	}

	for _, search := range []*cobra.Command{freecompanySearchCmd, linkshellSearchCmd, pvpteamSearchCmd} {
		search.Flags().StringVarP(&lodestoneWorld, "world", "w", "", "world to search on (required)")
		search.Flags().IntVar(&lodestonePage, "page", 0, "result page to fetch")
		search.MarkFlagRequired("world")
	}

	freecompanyCmd.AddCommand(freecompanySearchCmd)
	freecompanyCmd.AddCommand(freecompanyGetCmd)
	linkshellCmd.AddCommand(linkshellSearchCmd)
	linkshellCmd.AddCommand(linkshellGetCmd)
	pvpteamCmd.AddCommand(pvpteamSearchCmd)
	pvpteamCmd.AddCommand(pvpteamGetCmd)

	freecompanyGetCmd.Flags().BoolVar(&fcExtended, "extended", false, "resolve IDs into full objects")
	freecompanyGetCmd.Flags().BoolVar(&fcIncludeMembers, "members", false, "include the member roster")
}

func parseLodestoneID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid lodestone ID %q: must be a number", arg)
	}
	return id, nil
}
