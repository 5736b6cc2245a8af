package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/halcyorn/xivseek/xivapi"
)

var (
	characterWorld    string
	characterPage     int
	characterLanguage string

	characterExtended  bool
	includeAll         bool
	includeAchieves    bool
	includeMinions     bool
	includeFriends     bool
	includeClassJobs   bool
	includeFC          bool
	includeFCMembers   bool
	includePvPTeamData bool
)

// characterCmd represents the character command
var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Look up characters on the Lodestone",
}

var characterSearchCmd = &cobra.Command{
	Use:   "search <forename> <surname>",
	Short: "Search for a character by name and world",
	Args:  cobra.ExactArgs(2),
	RunE:  runCharacterSearch,
}

var characterGetCmd = &cobra.Command{
	Use:   "get <lodestone-id>",
	Short: "Fetch a character by Lodestone ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCharacterGet,
}

func init() {
	rootCmd.AddCommand(characterCmd)
	characterCmd.AddCommand(characterSearchCmd)
	characterCmd.AddCommand(characterGetCmd)

	characterSearchCmd.Flags().StringVarP(&characterWorld, "world", "w", "", "world to search on (required)")
	characterSearchCmd.Flags().IntVar(&characterPage, "page", 0, "result page to fetch")
	characterSearchCmd.MarkFlagRequired("world")

	characterGetCmd.Flags().StringVarP(&characterLanguage, "language", "l", "", "response language (en, fr, de, ja)")
	characterGetCmd.Flags().BoolVar(&characterExtended, "extended", false, "resolve item and title IDs into full objects")
	characterGetCmd.Flags().BoolVar(&includeAll, "all", false, "include every optional data section")
	characterGetCmd.Flags().BoolVar(&includeAchieves, "achievements", false, "include achievements")
	characterGetCmd.Flags().BoolVar(&includeMinions, "minions-mounts", false, "include minions and mounts")
	characterGetCmd.Flags().BoolVar(&includeFriends, "friends", false, "include friends list")
	characterGetCmd.Flags().BoolVar(&includeClassJobs, "classjobs", false, "include class/job levels")
	characterGetCmd.Flags().BoolVar(&includeFC, "freecompany", false, "include free company")
	characterGetCmd.Flags().BoolVar(&includeFCMembers, "freecompany-members", false, "include free company members")
	characterGetCmd.Flags().BoolVar(&includePvPTeamData, "pvpteam", false, "include PvP team")
}

func runCharacterSearch(cmd *cobra.Command, args []string) error {
	page, err := client.CharacterSearch(context.Background(), characterWorld, args[0], args[1], characterPage)
	if err != nil {
		return err
	}
	return printSearchPage(page)
}

func runCharacterGet(cmd *cobra.Command, args []string) error {
	id, err := parseLodestoneID(args[0])
	if err != nil {
		return err
	}

	opts := xivapi.CharacterOptions{
		Extended:                  characterExtended,
		IncludeAchievements:       includeAll || includeAchieves,
		IncludeMinionsMounts:      includeAll || includeMinions,
		IncludeFriends:            includeAll || includeFriends,
		IncludeClassJobs:          includeAll || includeClassJobs,
		IncludeFreeCompany:        includeAll || includeFC,
		IncludeFreeCompanyMembers: includeAll || includeFCMembers,
		IncludePvPTeam:            includeAll || includePvPTeamData,
		Language:                  xivapi.Language(characterLanguage),
	}

	result, err := client.CharacterByID(context.Background(), id, opts)
	if err != nil {
		return err
	}
	return printJSON(result)
}
