package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the online status of every world",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		worlds, err := client.WorldStatus(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(strings.Repeat("━", 60))
		fmt.Printf("%-20s %-15s %s\n", "WORLD", "STATUS", "CHARACTER CREATION")
		fmt.Println(strings.Repeat("━", 60))
		for _, world := range worlds {
			fmt.Printf("%-20v %-15v %v\n", world["Name"], world["Status"], world["Category"])
		}
		fmt.Println(strings.Repeat("━", 60))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
