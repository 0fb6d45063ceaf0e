package main

import (
	"fmt"

	"greeter/internal/greeting"

	"github.com/spf13/cobra"
)

var farewellCmd = &cobra.Command{
	Use:   "farewell [name]",
	Short: "Print a farewell",
	Long: `Print a farewell for the given name. Without a name, the configured
recipient is bid farewell.

Examples:
  greeter farewell
  greeter farewell Frank`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(greeting.New().Farewell(nameFromArgs(args)))
	},
}
