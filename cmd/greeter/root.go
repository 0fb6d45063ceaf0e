package main

import (
	"fmt"

	"greeter/internal/config"
	"greeter/internal/greeting"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "greeter",
	Short: "Produce greeting and farewell messages",
	Long: `Greeter produces greeting and farewell messages, optionally tailored
to the time of day.

I can help you with:

  hello      Print a greeting
  farewell   Print a farewell
  schedule   Print greetings on a cron schedule

Run with no arguments to print the sample output.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, line := range sampleLines() {
			fmt.Println(line)
		}
	},
}

// sampleLines returns the three lines printed by a bare invocation,
// exercising each message kind once.
func sampleLines() []string {
	g := greeting.New()
	return []string{
		g.Greet("foo"),
		g.Farewell("bar"),
		g.Personalized("baz", "morning"),
	}
}

// nameFromArgs returns the explicit name argument, or the configured
// recipient when none was given.
func nameFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.GetRecipient()
}

func init() {
	rootCmd.AddCommand(helloCmd)
	rootCmd.AddCommand(farewellCmd)
	rootCmd.AddCommand(scheduleCmd)
}
