package main

import (
	"fmt"
	"time"

	"greeter/internal/greeting"

	"github.com/spf13/cobra"
)

var (
	helloTime string
	helloNow  bool
)

var helloCmd = &cobra.Command{
	Use:   "hello [name]",
	Short: "Print a greeting",
	Long: `Print a greeting for the given name. Without a name, the configured
recipient is greeted.

Examples:
  greeter hello
  greeter hello Frank
  greeter hello Frank --time evening
  greeter hello --now`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := nameFromArgs(args)
		g := greeting.New()

		switch {
		case helloNow:
			fmt.Println(g.Personalized(name, greeting.PeriodForHour(time.Now().Hour())))
		case helloTime != "":
			fmt.Println(g.Personalized(name, helloTime))
		default:
			fmt.Println(g.Greet(name))
		}
	},
}

func init() {
	helloCmd.Flags().StringVar(&helloTime, "time", "", "Time-of-day label (morning, afternoon, evening)")
	helloCmd.Flags().BoolVar(&helloNow, "now", false, "Derive the time of day from the clock")
}
