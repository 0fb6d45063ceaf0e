package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greeter/internal/config"
	"greeter/internal/greeting"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var scheduleCron string

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print greetings on a cron schedule",
	Long: `Run in the foreground and print a time-appropriate greeting for the
configured recipient on each tick of the cron expression. Stop with Ctrl-C.

Examples:
  greeter schedule
  greeter schedule --cron "*/5 * * * *"`,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleCron, "cron", "", "Cron expression (defaults to the configured one)")
}

// scheduleExpr returns the cron expression to run: the --cron flag when set,
// otherwise the configured default.
func scheduleExpr() string {
	if scheduleCron != "" {
		return scheduleCron
	}
	return config.GetScheduleCron()
}

// validateCron rejects malformed expressions before the loop starts.
func validateCron(expr string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	expr := scheduleExpr()
	if err := validateCron(expr); err != nil {
		return err
	}

	name := config.GetRecipient()
	g := greeting.New()

	printScheduleBanner(expr)

	c := cron.New()
	if _, err := c.AddFunc(expr, func() {
		fmt.Println(g.Personalized(name, greeting.PeriodForHour(time.Now().Hour())))
	}); err != nil {
		return fmt.Errorf("failed to schedule greeting: %w", err)
	}
	c.Start()

	// Block until asked to stop
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	c.Stop()
	return nil
}
