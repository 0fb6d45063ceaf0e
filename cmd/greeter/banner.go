package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// printScheduleBanner announces the schedule loop before the first tick.
// Only printed when stdout is a terminal so piped output stays clean.
func printScheduleBanner(expr string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	fmt.Printf("Scheduling greetings (%s). Press Ctrl-C to stop.\n\n", expr)
}
