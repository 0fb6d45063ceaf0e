// Package greeting produces human-readable greeting and farewell text.
package greeting

import (
	"fmt"
	"strings"
)

// Greeting produces greeting and farewell messages. It holds no state;
// the zero value is ready to use and safe for concurrent use.
type Greeting struct{}

// New returns a Greeting.
func New() Greeting {
	return Greeting{}
}

// Greet returns a greeting for name. The name is substituted verbatim,
// including the empty string.
func (Greeting) Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Farewell returns a farewell for name.
func (Greeting) Farewell(name string) string {
	return fmt.Sprintf("Goodbye, %s. Have a great day!", name)
}

// Personalized returns a greeting for name appropriate to timeOfDay.
// The label is matched case-insensitively against "morning", "afternoon"
// and "evening"; any other value, including the empty string, falls back
// to "Good day". Surrounding whitespace is not trimmed.
func (Greeting) Personalized(name, timeOfDay string) string {
	switch strings.ToLower(timeOfDay) {
	case "morning":
		return fmt.Sprintf("Good morning, %s", name)
	case "afternoon":
		return fmt.Sprintf("Good afternoon, %s", name)
	case "evening":
		return fmt.Sprintf("Good evening, %s", name)
	default:
		return fmt.Sprintf("Good day, %s", name)
	}
}

// PeriodForHour maps a 24-hour clock hour to a time-of-day label.
// Morning is 5am-12pm, afternoon 12pm-5pm, evening the rest of the night.
func PeriodForHour(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	default:
		return "evening"
	}
}
