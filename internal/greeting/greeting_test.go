package greeting

import "testing"

func TestGreet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"with name", "foo", "Hello, foo!"},
		{"with another name", "Dave", "Hello, Dave!"},
		{"empty name", "", "Hello, !"},
		{"name with spaces", " foo ", "Hello,  foo !"},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := g.Greet(tt.input)
			if result != tt.expected {
				t.Errorf("Greet(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFarewell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"with name", "bar", "Goodbye, bar. Have a great day!"},
		{"with another name", "Frank", "Goodbye, Frank. Have a great day!"},
		{"empty name", "", "Goodbye, . Have a great day!"},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := g.Farewell(tt.input)
			if result != tt.expected {
				t.Errorf("Farewell(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPersonalized(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		timeOfDay string
		expected  string
	}{
		// Recognized periods
		{"morning", "baz", "morning", "Good morning, baz"},
		{"afternoon", "baz", "afternoon", "Good afternoon, baz"},
		{"evening", "baz", "evening", "Good evening, baz"},

		// Matching is case-insensitive
		{"uppercase morning", "baz", "MORNING", "Good morning, baz"},
		{"capitalized morning", "baz", "Morning", "Good morning, baz"},
		{"mixed case morning", "baz", "mOrNiNg", "Good morning, baz"},
		{"uppercase evening", "baz", "EVENING", "Good evening, baz"},
		{"mixed case afternoon", "baz", "AfterNoon", "Good afternoon, baz"},

		// Everything else falls back to "Good day"
		{"unknown period", "baz", "noon", "Good day, baz"},
		{"empty period", "baz", "", "Good day, baz"},
		{"night is not recognized", "baz", "night", "Good day, baz"},

		// Whitespace is not trimmed before matching
		{"leading space", "baz", " morning", "Good day, baz"},
		{"trailing space", "baz", "evening ", "Good day, baz"},

		// Name is substituted verbatim
		{"empty name", "", "morning", "Good morning, "},
		{"empty name fallback", "", "later", "Good day, "},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := g.Personalized(tt.input, tt.timeOfDay)
			if result != tt.expected {
				t.Errorf("Personalized(%q, %q) = %q, want %q", tt.input, tt.timeOfDay, result, tt.expected)
			}
		})
	}
}

func TestPeriodForHour(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		expected string
	}{
		// Morning: 5am-12pm
		{"5am morning start", 5, "morning"},
		{"8am mid morning", 8, "morning"},
		{"11am late morning", 11, "morning"},

		// Afternoon: 12pm-5pm
		{"12pm afternoon start", 12, "afternoon"},
		{"14pm mid afternoon", 14, "afternoon"},
		{"16pm late afternoon", 16, "afternoon"},

		// Evening: 5pm-5am
		{"17pm evening start", 17, "evening"},
		{"20pm night", 20, "evening"},
		{"23pm late night", 23, "evening"},
		{"0am midnight", 0, "evening"},
		{"3am early morning", 3, "evening"},
		{"4am pre-dawn", 4, "evening"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PeriodForHour(tt.hour)
			if result != tt.expected {
				t.Errorf("PeriodForHour(%d) = %q, want %q", tt.hour, result, tt.expected)
			}
		})
	}
}

func BenchmarkGreet(b *testing.B) {
	g := New()
	for i := 0; i < b.N; i++ {
		_ = g.Greet("Benchmark")
	}
}

func BenchmarkPersonalized(b *testing.B) {
	g := New()
	for i := 0; i < b.N; i++ {
		_ = g.Personalized("Benchmark", "MORNING")
	}
}
