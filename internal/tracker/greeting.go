package tracker

import "time"

// GreetingFor returns the time-of-day salutation: morning before
// noon, afternoon before 18:00, evening otherwise.
func GreetingFor(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
