package prayer

import (
	"fmt"
	"time"
)

// State is the derived prayer state at a single instant: the active
// prayer window, the prayer that starts next, and the whole seconds
// remaining until it does.
type State struct {
	Current          Name `json:"current"`
	Next             Name `json:"next"`
	SecondsUntilNext int  `json:"secondsUntilNext"`
}

// ComputeState determines the current and next prayer for the given
// wall-clock instant. The comparison runs at minute granularity: the
// exact moment a prayer's time is reached counts as that prayer having
// started, so its window opens on the inclusive left edge.
//
// After Isha the current prayer stays Isha and the countdown targets
// Fajr of the following day.
func ComputeState(s Schedule, now time.Time) (State, error) {
	if !s.valid {
		return State{}, ErrInvalidSchedule
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	current, next := Isha, Fajr
	for i, n := range Order {
		if nowMinutes < s.minutes[i] {
			next = n
			if i == 0 {
				current = Order[len(Order)-1]
			} else {
				current = Order[i-1]
			}
			break
		}
	}

	nextMinutes := s.Minutes(next)
	target := time.Date(now.Year(), now.Month(), now.Day(),
		nextMinutes/60, nextMinutes%60, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}

	secs := int(target.Sub(now) / time.Second)
	if secs < 0 {
		secs = 0
	}

	return State{Current: current, Next: next, SecondsUntilNext: secs}, nil
}

// Countdown renders the remaining time as zero-padded "HH:MM:SS".
// Hours only exceed 24 when the gap spans more than a day.
func (s State) Countdown() string {
	h := s.SecondsUntilNext / 3600
	m := (s.SecondsUntilNext % 3600) / 60
	sec := s.SecondsUntilNext % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}
