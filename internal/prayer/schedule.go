package prayer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Engineered0/athan-server/internal/model"
)

// ErrInvalidSchedule is returned when one of the five prayer times is
// missing or cannot be parsed as an "HH:MM" time of day.
var ErrInvalidSchedule = errors.New("prayer: invalid schedule")

// Name identifies one of the five daily prayers.
type Name string

const (
	Fajr    Name = "Fajr"
	Dhuhr   Name = "Dhuhr"
	Asr     Name = "Asr"
	Maghrib Name = "Maghrib"
	Isha    Name = "Isha"
)

// Order is the fixed daily sequence. Isha wraps to the next day's Fajr.
var Order = [5]Name{Fajr, Dhuhr, Asr, Maghrib, Isha}

// Schedule holds the five prayer times for one calendar day as
// minutes since midnight. Construct it with ParseSchedule; the zero
// value is not usable.
type Schedule struct {
	minutes [5]int
	valid   bool
}

// ParseSchedule validates and converts a raw timings payload. Timezone
// suffixes like "05:30 (EDT)" are stripped before parsing.
func ParseSchedule(pt model.PrayerTimes) (Schedule, error) {
	raw := [5]string{pt.Fajr, pt.Dhuhr, pt.Asr, pt.Maghrib, pt.Isha}

	var s Schedule
	for i, v := range raw {
		m, err := parseMinutes(v)
		if err != nil {
			return Schedule{}, fmt.Errorf("%w: %s %q", ErrInvalidSchedule, Order[i], v)
		}
		s.minutes[i] = m
	}
	s.valid = true
	return s, nil
}

// Minutes returns the time of day for the given prayer as minutes
// since midnight.
func (s Schedule) Minutes(n Name) int {
	for i, name := range Order {
		if name == n {
			return s.minutes[i]
		}
	}
	return 0
}

func parseMinutes(v string) (int, error) {
	v = strings.TrimSpace(v)
	// drop suffixes such as " (EDT)"
	if i := strings.IndexByte(v, ' '); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("bad hour in %q", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad minute in %q", v)
	}
	return h*60 + m, nil
}
