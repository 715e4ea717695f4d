package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PrayerTimes carries the five daily prayer times as "HH:MM" strings,
// exactly as the Aladhan API returns them (possibly with a timezone
// suffix such as "05:30 (EDT)").
type PrayerTimes struct {
	Fajr    string `json:"Fajr"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// Format12Hour converts a 24-hour "HH:MM" string to "hh:MM AM/PM".
// Input that does not look like a time is returned unchanged.
func Format12Hour(t string) string {
	parts := strings.SplitN(strings.TrimSpace(t), ":", 2)
	if len(parts) != 2 {
		return t
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return t
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, parts[1], period)
}
