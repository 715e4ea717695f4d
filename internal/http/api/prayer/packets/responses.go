package packets

import "github.com/Engineered0/athan-server/internal/model"

// TimingsResponse is today's schedule for one city. Timings carries
// the raw 24-hour strings; Timings12 the 12-hour rendition clients
// show when the 24-hour toggle is off.
type TimingsResponse struct {
	City      string            `json:"city"`
	Country   string            `json:"country"`
	Date      string            `json:"date"`
	Method    int               `json:"method"`
	Timings   model.PrayerTimes `json:"timings"`
	Timings12 model.PrayerTimes `json:"timings12"`
}

// StateResponse is the derived prayer state at request time.
type StateResponse struct {
	City             string `json:"city"`
	Country          string `json:"country"`
	Current          string `json:"current"`
	Next             string `json:"next"`
	Countdown        string `json:"countdown"`
	SecondsUntilNext int    `json:"secondsUntilNext"`
	Greeting         string `json:"greeting,omitempty"`
}
