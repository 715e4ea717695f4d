// Package tracker drives the periodic recomputation of prayer state
// for one tracked location. It is the timer adapter around the pure
// engine in internal/prayer: a one-second tick recomputes the state,
// a sixty-second tick refreshes the schedule from the provider, and a
// sixty-second tick updates the greeting.
package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Engineered0/athan-server/internal/aladhan"
	"github.com/Engineered0/athan-server/internal/model"
	"github.com/Engineered0/athan-server/internal/prayer"
)

// Provider is the slice of the Aladhan client the tracker needs.
type Provider interface {
	Timings(ctx context.Context, city, country string, date time.Time, method aladhan.Method) (model.PrayerTimes, error)
}

// Snapshot is a point-in-time copy of the tracked state, safe to hand
// to handlers.
type Snapshot struct {
	City        string
	Country     string
	Greeting    string
	Timings     model.PrayerTimes
	State       prayer.State
	HasSchedule bool
}

// Tracker owns the mutable state the UI used to keep in component
// state: the tracked location, the last fetched schedule, and the
// derived prayer state.
type Tracker struct {
	provider Provider
	method   aladhan.Method
	clock    func() time.Time

	mu       sync.Mutex
	city     string
	country  string
	seq      uint64
	timings  model.PrayerTimes
	schedule prayer.Schedule
	state    prayer.State
	greeting string
	loaded   bool
}

func New(provider Provider, city, country string, method aladhan.Method) *Tracker {
	t := &Tracker{
		provider: provider,
		method:   method,
		clock:    time.Now,
		city:     city,
		country:  country,
	}
	t.greeting = GreetingFor(t.clock())
	return t
}

// SetClock replaces the wall clock, for tests.
func (t *Tracker) SetClock(clock func() time.Time) {
	t.clock = clock
}

// SetLocation switches the tracked city. The sequence number advances
// so that responses still in flight for the previous location are
// discarded instead of racing the new one.
func (t *Tracker) SetLocation(city, country string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.city = city
	t.country = country
	t.seq++
	t.loaded = false
}

// Run blocks until ctx is cancelled, driving the three tickers. All
// of them stop on cancellation so nothing acts on stale state after
// teardown.
func (t *Tracker) Run(ctx context.Context) {
	t.Refresh(ctx)

	stateTicker := time.NewTicker(time.Second)
	defer stateTicker.Stop()
	refreshTicker := time.NewTicker(time.Minute)
	defer refreshTicker.Stop()
	greetingTicker := time.NewTicker(time.Minute)
	defer greetingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stateTicker.C:
			t.recompute()
		case <-refreshTicker.C:
			t.Refresh(ctx)
		case <-greetingTicker.C:
			t.mu.Lock()
			t.greeting = GreetingFor(t.clock())
			t.mu.Unlock()
		}
	}
}

// Refresh fetches the schedule for the tracked location in the
// background. A response whose sequence number no longer matches the
// tracker's is dropped, so out-of-order resolutions never regress the
// visible state.
func (t *Tracker) Refresh(ctx context.Context) {
	t.mu.Lock()
	seq := t.seq
	city, country := t.city, t.country
	t.mu.Unlock()

	go func() {
		timings, err := t.provider.Timings(ctx, city, country, t.clock(), t.method)
		if err != nil {
			log.Error().Err(err).Str("city", city).Msg("failed to refresh prayer schedule")
			return
		}
		schedule, err := prayer.ParseSchedule(timings)
		if err != nil {
			log.Error().Err(err).Str("city", city).Msg("provider returned an unusable schedule")
			return
		}

		t.mu.Lock()
		defer t.mu.Unlock()
		if t.seq != seq {
			log.Debug().Str("city", city).Msg("dropping superseded schedule response")
			return
		}
		t.timings = timings
		t.schedule = schedule
		t.loaded = true
		if state, err := prayer.ComputeState(schedule, t.clock()); err == nil {
			t.state = state
		}
	}()
}

func (t *Tracker) recompute() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.loaded {
		return
	}
	state, err := prayer.ComputeState(t.schedule, t.clock())
	if err != nil {
		log.Error().Err(err).Msg("prayer state recompute failed")
		return
	}
	t.state = state
}

// Snapshot returns a copy of the current tracked state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		City:        t.city,
		Country:     t.country,
		Greeting:    t.greeting,
		Timings:     t.timings,
		State:       t.state,
		HasSchedule: t.loaded,
	}
}
