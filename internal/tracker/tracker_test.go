package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engineered0/athan-server/internal/aladhan"
	"github.com/Engineered0/athan-server/internal/model"
	"github.com/Engineered0/athan-server/internal/prayer"
)

func validTimings() model.PrayerTimes {
	return model.PrayerTimes{
		Fajr:    "05:30",
		Dhuhr:   "13:00",
		Asr:     "16:30",
		Maghrib: "19:45",
		Isha:    "21:15",
	}
}

type stubProvider struct {
	timings model.PrayerTimes
	err     error
	release chan struct{} // when non-nil, Timings blocks until closed
}

func (s *stubProvider) Timings(ctx context.Context, city, country string, date time.Time, method aladhan.Method) (model.PrayerTimes, error) {
	if s.release != nil {
		<-s.release
	}
	return s.timings, s.err
}

func fixedClock(hour, min int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.August, 28, hour, min, 0, 0, time.UTC)
	}
}

func TestRefreshUpdatesSnapshot(t *testing.T) {
	trk := New(&stubProvider{timings: validTimings()}, "Toronto", "Canada", aladhan.MethodISNA)
	trk.SetClock(fixedClock(14, 0))

	trk.Refresh(context.Background())

	require.Eventually(t, func() bool {
		return trk.Snapshot().HasSchedule
	}, time.Second, 5*time.Millisecond)

	snap := trk.Snapshot()
	assert.Equal(t, "Toronto", snap.City)
	assert.Equal(t, prayer.Dhuhr, snap.State.Current)
	assert.Equal(t, prayer.Asr, snap.State.Next)
	assert.Equal(t, 9000, snap.State.SecondsUntilNext)
	assert.Equal(t, "05:30", snap.Timings.Fajr)
}

func TestRefreshFailureKeepsPreviousState(t *testing.T) {
	provider := &stubProvider{timings: validTimings()}
	trk := New(provider, "Toronto", "Canada", aladhan.MethodISNA)
	trk.SetClock(fixedClock(14, 0))

	trk.Refresh(context.Background())
	require.Eventually(t, func() bool {
		return trk.Snapshot().HasSchedule
	}, time.Second, 5*time.Millisecond)

	provider.err = assert.AnError
	trk.Refresh(context.Background())
	time.Sleep(50 * time.Millisecond)

	snap := trk.Snapshot()
	assert.True(t, snap.HasSchedule)
	assert.Equal(t, prayer.Dhuhr, snap.State.Current)
}

func TestStaleResponseDiscardedAfterLocationChange(t *testing.T) {
	provider := &stubProvider{timings: validTimings(), release: make(chan struct{})}
	trk := New(provider, "Toronto", "Canada", aladhan.MethodISNA)
	trk.SetClock(fixedClock(14, 0))

	// fetch for Toronto is in flight when the location changes
	trk.Refresh(context.Background())
	trk.SetLocation("Vancouver", "Canada")
	close(provider.release)

	time.Sleep(50 * time.Millisecond)

	snap := trk.Snapshot()
	assert.Equal(t, "Vancouver", snap.City)
	assert.False(t, snap.HasSchedule, "superseded response must not populate the new location")
}

func TestRunStopsOnCancel(t *testing.T) {
	trk := New(&stubProvider{timings: validTimings()}, "Toronto", "Canada", aladhan.MethodISNA)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		trk.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

func TestGreetingFor(t *testing.T) {
	cases := []struct {
		hour, min int
		want      string
	}{
		{0, 0, "Good morning"},
		{11, 59, "Good morning"},
		{12, 0, "Good afternoon"},
		{17, 59, "Good afternoon"},
		{18, 0, "Good evening"},
		{23, 59, "Good evening"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GreetingFor(fixedClock(tc.hour, tc.min)()), "%02d:%02d", tc.hour, tc.min)
	}
}
