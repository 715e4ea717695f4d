package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Engineered0/athan-server/internal/aladhan"
	"github.com/Engineered0/athan-server/internal/http/api"
	"github.com/Engineered0/athan-server/internal/http/api/prayer/packets"
	"github.com/Engineered0/athan-server/internal/model"
	"github.com/Engineered0/athan-server/internal/prayer"
	"github.com/Engineered0/athan-server/internal/redis"
	"github.com/Engineered0/athan-server/internal/tracker"
)

const timingsCacheTTL = time.Minute

type PrayerController struct {
	provider       tracker.Provider
	tracker        *tracker.Tracker
	defaultCountry string
	now            func() time.Time
}

func NewPrayerController(provider tracker.Provider, trk *tracker.Tracker, defaultCountry string) *PrayerController {
	return &PrayerController{
		provider:       provider,
		tracker:        trk,
		defaultCountry: defaultCountry,
		now:            time.Now,
	}
}

// PrayerModule mounts the timings and derived-state endpoints.
func PrayerModule(provider tracker.Provider, trk *tracker.Tracker, defaultCountry string) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		ctl := NewPrayerController(provider, trk, defaultCountry)
		c.Group.GET("/prayer/timings", api.ResolveEndpoint(ctl.prayerTimings))
		c.Group.GET("/prayer/state", api.ResolveEndpoint(ctl.prayerState))
	})
}

// GET /api/prayer/timings?city=&country=&method=
func (p *PrayerController) prayerTimings(ctx *gin.Context) (any, *api.Error) {
	city := ctx.Query("city")
	if city == "" {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "City is required"}
	}
	country := ctx.Query("country")
	if country == "" {
		country = p.defaultCountry
	}

	method := aladhan.MethodISNA
	if raw := ctx.Query("method"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !aladhan.Method(n).Valid() {
			return nil, &api.Error{Code: http.StatusBadRequest, Message: "Unsupported calculation method"}
		}
		method = aladhan.Method(n)
	}

	timings, apiErr := p.fetchTimings(ctx, city, country, method)
	if apiErr != nil {
		return nil, apiErr
	}

	return packets.TimingsResponse{
		City:      city,
		Country:   country,
		Date:      p.now().Format("2006-01-02"),
		Method:    int(method),
		Timings:   timings,
		Timings12: to12Hour(timings),
	}, nil
}

// GET /api/prayer/state?city=&country=
//
// When the request matches the tracked location the tracker's
// snapshot is served; otherwise the schedule is fetched on demand and
// the state computed at request time.
func (p *PrayerController) prayerState(ctx *gin.Context) (any, *api.Error) {
	city := ctx.Query("city")
	country := ctx.Query("country")
	if country == "" {
		country = p.defaultCountry
	}

	if p.tracker != nil {
		snap := p.tracker.Snapshot()
		if snap.HasSchedule && (city == "" || city == snap.City) && (ctx.Query("country") == "" || country == snap.Country) {
			return packets.StateResponse{
				City:             snap.City,
				Country:          snap.Country,
				Current:          string(snap.State.Current),
				Next:             string(snap.State.Next),
				Countdown:        snap.State.Countdown(),
				SecondsUntilNext: snap.State.SecondsUntilNext,
				Greeting:         snap.Greeting,
			}, nil
		}
	}

	if city == "" {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "City is required"}
	}

	timings, apiErr := p.fetchTimings(ctx, city, country, aladhan.MethodISNA)
	if apiErr != nil {
		return nil, apiErr
	}

	schedule, err := prayer.ParseSchedule(timings)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("provider returned an unusable schedule")
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "Failed to load prayer times"}
	}

	now := p.now()
	state, err := prayer.ComputeState(schedule, now)
	if err != nil {
		log.Error().Err(err).Msg("prayer state computation failed")
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "Failed to load prayer times"}
	}

	return packets.StateResponse{
		City:             city,
		Country:          country,
		Current:          string(state.Current),
		Next:             string(state.Next),
		Countdown:        state.Countdown(),
		SecondsUntilNext: state.SecondsUntilNext,
		Greeting:         tracker.GreetingFor(now),
	}, nil
}

func (p *PrayerController) fetchTimings(ctx *gin.Context, city, country string, method aladhan.Method) (model.PrayerTimes, *api.Error) {
	date := p.now()
	cacheKey := fmt.Sprintf("aladhan:%s:%s:%s:%d", city, country, date.Format("2006-01-02"), method)

	var timings model.PrayerTimes
	if redis.GetJSON(ctx.Request.Context(), cacheKey, &timings) {
		return timings, nil
	}

	timings, err := p.provider.Timings(ctx.Request.Context(), city, country, date, method)
	if err != nil {
		log.Error().Err(err).Str("city", city).Str("country", country).Msg("aladhan fetch failed")
		return model.PrayerTimes{}, &api.Error{Code: http.StatusInternalServerError, Message: "Failed to load prayer times"}
	}

	redis.SetJSON(ctx.Request.Context(), cacheKey, timings, timingsCacheTTL)
	return timings, nil
}

func to12Hour(t model.PrayerTimes) model.PrayerTimes {
	return model.PrayerTimes{
		Fajr:    model.Format12Hour(t.Fajr),
		Dhuhr:   model.Format12Hour(t.Dhuhr),
		Asr:     model.Format12Hour(t.Asr),
		Maghrib: model.Format12Hour(t.Maghrib),
		Isha:    model.Format12Hour(t.Isha),
	}
}
