package endpoints

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Engineered0/athan-server/internal/geo"
	"github.com/Engineered0/athan-server/internal/http/api"
	"github.com/Engineered0/athan-server/internal/http/api/mosques/packets"
	"github.com/Engineered0/athan-server/internal/redis"
)

const (
	searchRadiusMeters = 5000
	maxResults         = 10
	cacheTTL           = 5 * time.Minute
)

// MosqueFinder is the slice of the Overpass client the controller needs.
type MosqueFinder interface {
	NearbyMosques(ctx context.Context, lat, lon float64, radiusMeters, limit int) ([]geo.Candidate, error)
}

type MosquesController struct {
	finder MosqueFinder
}

func NewMosquesController(finder MosqueFinder) *MosquesController {
	return &MosquesController{finder: finder}
}

// MosquesModule mounts the nearby-mosques query endpoint.
func MosquesModule(finder MosqueFinder) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		ctl := NewMosquesController(finder)
		c.Group.GET("/mosques/nearby", api.ResolveEndpoint(ctl.nearbyMosques))
	})
}

// GET /api/mosques/nearby?lat=&lon=
func (m *MosquesController) nearbyMosques(ctx *gin.Context) (any, *api.Error) {
	latStr, lonStr := ctx.Query("lat"), ctx.Query("lon")
	if latStr == "" || lonStr == "" {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "Latitude and longitude are required"}
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "Latitude and longitude must be numbers"}
	}

	origin := geo.Point{Lat: lat, Lon: lon}
	if !origin.Valid() {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "Latitude and longitude are out of range"}
	}

	// ~110m key granularity keeps nearby clients on the same entry
	cacheKey := fmt.Sprintf("mosques:%.3f:%.3f", lat, lon)
	var cached []packets.MosqueResponse
	if redis.GetJSON(ctx.Request.Context(), cacheKey, &cached) {
		return cached, nil
	}

	candidates, err := m.finder.NearbyMosques(ctx.Request.Context(), lat, lon, searchRadiusMeters, maxResults)
	if err != nil {
		log.Error().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("overpass query failed")
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "Failed to fetch nearby mosques"}
	}

	// The provider already caps results server-side; rank whatever came back.
	ranked, err := geo.Rank(origin, candidates, 0)
	if err != nil {
		log.Error().Err(err).Msg("ranking failed")
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "Failed to fetch nearby mosques"}
	}

	out := make([]packets.MosqueResponse, 0, len(ranked))
	for _, r := range ranked {
		name := r.Name
		if name == "" {
			name = packets.UnnamedMosque
		}
		out = append(out, packets.MosqueResponse{
			Name:     name,
			Distance: r.DistanceKm,
			Lat:      r.Lat,
			Lon:      r.Lon,
		})
	}

	redis.SetJSON(ctx.Request.Context(), cacheKey, out, cacheTTL)
	return out, nil
}
