package geo

import (
	"fmt"
	"sort"
)

// Candidate is a point of interest as returned by the geospatial
// provider. Name may be empty; display fallbacks are the caller's job.
type Candidate struct {
	Point
	Name string
}

// Ranked is a candidate with its computed distance from the origin.
type Ranked struct {
	Candidate
	DistanceKm float64
}

// Rank orders candidates by ascending great-circle distance from
// origin. The sort is stable, so exact ties keep the provider's
// original order. Candidates with invalid coordinates are dropped.
// If limit > 0 the result is truncated after sorting.
//
// An invalid origin is an error; an empty candidate set is not.
func Rank(origin Point, candidates []Candidate, limit int) ([]Ranked, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: origin %+v", ErrInvalidCoordinate, origin)
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		if !c.Valid() {
			continue
		}
		ranked = append(ranked, Ranked{Candidate: c, DistanceKm: Distance(origin, c.Point)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
