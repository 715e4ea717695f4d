package packets

// MosqueResponse is one ranked nearby mosque. Distance is kilometers
// from the queried coordinate, unrounded.
type MosqueResponse struct {
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// UnnamedMosque is the display label for candidates the provider
// returned without a name tag.
const UnnamedMosque = "Unnamed Mosque"
