// Package cities holds the supported city picklist for the location
// selection flow. The list mirrors the Canadian cities the app ships
// with; the prayer-time provider resolves them by name.
package cities

var canadianCities = []string{
	"Toronto",
	"Montreal",
	"Vancouver",
	"Calgary",
	"Edmonton",
	"Ottawa",
	"Winnipeg",
	"Quebec City",
	"Hamilton",
	"Kitchener",
	"London",
	"Victoria",
	"Halifax",
	"Oshawa",
	"Windsor",
	"Saskatoon",
	"Regina",
	"St. John's",
	"Kelowna",
	"Barrie",
	"Mississauga",
	"Brampton",
	"Surrey",
	"Laval",
	"Markham",
}

// List returns the supported cities. Callers must not mutate the
// returned slice.
func List() []string {
	return canadianCities
}

// Supported reports whether the city is in the picklist.
func Supported(city string) bool {
	for _, c := range canadianCities {
		if c == city {
			return true
		}
	}
	return false
}
