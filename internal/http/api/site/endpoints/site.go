package endpoints

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Engineered0/athan-server/internal/cities"
	"github.com/Engineered0/athan-server/internal/http/api"
	"github.com/Engineered0/athan-server/internal/tracker"
)

// SiteModule mounts the small supporting endpoints: the city picklist
// for the location form and the time-of-day greeting.
func SiteModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.Group.GET("/cities", api.ResolveEndpoint(listCities))
		c.Group.GET("/greeting", api.ResolveEndpoint(greeting))
	})
}

// GET /api/cities
func listCities(ctx *gin.Context) (any, *api.Error) {
	return cities.List(), nil
}

// GET /api/greeting?name=
func greeting(ctx *gin.Context) (any, *api.Error) {
	g := tracker.GreetingFor(time.Now())
	message := g
	if name := ctx.Query("name"); name != "" {
		message = fmt.Sprintf("%s, %s", g, name)
	}
	return gin.H{"greeting": g, "message": message}, nil
}
