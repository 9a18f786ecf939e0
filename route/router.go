package route

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"storefront-voting/api"
)

// Init wires the dev server. An empty jwtSecret leaves /results open.
func Init(h *api.Handlers, jwtSecret string, logger *log.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	if logger != nil {
		e.Logger = logger
	}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.HEAD},
	}))

	e.GET("/health", api.Health)

	e.GET("/flyer", h.GetFlyer)
	e.GET("/vote", h.GetVote)

	if jwtSecret == "" {
		e.GET("/results", h.GetResults)
	} else {
		e.GET("/results", h.GetResults, api.ResultsJWT(jwtSecret), api.RequireResultsScope)
	}

	return e
}
