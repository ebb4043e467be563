package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	mw "github.com/code4projects/raceboard/middleware"
)

// RegisterRoutes binds every route to its handler. The HTML form flow
// is public; the JSON API sits behind JWT auth except for signin.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// HTML form flow
	e.GET("/", h.ListRaces)
	e.GET("/races", h.ListRaces)
	e.GET("/create-race", h.CreateRaceForm)
	e.POST("/create-race", h.CreateRace)
	e.GET("/update-race/:id", h.UpdateRaceForm)
	e.POST("/update-race/:id", h.UpdateRace)
	e.GET("/delete-race/:id", h.DeleteRace)

	// JSON API
	e.POST("/api/signin", h.Signin)

	api := e.Group("/api", mw.JWT(h.JWTKey))
	api.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))
	api.GET("/races", h.APIListRaces)
	api.POST("/races", h.APICreateRace)
	api.GET("/races/:id", h.APIGetRace)
	api.PUT("/races/:id", h.APIUpdateRace)
	api.DELETE("/races/:id", h.APIDeleteRace)
}
