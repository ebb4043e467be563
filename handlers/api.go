package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/code4projects/raceboard/models"
	"github.com/code4projects/raceboard/service"
)

// timestampLayout is the combined race start format used by the JSON API.
const timestampLayout = service.DateLayout + " " + service.ClockLayout

type raceRequest struct {
	Name     string `json:"name"`
	Time     string `json:"time"`
	City     string `json:"city"`
	Distance int    `json:"distance"`
	Website  string `json:"website"`
}

type raceResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Time     string `json:"time"`
	City     string `json:"city"`
	Distance int    `json:"distance"`
	Website  string `json:"website,omitempty"`
}

func toRaceResponse(r *models.Race) raceResponse {
	return raceResponse{
		ID:       r.ID,
		Name:     r.Name,
		Time:     r.Time.Format(timestampLayout),
		City:     r.City,
		Distance: r.Distance,
		Website:  r.Website,
	}
}

func (req raceRequest) toInput() (service.RaceInput, error) {
	date, clock, _ := strings.Cut(strings.TrimSpace(req.Time), " ")
	return service.ParseRaceForm(req.Name, date, clock, req.City, strconv.Itoa(req.Distance), req.Website)
}

// APIListRaces returns all races as JSON.
func (h *Handler) APIListRaces(c echo.Context) error {
	races, err := h.races.GetAll(c.Request().Context())
	if err != nil {
		zap.L().Error("api list races", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	result := make([]raceResponse, len(races))
	for i := range races {
		result[i] = toRaceResponse(&races[i])
	}
	return c.JSON(http.StatusOK, result)
}

// APIGetRace returns a single race by id.
func (h *Handler) APIGetRace(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "race not found")
	}

	race, err := h.races.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.apiError(c, id, err)
	}
	return c.JSON(http.StatusOK, toRaceResponse(race))
}

// APICreateRace creates a race from a JSON body and returns 201 with
// the stored record.
func (h *Handler) APICreateRace(c echo.Context) error {
	var req raceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	in, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	race, err := h.races.Create(c.Request().Context(), in)
	if err != nil {
		zap.L().Error("api create race", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusCreated, toRaceResponse(race))
}

// APIUpdateRace overwrites an existing race from a JSON body.
func (h *Handler) APIUpdateRace(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "race not found")
	}

	var req raceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	in, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	race, err := h.races.Update(c.Request().Context(), id, in)
	if err != nil {
		return h.apiError(c, id, err)
	}
	return c.JSON(http.StatusOK, toRaceResponse(race))
}

// APIDeleteRace removes a race by id.
func (h *Handler) APIDeleteRace(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "race not found")
	}

	if err := h.races.Delete(c.Request().Context(), id); err != nil {
		return h.apiError(c, id, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// apiError maps service errors to JSON API status codes without
// leaking storage detail.
func (h *Handler) apiError(c echo.Context, id int, err error) error {
	if errors.Is(err, service.ErrRaceNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "race not found")
	}
	zap.L().Error("api race", zap.Int("id", id), zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
