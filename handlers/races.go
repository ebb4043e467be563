package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/code4projects/raceboard/models"
	"github.com/code4projects/raceboard/service"
)

// raceForm carries the raw form field values so a rejected submission
// can be re-rendered exactly as the user typed it.
type raceForm struct {
	Name     string
	Date     string
	Time     string
	City     string
	Distance string
	Website  string
}

func formFromRequest(c echo.Context) raceForm {
	return raceForm{
		Name:     c.FormValue("name"),
		Date:     c.FormValue("date"),
		Time:     c.FormValue("time"),
		City:     c.FormValue("city"),
		Distance: c.FormValue("distance"),
		Website:  c.FormValue("website"),
	}
}

func formFromRace(r *models.Race) raceForm {
	return raceForm{
		Name:     r.Name,
		Date:     r.Time.Format(service.DateLayout),
		Time:     r.Time.Format(service.ClockLayout),
		City:     r.City,
		Distance: strconv.Itoa(r.Distance),
		Website:  r.Website,
	}
}

type listPage struct {
	Races  []models.Race
	Notice string
}

type formPage struct {
	ID      int
	Form    raceForm
	Warning string
}

func redirectWithNotice(c echo.Context, notice string) error {
	return c.Redirect(http.StatusFound, "/?notice="+url.QueryEscape(notice))
}

// ListRaces renders the race listing page.
func (h *Handler) ListRaces(c echo.Context) error {
	notice := c.QueryParam("notice")

	races, err := h.races.GetAll(c.Request().Context())
	if err != nil {
		zap.L().Error("list races", zap.Error(err))
		notice = "Could not load races"
	}

	return c.Render(http.StatusOK, "index.html", listPage{Races: races, Notice: notice})
}

// CreateRaceForm renders an empty creation form.
func (h *Handler) CreateRaceForm(c echo.Context) error {
	return c.Render(http.StatusOK, "create-race.html", formPage{})
}

// CreateRace validates the submitted form and persists a new race.
// A rejected submission re-renders the form with a warning and the
// values as typed; nothing is stored.
func (h *Handler) CreateRace(c echo.Context) error {
	form := formFromRequest(c)

	in, err := service.ParseRaceForm(form.Name, form.Date, form.Time, form.City, form.Distance, form.Website)
	if err != nil {
		return c.Render(http.StatusBadRequest, "create-race.html", formPage{Form: form, Warning: err.Error()})
	}

	if _, err := h.races.Create(c.Request().Context(), in); err != nil {
		zap.L().Error("create race", zap.Error(err))
		return redirectWithNotice(c, "Could not save the race")
	}

	return redirectWithNotice(c, "Race created")
}

// UpdateRaceForm renders the edit form pre-filled with the stored
// values, or redirects to the listing when the id is unknown.
func (h *Handler) UpdateRaceForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return redirectWithNotice(c, "Race not found")
	}

	race, err := h.races.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRaceNotFound) {
			return redirectWithNotice(c, "Race not found")
		}
		zap.L().Error("load race", zap.Int("id", id), zap.Error(err))
		return redirectWithNotice(c, "Could not load the race")
	}

	return c.Render(http.StatusOK, "update-race.html", formPage{ID: id, Form: formFromRace(race)})
}

// UpdateRace validates the submitted form and overwrites the stored
// race.
func (h *Handler) UpdateRace(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return redirectWithNotice(c, "Race not found")
	}

	form := formFromRequest(c)

	in, err := service.ParseRaceForm(form.Name, form.Date, form.Time, form.City, form.Distance, form.Website)
	if err != nil {
		return c.Render(http.StatusBadRequest, "update-race.html", formPage{ID: id, Form: form, Warning: err.Error()})
	}

	if _, err := h.races.Update(c.Request().Context(), id, in); err != nil {
		if errors.Is(err, service.ErrRaceNotFound) {
			return redirectWithNotice(c, "Race not found")
		}
		zap.L().Error("update race", zap.Int("id", id), zap.Error(err))
		return redirectWithNotice(c, "Could not save the race")
	}

	return redirectWithNotice(c, "Race updated")
}

// DeleteRace removes a race and redirects to the listing.
func (h *Handler) DeleteRace(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return redirectWithNotice(c, "Race not found")
	}

	if err := h.races.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrRaceNotFound) {
			return redirectWithNotice(c, "Race not found")
		}
		zap.L().Error("delete race", zap.Int("id", id), zap.Error(err))
		return redirectWithNotice(c, "Could not delete the race")
	}

	return redirectWithNotice(c, "Race deleted")
}
