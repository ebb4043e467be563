package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/code4projects/raceboard/models"
)

// Form field formats for the race start timestamp.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// RaceInput is the validated, in-memory shape of user-supplied race
// data. It carries everything a Race needs except the id, which the
// database assigns.
type RaceInput struct {
	Name     string
	Time     time.Time
	City     string
	Distance int
	Website  string
}

// ParseRaceForm validates raw form/JSON field values and combines the
// separate date and clock strings into a single UTC timestamp. It
// checks field shape only; no business rules.
func ParseRaceForm(name, date, clock, city, distance, website string) (RaceInput, error) {
	var in RaceInput

	in.Name = strings.TrimSpace(name)
	if in.Name == "" {
		return in, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(in.Name) > 50 {
		return in, &ValidationError{Field: "name", Reason: "must be at most 50 characters"}
	}

	ts, err := time.ParseInLocation(DateLayout+" "+ClockLayout,
		strings.TrimSpace(date)+" "+strings.TrimSpace(clock), time.UTC)
	if err != nil {
		return in, &ValidationError{Field: "time", Reason: "expected date " + DateLayout + " and time " + ClockLayout}
	}
	in.Time = ts

	in.City = strings.TrimSpace(city)
	if in.City == "" {
		return in, &ValidationError{Field: "city", Reason: "must not be empty"}
	}
	if len(in.City) > 20 {
		return in, &ValidationError{Field: "city", Reason: "must be at most 20 characters"}
	}

	d, err := strconv.Atoi(strings.TrimSpace(distance))
	if err != nil || d <= 0 {
		return in, &ValidationError{Field: "distance", Reason: "must be a positive integer (meters)"}
	}
	in.Distance = d

	in.Website = strings.TrimSpace(website)
	if len(in.Website) > 100 {
		return in, &ValidationError{Field: "website", Reason: "must be at most 100 characters"}
	}

	return in, nil
}

// ApplyTo copies every mutable field onto the entity, leaving the id
// untouched.
func (in RaceInput) ApplyTo(r *models.Race) {
	r.Name = in.Name
	r.Time = in.Time
	r.City = in.City
	r.Distance = in.Distance
	r.Website = in.Website
}
