package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " cannot be empty")
		}
		return nil
	}
}

// NewLocationForm asks for the city and country, pre-filled with the
// current values.
func NewLocationForm(city, country *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("City").
				Value(city).
				Validate(notBlank("city")),
			huh.NewInput().
				Title("Country").
				Value(country).
				Validate(notBlank("country")),
		),
	)
}
