package captions

import (
	"fmt"
	"strings"

	"github.com/mvukas/rostertag/internal/model"
)

// ShutterstockGuard is returned instead of a partial caption when the
// match is missing its city or country.
const ShutterstockGuard = "Please fill in city and country for Shutterstock format"

// Shutterstock renders the standard Shutterstock caption:
//
//	"ZAGREB, CROATIA - JANUARY 8, 2026: Friendly match between Croatia and Germany"
func Shutterstock(match model.Match) string {
	city := strings.ToUpper(match.City)
	country := strings.ToUpper(match.Country)
	if city == "" || country == "" {
		return ShutterstockGuard
	}

	date := matchDate(match)
	dateStr := fmt.Sprintf("%s %d, %d",
		strings.ToUpper(date.Month().String()), date.Day(), date.Year())

	return fmt.Sprintf("%s, %s - %s: %s", city, country, dateStr, match.Description)
}
