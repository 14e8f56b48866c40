package captions

import (
	"fmt"
	"strings"

	"github.com/mvukas/rostertag/internal/model"
)

// Imago renders the Imago caption:
//
//	"Zagreb, Croatia, 8th January 2026. Friendly match at Stadion Maksimir, Zagreb."
//
// Each part degrades when fields are missing: the location prefix drops
// empty segments, and an empty description leaves just the "at venue,
// city." fragment when those are present.
func Imago(match model.Match) string {
	date := matchDate(match)
	dateStr := fmt.Sprintf("%s %s %d", ordinalDay(date.Day()), date.Month().String(), date.Year())

	var prefix []string
	if match.City != "" {
		prefix = append(prefix, match.City)
	}
	if match.Country != "" {
		prefix = append(prefix, match.Country)
	}
	prefix = append(prefix, dateStr)

	sentence := strings.Join(prefix, ", ") + "."

	location := ""
	if match.Venue != "" && match.City != "" {
		location = fmt.Sprintf("at %s, %s.", match.Venue, match.City)
	}

	switch {
	case match.Description != "" && location != "":
		return fmt.Sprintf("%s %s %s", sentence, match.Description, location)
	case match.Description != "":
		return fmt.Sprintf("%s %s", sentence, match.Description)
	case location != "":
		return fmt.Sprintf("%s %s", sentence, location)
	default:
		return sentence
	}
}
