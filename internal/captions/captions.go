// Package captions renders a match into the house caption style of the
// photo agencies the exported images are delivered to. Every formatter is
// a pure function over the match (and teams); missing fields degrade to
// shorter captions or a fallback string, never to an error.
package captions

import (
	"fmt"
	"time"

	"github.com/mvukas/rostertag/internal/model"
)

// matchDate parses the match's YYYY-MM-DD date. The date format is
// enforced at data-entry time; a malformed value falls back to the zero
// time rather than failing the caption.
func matchDate(m model.Match) time.Time {
	t, err := time.Parse("2006-01-02", m.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ordinalDay renders a day of month with its English ordinal suffix.
// 11-13 are always "th"; otherwise the suffix follows the last digit.
func ordinalDay(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// All renders every supported agency caption for a match
type All struct {
	Shutterstock string `json:"shutterstock"`
	Editorial    string `json:"editorial"`
	Imago        string `json:"imago"`
}

// ForMatch builds all agency captions for a match and its teams
func ForMatch(match model.Match, teams []model.Team) All {
	return All{
		Shutterstock: Shutterstock(match),
		Editorial:    ShutterstockEditorial(match, teams),
		Imago:        Imago(match),
	}
}
