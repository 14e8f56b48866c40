package captions

import (
	"fmt"
	"strings"

	"github.com/mvukas/rostertag/internal/model"
)

// ShutterstockEditorial renders the Shutterstock editorial caption:
//
//	"Croatia v Germany, Friendly match, Stadion Maksimir, Zagreb, Croatia - 08 Jan 2026"
//
// Description, venue, city and country are optional comma-joined segments;
// empty ones are omitted entirely. With fewer than two teams the literal
// "Team 1"/"Team 2" placeholders are used.
func ShutterstockEditorial(match model.Match, teams []model.Team) string {
	team1 := "Team 1"
	team2 := "Team 2"
	if len(teams) > 0 && teams[0].Name != "" {
		team1 = teams[0].Name
	}
	if len(teams) > 1 && teams[1].Name != "" {
		team2 = teams[1].Name
	}

	segments := []string{fmt.Sprintf("%s v %s", team1, team2)}
	for _, seg := range []string{match.Description, match.Venue, match.City, match.Country} {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	date := matchDate(match)
	dateStr := fmt.Sprintf("%02d %s %d", date.Day(), date.Month().String()[:3], date.Year())

	return fmt.Sprintf("%s - %s", strings.Join(segments, ", "), dateStr)
}
