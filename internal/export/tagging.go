// Package export renders a match roster into the tab-delimited tagging
// text consumed by Photo Mechanic code replacement. The output format is
// wire-exact: separator width, blank-line placement and the tab between
// code and name all matter to the consuming tool.
package export

import (
	"fmt"
	"strings"

	"github.com/mvukas/rostertag/internal/captions"
	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/roster"
)

// teamSeparator sits under each team name in the output
const teamSeparator = "---------------------"

// TeamPlayers pairs a team with its roster for export
type TeamPlayers struct {
	Team    model.Team
	Players []model.Player
}

// TaggingText builds the full tagging file content for a match:
// sport name, the Shutterstock caption, then one block per team with the
// team name, a separator line, and one tab-delimited line per valid
// player sorted by player number. Lines are LF-joined.
func TaggingText(sport model.Sport, match model.Match, teams []TeamPlayers) string {
	lines := []string{sport.Name, ""}
	lines = append(lines, captions.Shutterstock(match), "")

	for i, tp := range teams {
		lines = append(lines, tp.Team.Name, teamSeparator)
		for _, player := range roster.SortPlayers(tp.Players) {
			if !player.Valid {
				continue
			}
			lines = append(lines, playerLine(tp.Team.TeamCode, player))
		}
		if i < len(teams)-1 {
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

// playerLine renders "{code}{number}\t{first} {last} ({number})".
// A player with no first name (single-name entries) gets just the last
// name, with no leading space.
func playerLine(teamCode string, p model.Player) string {
	name := p.LastName
	if p.FirstName != "" {
		name = p.FirstName + " " + p.LastName
	}
	return fmt.Sprintf("%s%s\t%s (%s)", teamCode, p.PlayerNumber, name, p.PlayerNumber)
}

// MatchFilename derives the advisory default filename for a whole-match
// export: "{date}-{Team1}-{Team2}.txt" with spaces in team names
// replaced by hyphens.
func MatchFilename(match model.Match, teams []TeamPlayers) string {
	names := make([]string, len(teams))
	for i, tp := range teams {
		names[i] = strings.Join(strings.Fields(tp.Team.Name), "-")
	}
	return fmt.Sprintf("%s-%s.txt", match.Date, strings.Join(names, "-"))
}

// TeamFilename derives the default filename for a single-team export
func TeamFilename(team model.Team) string {
	return fmt.Sprintf("team-%s.txt", team.TeamCode)
}
