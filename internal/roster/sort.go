package roster

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mvukas/rostertag/internal/model"
)

// ComparePlayerNumbers orders player numbers the way they appear in the
// tagging output: numbers sort numerically, letter codes sort
// lexicographically, and numbers always come before letter codes.
// The same rule applies everywhere a roster is listed.
func ComparePlayerNumbers(a, b string) int {
	an, aErr := strconv.ParseFloat(a, 64)
	bn, bErr := strconv.ParseFloat(b, 64)
	aIsNumber := aErr == nil
	bIsNumber := bErr == nil

	switch {
	case aIsNumber && bIsNumber:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	case !aIsNumber && !bIsNumber:
		return strings.Compare(a, b)
	case aIsNumber:
		return -1
	default:
		return 1
	}
}

// SortPlayers returns a copy of players ordered by player number
func SortPlayers(players []model.Player) []model.Player {
	sorted := make([]model.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ComparePlayerNumbers(sorted[i].PlayerNumber, sorted[j].PlayerNumber) < 0
	})
	return sorted
}
