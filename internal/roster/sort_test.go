package roster

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mvukas/rostertag/internal/model"
)

type SortSuite struct {
	suite.Suite
}

func TestSortSuite(t *testing.T) {
	suite.Run(t, new(SortSuite))
}

func (s *SortSuite) TestNumbersCompareNumerically() {
	s.Negative(ComparePlayerNumbers("9", "10"))
	s.Positive(ComparePlayerNumbers("10", "9"))
	s.Zero(ComparePlayerNumbers("1", "1"))
}

func (s *SortSuite) TestLettersCompareLexicographically() {
	s.Negative(ComparePlayerNumbers("A", "B"))
	s.Positive(ComparePlayerNumbers("B", "A"))
	s.Zero(ComparePlayerNumbers("A", "A"))
}

func (s *SortSuite) TestNumbersBeforeLetters() {
	s.Positive(ComparePlayerNumbers("A", "1"))
	s.Negative(ComparePlayerNumbers("1", "A"))
	s.Negative(ComparePlayerNumbers("99", "A"))
}

func (s *SortSuite) TestSortPlayers() {
	players := []model.Player{
		{ID: "p1", PlayerNumber: "A"},
		{ID: "p2", PlayerNumber: "10"},
		{ID: "p3", PlayerNumber: "9"},
		{ID: "p4", PlayerNumber: "B"},
		{ID: "p5", PlayerNumber: "1"},
	}

	sorted := SortPlayers(players)

	numbers := make([]string, len(sorted))
	for i, p := range sorted {
		numbers[i] = p.PlayerNumber
	}
	s.Equal([]string{"1", "9", "10", "A", "B"}, numbers)
}

func (s *SortSuite) TestSortPlayersDoesNotMutateInput() {
	players := []model.Player{
		{ID: "p1", PlayerNumber: "10"},
		{ID: "p2", PlayerNumber: "1"},
	}

	_ = SortPlayers(players)

	s.Equal("10", players[0].PlayerNumber)
	s.Equal("1", players[1].PlayerNumber)
}

func (s *SortSuite) TestSortPlayersStableForEqualNumbers() {
	players := []model.Player{
		{ID: "p1", PlayerNumber: "7"},
		{ID: "p2", PlayerNumber: "7"},
	}

	sorted := SortPlayers(players)

	s.Equal(model.PlayerID("p1"), sorted[0].ID)
	s.Equal(model.PlayerID("p2"), sorted[1].ID)
}
