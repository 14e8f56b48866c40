package cli

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mvukas/rostertag/internal/model"
)

type OutputSuite struct {
	suite.Suite
}

func TestOutputSuite(t *testing.T) {
	suite.Run(t, new(OutputSuite))
}

func (s *OutputSuite) TestPlayerRowValid() {
	row := playerRow(model.ParsedPlayer{
		PlayerNumber: "7",
		FirstName:    "Ivan",
		LastName:     "HORVAT",
		Valid:        true,
	})
	s.Equal("  7    Ivan HORVAT", row)
}

func (s *OutputSuite) TestPlayerRowInvalidMarker() {
	row := playerRow(model.ParsedPlayer{
		LastName: "INVALID LINE",
		RawInput: "Invalid Line",
	})
	s.Equal("!      INVALID LINE", row)
}

func (s *OutputSuite) TestPersistedPlayerRendersAsParserView() {
	p := model.Player{
		ID:           "pl_1",
		PlayerNumber: "10",
		TeamCode:     "HRV",
		FirstName:    "Marko",
		LastName:     "PETROVIC",
		RawInput:     "10 Marko Petrovic",
		Valid:        true,
	}
	s.Equal(playerRow(p.Parsed()), playerRow(model.ParsedPlayer{
		PlayerNumber: "10",
		FirstName:    "Marko",
		LastName:     "PETROVIC",
		RawInput:     "10 Marko Petrovic",
		Valid:        true,
	}))
}
