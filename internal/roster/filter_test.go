package roster

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type FilterSuite struct {
	suite.Suite
}

func TestFilterSuite(t *testing.T) {
	suite.Run(t, new(FilterSuite))
}

func (s *FilterSuite) TestKeepsRosterLikeLines() {
	text := "TEAM SHEET\nOfficial lineup for tonight\n7 Ivan Horvat\n10 Marko Petrovic\nPage 1 of 2"
	s.Equal("7 Ivan Horvat\n10 Marko Petrovic", FilterCandidateLines(text))
}

func (s *FilterSuite) TestKeepsTrailingCodeLines() {
	text := "Some header text here\nIvan Horvat (7)\nMarko Petrovic - 10"
	s.Equal("Ivan Horvat (7)\nMarko Petrovic - 10", FilterCandidateLines(text))
}

func (s *FilterSuite) TestNormalizesWhitespace() {
	text := "7    Ivan\tHorvat\r\n10  Marko  Petrovic"
	s.Equal("7 Ivan Horvat\n10 Marko Petrovic", FilterCandidateLines(text))
}

func (s *FilterSuite) TestNoMatchReturnsWholeText() {
	// Nothing looks like a roster entry, so the parser gets everything
	// and reports the lines as invalid instead of dropping them silently.
	text := "!! completely\n## unrelated"
	s.Equal("!! completely\n## unrelated", FilterCandidateLines(text))
}

func (s *FilterSuite) TestEmptyInput() {
	s.Equal("", FilterCandidateLines(""))
	s.Equal("", FilterCandidateLines("  \n\n  "))
}
