package roster

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ParserSuite struct {
	suite.Suite
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserSuite))
}

// Line format tests

func (s *ParserSuite) TestLeadingNumber() {
	p := ParseLine("7 Ivan Horvat")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("7", p.PlayerNumber)
	s.Equal("Ivan", p.FirstName)
	s.Equal("HORVAT", p.LastName)
	s.Equal("7 Ivan Horvat", p.RawInput)
}

func (s *ParserSuite) TestLeadingNumberWithHourMarker() {
	p := ParseLine("7h Ivan Horvat")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("7", p.PlayerNumber)
	s.Equal("HORVAT", p.LastName)
}

func (s *ParserSuite) TestLeadingNumberMultiWordFirstName() {
	p := ParseLine("10 Ana Maria Kovac")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("10", p.PlayerNumber)
	s.Equal("Ana Maria", p.FirstName)
	s.Equal("KOVAC", p.LastName)
}

func (s *ParserSuite) TestLeadingLetter() {
	p := ParseLine("A John Doe")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("A", p.PlayerNumber)
	s.Equal("John", p.FirstName)
	s.Equal("DOE", p.LastName)
}

func (s *ParserSuite) TestLeadingLetterKeepsCase() {
	p := ParseLine("a John Doe")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("a", p.PlayerNumber)
}

func (s *ParserSuite) TestTrailingParenNumber() {
	p := ParseLine("Ivan Horvat (7)")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("7", p.PlayerNumber)
	s.Equal("Ivan", p.FirstName)
	s.Equal("HORVAT", p.LastName)
}

func (s *ParserSuite) TestTrailingParenLetterCode() {
	p := ParseLine("John Doe (A)")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("A", p.PlayerNumber)
}

func (s *ParserSuite) TestTrailingDash() {
	p := ParseLine("Ivan Horvat - 7")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("7", p.PlayerNumber)
	s.Equal("Ivan", p.FirstName)
	s.Equal("HORVAT", p.LastName)
}

func (s *ParserSuite) TestTrailingDashNoSpaces() {
	p := ParseLine("Ivan Horvat-7")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("7", p.PlayerNumber)
}

// Normalization of parsed names

func (s *ParserSuite) TestNamesAreNormalized() {
	p := ParseLine("7 IVAN horvat")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("Ivan", p.FirstName)
	s.Equal("HORVAT", p.LastName)
}

// Fallthrough and invalid lines

func (s *ParserSuite) TestBlankLineReturnsNil() {
	s.Nil(ParseLine(""))
	s.Nil(ParseLine("   \t  "))
}

func (s *ParserSuite) TestSingleTokenIsInvalid() {
	p := ParseLine("Ivan")
	s.Require().NotNil(p)
	s.False(p.Valid)
	s.Equal("", p.PlayerNumber)
	s.Equal("", p.FirstName)
	s.Equal("IVAN", p.LastName)
	s.Equal("Ivan", p.RawInput)
}

func (s *ParserSuite) TestNumberWithSingleNameFallsThrough() {
	// "7 Ivan" matches the leading-number shape but the name portion has
	// only one token, so every format falls through and the line is kept
	// as an invalid entry.
	p := ParseLine("7 Ivan")
	s.Require().NotNil(p)
	s.False(p.Valid)
	s.Equal("", p.PlayerNumber)
	s.Equal("7 IVAN", p.LastName)
}

func (s *ParserSuite) TestUnmatchedLineIsInvalid() {
	p := ParseLine("Invalid Line")
	s.Require().NotNil(p)
	s.False(p.Valid)
	s.Equal("", p.PlayerNumber)
	s.Equal("", p.FirstName)
	s.Equal("INVALID LINE", p.LastName)
}

func (s *ParserSuite) TestLeadingWhitespaceTrimmed() {
	p := ParseLine("   7 Ivan Horvat   ")
	s.Require().NotNil(p)
	s.True(p.Valid)
	s.Equal("7 Ivan Horvat", p.RawInput)
}

// Multi-line text parsing

func (s *ParserSuite) TestParseTextEmpty() {
	s.Empty(ParseText(""))
}

func (s *ParserSuite) TestParseTextPreservesOrder() {
	players := ParseText("7 Ivan Horvat\n10 Marko Petrovic\nA John Doe")
	s.Require().Len(players, 3)
	s.Equal("7", players[0].PlayerNumber)
	s.Equal("10", players[1].PlayerNumber)
	s.Equal("A", players[2].PlayerNumber)
	for _, p := range players {
		s.True(p.Valid)
	}
}

func (s *ParserSuite) TestParseTextKeepsInvalidLines() {
	players := ParseText("7 Ivan Horvat\nInvalid Line\n10 Marko Petrovic")
	s.Require().Len(players, 3)
	s.True(players[0].Valid)
	s.False(players[1].Valid)
	s.Equal("INVALID LINE", players[1].LastName)
	s.True(players[2].Valid)
}

func (s *ParserSuite) TestParseTextSkipsBlankLines() {
	players := ParseText("7 Ivan Horvat\n\n   \n10 Marko Petrovic\n")
	s.Require().Len(players, 2)
	s.Equal("7", players[0].PlayerNumber)
	s.Equal("10", players[1].PlayerNumber)
}

func (s *ParserSuite) TestParseTextMixedLineEndings() {
	players := ParseText("7 Ivan Horvat\r\n10 Marko Petrovic\r8 Luka Modric")
	s.Require().Len(players, 3)
	s.Equal("8", players[2].PlayerNumber)
}
