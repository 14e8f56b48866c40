package roster

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type NormalizeSuite struct {
	suite.Suite
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeSuite))
}

// CapitalizeWords tests

func (s *NormalizeSuite) TestCapitalizeWords() {
	s.Equal("Ivan Horvat", CapitalizeWords("ivan horvat"))
	s.Equal("Ivan Horvat", CapitalizeWords("IVAN HORVAT"))
	s.Equal("Ana Maria", CapitalizeWords("aNa mArIa"))
}

func (s *NormalizeSuite) TestCapitalizeWordsEmpty() {
	s.Equal("", CapitalizeWords(""))
	s.Equal("", CapitalizeWords("   "))
}

func (s *NormalizeSuite) TestCapitalizeWordsCollapsesWhitespace() {
	s.Equal("Ivan Horvat", CapitalizeWords("  ivan   horvat  "))
}

func (s *NormalizeSuite) TestCapitalizeWordsKeepsDigits() {
	s.Equal("Ivan2", CapitalizeWords("ivan2"))
}

func (s *NormalizeSuite) TestCapitalizeWordsIdempotent() {
	inputs := []string{"ivan horvat", "IVAN", "ana maria kovac", "x"}
	for _, in := range inputs {
		once := CapitalizeWords(in)
		s.Equal(once, CapitalizeWords(once))
	}
}

func (s *NormalizeSuite) TestCapitalizeWordsUnicodeFirstRune() {
	s.Equal("Šimunić", CapitalizeWords("šimunić"))
}

// RemoveDiacritics tests

func (s *NormalizeSuite) TestRemoveDiacriticsFixtures() {
	s.Equal("Cacic", RemoveDiacritics("Čačić"))
	s.Equal("Simunic", RemoveDiacritics("Šimunić"))
	s.Equal("Zivkovic", RemoveDiacritics("Živković"))
	s.Equal("Djordjevic", RemoveDiacritics("Đorđević"))
}

func (s *NormalizeSuite) TestRemoveDiacriticsDigraph() {
	s.Equal("Dzeko", RemoveDiacritics("Džeko"))
	s.Equal("dzamija", RemoveDiacritics("džamija"))
}

func (s *NormalizeSuite) TestRemoveDiacriticsAccents() {
	s.Equal("Muller", RemoveDiacritics("Müller"))
	s.Equal("Jose", RemoveDiacritics("José"))
}

func (s *NormalizeSuite) TestRemoveDiacriticsPassthrough() {
	s.Equal("Ivan Horvat", RemoveDiacritics("Ivan Horvat"))
	s.Equal("", RemoveDiacritics(""))
}

func (s *NormalizeSuite) TestRemoveDiacriticsIdempotent() {
	inputs := []string{"Čačić", "Đorđević", "Džeko", "Ivan"}
	for _, in := range inputs {
		once := RemoveDiacritics(in)
		s.Equal(once, RemoveDiacritics(once))
	}
}
