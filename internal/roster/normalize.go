package roster

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CapitalizeWords title-cases each whitespace-separated word: first rune
// upper-cased, the rest lower-cased. Words are rejoined with single spaces.
// Digits inside a word are left untouched ("ivan2" -> "Ivan2").
func CapitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}

// Residual substitutions for letters whose decomposition alone does not
// land on plain ASCII. The dž digraph must be handled before the generic
// mark stripping, since a bare ž maps differently in combination.
var diacriticReplacer = strings.NewReplacer(
	"dž", "dz",
	"Dž", "Dz",
	"DŽ", "DZ",
	"đ", "dj",
	"Đ", "Dj",
)

var residualReplacer = strings.NewReplacer(
	"ć", "c", "Ć", "C",
	"č", "c", "Č", "C",
	"š", "s", "Š", "S",
	"ž", "z", "Ž", "Z",
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoveDiacritics converts accented letters to their ASCII equivalents.
// Order matters: digraphs and đ first, then canonical decomposition with
// combining-mark removal, then the residual South Slavic letters.
func RemoveDiacritics(s string) string {
	s = diacriticReplacer.Replace(s)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	return residualReplacer.Replace(s)
}
