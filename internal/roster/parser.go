package roster

import (
	"regexp"
	"strings"

	"github.com/mvukas/rostertag/internal/model"
)

// Supported line formats, tried in order:
//
//	"7 Ivan Horvat"       leading number, optional "h" marker ("7h Ivan Horvat")
//	"A Ivan Horvat"       leading letter code, case preserved
//	"Ivan Horvat (7)"     trailing parenthesized number or code
//	"Ivan Horvat - 7"     trailing dash number or code
//
// A format only wins if its name portion has at least two tokens; otherwise
// the parser falls through to the next format.
var (
	leadingNumberRe = regexp.MustCompile(`(?i)^(\d+)h?\s+(.+)$`)
	leadingLetterRe = regexp.MustCompile(`(?i)^([A-Za-z])h?\s+(.+)$`)
	trailingParenRe = regexp.MustCompile(`(?i)^(.+?)\s*\(([A-Za-z0-9]+)\)$`)
	trailingDashRe  = regexp.MustCompile(`(?i)^(.+?)\s*-\s*([A-Za-z0-9]+)$`)
)

// splitName divides a name portion into a title-cased first name and an
// upper-cased last name. Returns ok=false when there are fewer than two
// tokens, which the caller treats as "this format did not match".
func splitName(namePart string) (firstName, lastName string, ok bool) {
	parts := strings.Fields(namePart)
	if len(parts) < 2 {
		return "", "", false
	}
	lastName = strings.ToUpper(parts[len(parts)-1])
	firstName = CapitalizeWords(strings.Join(parts[:len(parts)-1], " "))
	return firstName, lastName, true
}

// ParseLine converts one free-text line into a ParsedPlayer. Blank lines
// return nil (the caller drops them). Lines matching no format come back
// with Valid=false and the raw line upper-cased as the last name, so that
// nothing pasted by the operator is silently lost.
func ParseLine(line string) *model.ParsedPlayer {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	if m := leadingNumberRe.FindStringSubmatch(trimmed); m != nil {
		if first, last, ok := splitName(m[2]); ok {
			return &model.ParsedPlayer{
				PlayerNumber: m[1],
				FirstName:    first,
				LastName:     last,
				RawInput:     trimmed,
				Valid:        true,
			}
		}
	}

	if m := leadingLetterRe.FindStringSubmatch(trimmed); m != nil {
		if first, last, ok := splitName(m[2]); ok {
			return &model.ParsedPlayer{
				// Letter codes keep their original case ("A" delegate vs "a")
				PlayerNumber: m[1],
				FirstName:    first,
				LastName:     last,
				RawInput:     trimmed,
				Valid:        true,
			}
		}
	}

	if m := trailingParenRe.FindStringSubmatch(trimmed); m != nil {
		if first, last, ok := splitName(m[1]); ok {
			return &model.ParsedPlayer{
				PlayerNumber: m[2],
				FirstName:    first,
				LastName:     last,
				RawInput:     trimmed,
				Valid:        true,
			}
		}
	}

	if m := trailingDashRe.FindStringSubmatch(trimmed); m != nil {
		if first, last, ok := splitName(m[1]); ok {
			return &model.ParsedPlayer{
				PlayerNumber: m[2],
				FirstName:    first,
				LastName:     last,
				RawInput:     trimmed,
				Valid:        true,
			}
		}
	}

	return &model.ParsedPlayer{
		PlayerNumber: "",
		FirstName:    "",
		LastName:     strings.ToUpper(trimmed),
		RawInput:     trimmed,
		Valid:        false,
	}
}

var lineSplitRe = regexp.MustCompile(`\r\n|\r|\n`)

// ParseText parses multi-line paste input. Every non-blank line yields
// exactly one ParsedPlayer (valid or not) in input order; blank lines are
// skipped without a placeholder.
func ParseText(text string) []model.ParsedPlayer {
	players := []model.ParsedPlayer{}
	for _, line := range lineSplitRe.Split(text, -1) {
		if p := ParseLine(line); p != nil {
			players = append(players, *p)
		}
	}
	return players
}
