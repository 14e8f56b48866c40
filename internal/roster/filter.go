package roster

import (
	"regexp"
	"strings"
)

// Surface patterns of the supported line formats, used to pick roster-like
// lines out of arbitrary extracted text (e.g. text pulled from a PDF team
// sheet) before it reaches the parser.
var candidatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+h?\s+[A-Za-z]`),      // "7 Ivan" / "7h Ivan"
	regexp.MustCompile(`^[A-Za-z]h?\s+[A-Za-z]`), // "A Ivan"
	regexp.MustCompile(`\([0-9A-Za-z]+\)`),       // "(7)" / "(A)"
	regexp.MustCompile(`-\s*[0-9A-Za-z]+$`),      // "- 7" / "- A"
}

var (
	multiNewlineRe   = regexp.MustCompile(`\n{3,}`)
	inlineSpaceRunRe = regexp.MustCompile(`[ \t]+`)
)

// FilterCandidateLines normalizes line endings and whitespace in extracted
// text and keeps only the lines that look like roster entries. When no line
// matches any pattern, the whole normalized text is returned so the parser
// can still make its best attempt.
func FilterCandidateLines(text string) string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = multiNewlineRe.ReplaceAllString(normalized, "\n\n")
	normalized = inlineSpaceRunRe.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	var candidates []string
	for _, line := range strings.Split(normalized, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		for _, pattern := range candidatePatterns {
			if pattern.MatchString(trimmed) {
				candidates = append(candidates, trimmed)
				break
			}
		}
	}

	if len(candidates) == 0 {
		return normalized
	}
	return strings.Join(candidates, "\n")
}
