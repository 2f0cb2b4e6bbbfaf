package clue

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// enumerationRe matches crossword enumeration groups in clue text,
// e.g. "(6)", "(6,3)", "(4-2, 3)".
var enumerationRe = regexp.MustCompile(`\(([0-9][0-9,\-\s]*)\)`)

var digitsRe = regexp.MustCompile(`[0-9]+`)

// NormalizeAnswer reduces an answer to its canonical letter sequence:
// NFKC-normalized, letters and digits only, upper-cased. The length of
// the result is the answer's contribution to length resolution, and
// the runes themselves become fixed-letter constraints.
func NormalizeAnswer(answer string) string {
	var sb strings.Builder
	for _, r := range norm.NFKC.String(answer) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToUpper(r))
		}
	}
	return sb.String()
}

// resolveLength applies the length resolution priority to an entry.
// Returns 0 when nothing resolves.
func resolveLength(e Entry) int {
	if e.Length > 0 {
		return e.Length
	}
	if n := len([]rune(NormalizeAnswer(e.Answer))); n > 0 {
		return n
	}
	return enumerationLength(e.Clue)
}

// enumerationLength sums the numeric groups of every parenthetical
// enumeration found in the clue text. "(6,3)" yields 9; text without
// an enumeration yields 0.
func enumerationLength(clueText string) int {
	total := 0
	for _, group := range enumerationRe.FindAllStringSubmatch(clueText, -1) {
		for _, digits := range digitsRe.FindAllString(group[1], -1) {
			n, err := strconv.Atoi(digits)
			if err != nil {
				// Unreachable for the digit-only regexp, but be safe.
				continue
			}
			total += n
		}
	}
	return total
}
