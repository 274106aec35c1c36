// Package title normalises movie titles to Title Case.
//
// Each word is lowercased and its first letter uppercased, except minor
// words ("ka", "of", "the", ...) which stay lowercase unless they open the
// title. Runs of whitespace collapse to a single space.
//
//	title.Fix("  DILWALE   DULHANIA   LE   JAYENGE  ") // "Dilwale Dulhania Le Jayenge"
//	title.Fix("dil ka kya kare")                       // "Dil ka Kya Kare"
package title

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEmpty is returned for a title that is empty after trimming whitespace.
var ErrEmpty = errors.New("title is empty")

// DefaultMinorWords is the minor-word set applied when none is configured.
//
// "se" is deliberately absent: existing titles were normalised without it.
// Configure it explicitly to keep "se" lowercase.
var DefaultMinorWords = []string{"ka", "ki", "ke", "aur", "ya", "the", "of", "in", "a", "an"}

// Normalizer fixes titles against a fixed minor-word set.
// It is immutable after New and safe for concurrent use.
type Normalizer struct {
	minor map[string]struct{}
}

var defaultNormalizer = New()

// New returns a Normalizer for the given minor words. With no words it uses
// DefaultMinorWords. Words are matched case-insensitively.
func New(minorWords ...string) *Normalizer {
	if len(minorWords) == 0 {
		minorWords = DefaultMinorWords
	}

	lower := cases.Lower(language.Und)
	minor := make(map[string]struct{}, len(minorWords))
	for _, w := range minorWords {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		minor[lower.String(w)] = struct{}{}
	}

	return &Normalizer{minor: minor}
}

// Fix normalises title with DefaultMinorWords.
func Fix(title string) (string, error) {
	return defaultNormalizer.Fix(title)
}

// IsMinor reports whether word is in the minor-word set.
func (n *Normalizer) IsMinor(word string) bool {
	_, ok := n.minor[cases.Lower(language.Und).String(word)]
	return ok
}

// Fix returns title in Title Case, or ErrEmpty if it holds no words.
func (n *Normalizer) Fix(title string) (string, error) {
	words := strings.Fields(title)
	if len(words) == 0 {
		return "", ErrEmpty
	}

	// Casers carry state between calls and must not be shared across
	// goroutines, so each Fix gets its own pair.
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	for i, word := range words {
		word = lower.String(word)
		if i > 0 && n.IsMinor(word) {
			words[i] = word
			continue
		}
		words[i] = capitalize(upper, word)
	}

	return strings.Join(words, " "), nil
}

// capitalize uppercases the first rune of an already lowercased word.
func capitalize(upper cases.Caser, word string) string {
	_, size := utf8.DecodeRuneInString(word)
	return upper.String(word[:size]) + word[size:]
}
