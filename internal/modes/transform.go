package modes

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

var punctuation = []string{".", ",", "!", "?", ";", ":"}

// Apply transforms words for the given settings using rng. Normal mode
// returns the words unchanged; uppercase mode capitalises each word with
// UppercaseChance; punctuation mode appends a mark with PunctuationChance.
func Apply(words []string, s Settings, rng *rand.Rand) []string {
	out := make([]string, len(words))
	copy(out, words)

	switch s.Mode {
	case ModeUppercase:
		for i, w := range out {
			if rng.Float64() < s.UppercaseChance {
				out[i] = capitalize(w)
			}
		}
	case ModePunctuation:
		for i, w := range out {
			if rng.Float64() < s.PunctuationChance {
				out[i] = w + punctuation[rng.IntN(len(punctuation))]
			}
		}
	}
	return out
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// Sentence joins words with single spaces.
func Sentence(words []string) string {
	return strings.Join(words, " ")
}
