package ui

import "unicode/utf8"

// session tracks typed input against a target sentence.
type session struct {
	target []rune
	typed  []rune
}

func newSession(text string) session {
	return session{target: []rune(text)}
}

// Type records r at the cursor. Input past the end is ignored.
func (s *session) Type(r rune) {
	if s.Done() {
		return
	}
	s.typed = append(s.typed, r)
}

// Backspace removes the last typed rune.
func (s *session) Backspace() {
	if len(s.typed) > 0 {
		s.typed = s.typed[:len(s.typed)-1]
	}
}

func (s session) Pos() int { return len(s.typed) }

func (s session) Done() bool { return len(s.typed) >= len(s.target) }

// Errors counts typed runes that differ from the target.
func (s session) Errors() int {
	n := 0
	for i, r := range s.typed {
		if r != s.target[i] {
			n++
		}
	}
	return n
}

// charState reports how the rune at index i should be drawn.
type charState int

const (
	charPending charState = iota
	charCorrect
	charWrong
	charCursor
)

func (s session) state(i int) charState {
	switch {
	case i < len(s.typed) && s.typed[i] == s.target[i]:
		return charCorrect
	case i < len(s.typed):
		return charWrong
	case i == len(s.typed):
		return charCursor
	default:
		return charPending
	}
}

// WordAccuracy returns the fraction of correct runes for each fully typed
// word, in order. A word counts as typed once the cursor has passed it.
func (s session) WordAccuracy() []float64 {
	var out []float64
	start := 0
	for i := 0; i <= len(s.target); i++ {
		if i < len(s.target) && s.target[i] != ' ' {
			continue
		}
		if i > start && len(s.typed) >= i {
			correct := 0
			for j := start; j < i; j++ {
				if s.typed[j] == s.target[j] {
					correct++
				}
			}
			out = append(out, float64(correct)/float64(i-start))
		}
		start = i + 1
	}
	return out
}

func runeString(r rune) string {
	if !utf8.ValidRune(r) {
		return "?"
	}
	return string(r)
}
