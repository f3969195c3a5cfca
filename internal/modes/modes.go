// Package modes turns the raw [modes] and [language] tables into typed
// settings, applying defaults for anything the configuration leaves unset.
package modes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/camerondurham/typy-cli/internal/config"
)

// Mode selects how sample words are transformed before typing.
type Mode string

const (
	ModeNormal      Mode = "normal"
	ModeUppercase   Mode = "uppercase"
	ModePunctuation Mode = "punctuation"
)

const (
	DefaultMode              = ModeNormal
	DefaultUppercaseChance   = 0.25
	DefaultPunctuationChance = 0.1
	DefaultLanguage          = "english"
)

var modeOrder = []Mode{ModeNormal, ModeUppercase, ModePunctuation}

// Settings is the typed form of [modes].
type Settings struct {
	Mode              Mode
	UppercaseChance   float64
	PunctuationChance float64
}

// Defaults returns the settings used when [modes] is absent.
func Defaults() Settings {
	return Settings{
		Mode:              DefaultMode,
		UppercaseChance:   DefaultUppercaseChance,
		PunctuationChance: DefaultPunctuationChance,
	}
}

// Parse converts t into Settings. Unset fields use defaults. Invalid fields
// also fall back to their defaults, and every problem is reported in the
// returned error.
func Parse(t *config.ModesTable) (Settings, error) {
	s := Defaults()
	if t == nil {
		return s, nil
	}

	var errs []error
	if t.DefaultMode != nil {
		m, err := ParseMode(*t.DefaultMode)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.Mode = m
		}
	}
	if t.UppercaseChance != nil {
		c, err := parseChance("uppercase_chance", *t.UppercaseChance)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.UppercaseChance = c
		}
	}
	if t.PunctuationChance != nil {
		c, err := parseChance("punctuation_chance", *t.PunctuationChance)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.PunctuationChance = c
		}
	}
	return s, errors.Join(errs...)
}

// ParseMode matches a mode name case-insensitively.
func ParseMode(raw string) (Mode, error) {
	name := Mode(strings.ToLower(strings.TrimSpace(raw)))
	for _, m := range modeOrder {
		if m == name {
			return m, nil
		}
	}
	return DefaultMode, fmt.Errorf("default_mode: unknown mode %q", raw)
}

// Names returns the known mode names in display order.
func Names() []string {
	out := make([]string, len(modeOrder))
	for i, m := range modeOrder {
		out[i] = string(m)
	}
	return out
}

// Next returns the mode after m, wrapping around.
func Next(m Mode) Mode {
	for i, candidate := range modeOrder {
		if candidate == m {
			return modeOrder[(i+1)%len(modeOrder)]
		}
	}
	return modeOrder[0]
}

func parseChance(key, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, raw)
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%s: %v is outside [0, 1]", key, v)
	}
	return v, nil
}

// ResolveLanguage returns the configured language, lower-cased, or
// DefaultLanguage when unset or blank.
func ResolveLanguage(t *config.LanguageTable) string {
	if t == nil || t.Lang == nil {
		return DefaultLanguage
	}
	lang := strings.ToLower(strings.TrimSpace(*t.Lang))
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
