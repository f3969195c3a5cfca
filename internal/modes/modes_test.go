package modes

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/camerondurham/typy-cli/internal/config"
)

func TestParse_NilUsesDefaults(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) returned error: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("Parse(nil) = %#v, want %#v", s, Defaults())
	}
}

func TestParse_ValidValues(t *testing.T) {
	s, err := Parse(&config.ModesTable{
		DefaultMode:       config.String("  Uppercase "),
		UppercaseChance:   config.String("0.5"),
		PunctuationChance: config.String(" 1 "),
	})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s.Mode != ModeUppercase {
		t.Fatalf("Mode = %q, want %q", s.Mode, ModeUppercase)
	}
	if s.UppercaseChance != 0.5 {
		t.Fatalf("UppercaseChance = %v, want 0.5", s.UppercaseChance)
	}
	if s.PunctuationChance != 1 {
		t.Fatalf("PunctuationChance = %v, want 1", s.PunctuationChance)
	}
}

func TestParse_PartialTableKeepsDefaults(t *testing.T) {
	s, err := Parse(&config.ModesTable{DefaultMode: config.String("punctuation")})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s.Mode != ModePunctuation {
		t.Fatalf("Mode = %q, want %q", s.Mode, ModePunctuation)
	}
	if s.UppercaseChance != DefaultUppercaseChance || s.PunctuationChance != DefaultPunctuationChance {
		t.Fatalf("chances = %v/%v, want defaults", s.UppercaseChance, s.PunctuationChance)
	}
}

func TestParse_InvalidValuesReportedAndDefaulted(t *testing.T) {
	cases := []struct {
		name    string
		table   config.ModesTable
		wantErr string
	}{
		{"unknown mode", config.ModesTable{DefaultMode: config.String("zen")}, "unknown mode"},
		{"not a number", config.ModesTable{UppercaseChance: config.String("often")}, "uppercase_chance"},
		{"above one", config.ModesTable{PunctuationChance: config.String("1.5")}, "outside [0, 1]"},
		{"negative", config.ModesTable{UppercaseChance: config.String("-0.1")}, "outside [0, 1]"},
		{"empty", config.ModesTable{PunctuationChance: config.String("")}, "punctuation_chance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := tc.table
			s, err := Parse(&table)
			if err == nil {
				t.Fatalf("Parse returned nil error, want %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Parse error = %q, want it to mention %q", err.Error(), tc.wantErr)
			}
			if s != Defaults() {
				t.Fatalf("Parse = %#v, want defaults %#v", s, Defaults())
			}
		})
	}
}

func TestParse_JoinsMultipleErrors(t *testing.T) {
	_, err := Parse(&config.ModesTable{
		DefaultMode:     config.String("zen"),
		UppercaseChance: config.String("x"),
	})
	if err == nil {
		t.Fatalf("Parse returned nil error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "default_mode") || !strings.Contains(msg, "uppercase_chance") {
		t.Fatalf("Parse error = %q, want both fields mentioned", msg)
	}
}

func TestNext(t *testing.T) {
	if got := Next(ModeNormal); got != ModeUppercase {
		t.Fatalf("Next(normal) = %q, want uppercase", got)
	}
	if got := Next(ModePunctuation); got != ModeNormal {
		t.Fatalf("Next(punctuation) = %q, want normal", got)
	}
	if got := Next(Mode("other")); got != ModeNormal {
		t.Fatalf("Next(other) = %q, want normal", got)
	}
}

func TestResolveLanguage(t *testing.T) {
	if got := ResolveLanguage(nil); got != DefaultLanguage {
		t.Fatalf("ResolveLanguage(nil) = %q, want %q", got, DefaultLanguage)
	}
	if got := ResolveLanguage(&config.LanguageTable{}); got != DefaultLanguage {
		t.Fatalf("ResolveLanguage(unset) = %q, want %q", got, DefaultLanguage)
	}
	if got := ResolveLanguage(&config.LanguageTable{Lang: config.String("   ")}); got != DefaultLanguage {
		t.Fatalf("ResolveLanguage(blank) = %q, want %q", got, DefaultLanguage)
	}
	if got := ResolveLanguage(&config.LanguageTable{Lang: config.String(" German ")}); got != "german" {
		t.Fatalf("ResolveLanguage(German) = %q, want german", got)
	}
}

func TestWords_UnknownFallsBackToEnglish(t *testing.T) {
	words, ok := Words("klingon")
	if ok {
		t.Fatalf("Words(klingon) ok = true, want false")
	}
	english, _ := Words("english")
	if Sentence(words) != Sentence(english) {
		t.Fatalf("Words(klingon) = %v, want english list", words)
	}

	words[0] = "mutated"
	again, _ := Words("english")
	if again[0] == "mutated" {
		t.Fatalf("Words should return a copy")
	}
}

func TestApply(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}

	normal := Apply(words, Settings{Mode: ModeNormal, UppercaseChance: 1, PunctuationChance: 1}, rand.New(rand.NewPCG(1, 2)))
	if Sentence(normal) != "alpha beta gamma" {
		t.Fatalf("normal = %q, want unchanged", Sentence(normal))
	}

	upper := Apply(words, Settings{Mode: ModeUppercase, UppercaseChance: 1}, rand.New(rand.NewPCG(1, 2)))
	if Sentence(upper) != "Alpha Beta Gamma" {
		t.Fatalf("uppercase = %q, want %q", Sentence(upper), "Alpha Beta Gamma")
	}

	none := Apply(words, Settings{Mode: ModeUppercase, UppercaseChance: 0}, rand.New(rand.NewPCG(1, 2)))
	if Sentence(none) != "alpha beta gamma" {
		t.Fatalf("uppercase chance 0 = %q, want unchanged", Sentence(none))
	}

	punct := Apply(words, Settings{Mode: ModePunctuation, PunctuationChance: 1}, rand.New(rand.NewPCG(1, 2)))
	for i, w := range punct {
		if !strings.HasPrefix(w, words[i]) || len(w) != len(words[i])+1 {
			t.Fatalf("punctuation word %d = %q, want %q plus one mark", i, w, words[i])
		}
	}

	if words[0] != "alpha" {
		t.Fatalf("Apply mutated its input")
	}
}
