package modes

// Preview word lists keyed by language. Unknown languages fall back to english.
var sampleWords = map[string][]string{
	"english": {"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog", "while", "people", "watch"},
	"german":  {"der", "schnelle", "braune", "fuchs", "springt", "über", "den", "faulen", "hund", "und", "alle", "schauen"},
	"spanish": {"el", "rápido", "zorro", "marrón", "salta", "sobre", "el", "perro", "perezoso", "mientras", "todos", "miran"},
	"french":  {"le", "renard", "brun", "rapide", "saute", "par", "dessus", "le", "chien", "paresseux", "sous", "regards"},
}

// Words returns the preview word list for lang and whether lang was known.
func Words(lang string) ([]string, bool) {
	words, ok := sampleWords[lang]
	if !ok {
		words = sampleWords[DefaultLanguage]
	}
	out := make([]string, len(words))
	copy(out, words)
	return out, ok
}
