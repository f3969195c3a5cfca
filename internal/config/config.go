package config

// Config is the decoded typy configuration file. Every table is optional and
// every field inside a table is optional; nil means the file did not set it.
type Config struct {
	Theme    *ThemeTable    `toml:"theme,omitempty"`
	Graph    *GraphTable    `toml:"graph,omitempty"`
	Cursor   *CursorTable   `toml:"cursor,omitempty"`
	Modes    *ModesTable    `toml:"modes,omitempty"`
	Language *LanguageTable `toml:"language,omitempty"`
}

// ThemeTable holds the colors used when rendering typed text.
type ThemeTable struct {
	Fg      *string `toml:"fg,omitempty"`
	Missing *string `toml:"missing,omitempty"`
	Error   *string `toml:"error,omitempty"`
	Accent  *string `toml:"accent,omitempty"`
}

// GraphTable holds the colors of the results graph.
type GraphTable struct {
	Data  *string `toml:"data,omitempty"`
	Title *string `toml:"title,omitempty"`
	Axis  *string `toml:"axis,omitempty"`
}

// CursorTable selects the cursor shape.
type CursorTable struct {
	Style *string `toml:"style,omitempty"`
}

// ModesTable holds the typing mode knobs. Values are kept as raw text and
// parsed by the modes package.
type ModesTable struct {
	DefaultMode       *string `toml:"default_mode,omitempty"`
	UppercaseChance   *string `toml:"uppercase_chance,omitempty"`
	PunctuationChance *string `toml:"punctuation_chance,omitempty"`
}

// LanguageTable selects the word list language.
type LanguageTable struct {
	Lang *string `toml:"lang,omitempty"`
}

// GetTheme returns a copy of the [theme] table, or nil when unset.
func (c Config) GetTheme() *ThemeTable { return c.Theme.clone() }

// GetGraph returns a copy of the [graph] table, or nil when unset.
func (c Config) GetGraph() *GraphTable { return c.Graph.clone() }

// GetCursor returns a copy of the [cursor] table, or nil when unset.
func (c Config) GetCursor() *CursorTable { return c.Cursor.clone() }

// GetModes returns a copy of the [modes] table, or nil when unset.
func (c Config) GetModes() *ModesTable { return c.Modes.clone() }

// GetLanguage returns a copy of the [language] table, or nil when unset.
func (c Config) GetLanguage() *LanguageTable { return c.Language.clone() }

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	return Config{
		Theme:    c.Theme.clone(),
		Graph:    c.Graph.clone(),
		Cursor:   c.Cursor.clone(),
		Modes:    c.Modes.clone(),
		Language: c.Language.clone(),
	}
}

// String returns a pointer to s. It is a convenience for building tables in code.
func String(s string) *string { return &s }

// Value returns *p, or fallback when p is nil.
func Value(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

func (t *ThemeTable) clone() *ThemeTable {
	if t == nil {
		return nil
	}
	return &ThemeTable{
		Fg:      cloneString(t.Fg),
		Missing: cloneString(t.Missing),
		Error:   cloneString(t.Error),
		Accent:  cloneString(t.Accent),
	}
}


func (t *GraphTable) clone() *GraphTable {
	if t == nil {
		return nil
	}
	return &GraphTable{
		Data:  cloneString(t.Data),
		Title: cloneString(t.Title),
		Axis:  cloneString(t.Axis),
	}
}


func (t *CursorTable) clone() *CursorTable {
	if t == nil {
		return nil
	}
	return &CursorTable{Style: cloneString(t.Style)}
}


func (t *ModesTable) clone() *ModesTable {
	if t == nil {
		return nil
	}
	return &ModesTable{
		DefaultMode:       cloneString(t.DefaultMode),
		UppercaseChance:   cloneString(t.UppercaseChance),
		PunctuationChance: cloneString(t.PunctuationChance),
	}
}


func (t *LanguageTable) clone() *LanguageTable {
	if t == nil {
		return nil
	}
	return &LanguageTable{Lang: cloneString(t.Lang)}
}


func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}
