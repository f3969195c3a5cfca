package config

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
)

// resetGlobal clears the one-shot state so a test can observe first access.
func resetGlobal(t *testing.T) {
	t.Helper()
	prevLoad := loadGlobal
	t.Cleanup(func() {
		globalOnce = sync.Once{}
		globalStore = nil
		loadGlobal = prevLoad
	})
	globalOnce = sync.Once{}
	globalStore = nil
}

func TestGlobal_LoadsOnceAndReturnsSameStore(t *testing.T) {
	resetGlobal(t)

	var calls atomic.Int32
	loadGlobal = func() *Store {
		calls.Add(1)
		return NewStore(Config{Language: &LanguageTable{Lang: String("english")}}, Report{})
	}

	var wg sync.WaitGroup
	stores := make([]*Store, 16)
	for i := range stores {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stores[i] = Global()
		}(i)
	}
	wg.Wait()

	for i, s := range stores {
		if s != stores[0] {
			t.Fatalf("Global() call %d returned %p, want %p", i, s, stores[0])
		}
	}
	if Global() != stores[0] {
		t.Fatalf("Global() returned a different store on a later call")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("load calls = %d, want 1", got)
	}
	assertString(t, "language.lang", Global().GetLanguage().Lang, "english")
}

func TestGlobal_ReadsFileOnlyOnFirstAccess(t *testing.T) {
	resetGlobal(t)
	wd, _ := isolate(t)
	path := filepath.Join(wd, "config.toml")
	writeFile(t, path, "[language]\nlang = \"first\"\n")

	first := Global()
	assertString(t, "language.lang", first.GetLanguage().Lang, "first")

	writeFile(t, path, "[language]\nlang = \"second\"\n")
	second := Global()
	if second != first {
		t.Fatalf("Global() returned a new store after the file changed")
	}
	assertString(t, "language.lang", second.GetLanguage().Lang, "first")
	if second.Report().Path != "./config.toml" {
		t.Fatalf("Report().Path = %q, want ./config.toml", second.Report().Path)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore(Config{Theme: &ThemeTable{Fg: String("green")}}, Report{})

	cfg := s.Get()
	*cfg.Theme.Fg = "red"
	cfg.Graph = &GraphTable{Data: String("blue")}

	assertString(t, "theme.fg", s.GetTheme().Fg, "green")
	if s.GetGraph() != nil {
		t.Fatalf("GetGraph() = %#v, want nil", s.GetGraph())
	}
}

func TestNewStore_CopiesInput(t *testing.T) {
	in := Config{Cursor: &CursorTable{Style: String("steady-bar")}}
	s := NewStore(in, Report{})

	*in.Cursor.Style = "blinking-block"
	assertString(t, "cursor.style", s.GetCursor().Style, "steady-bar")
}

func TestStore_UpdateIsVisibleToReaders(t *testing.T) {
	s := NewStore(Config{}, Report{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Update(func(c *Config) {
				c.Modes = &ModesTable{DefaultMode: String("punctuation")}
			})
		}()
		go func() {
			defer wg.Done()
			_ = s.Get()
		}()
	}
	wg.Wait()

	assertString(t, "modes.default_mode", s.GetModes().DefaultMode, "punctuation")
}

func TestStore_ReportCopiesReadErrors(t *testing.T) {
	s := NewStore(Config{}, Report{ReadErrors: []*ReadError{{Path: "a"}}})

	r := s.Report()
	r.ReadErrors[0] = &ReadError{Path: "b"}

	if got := s.Report().ReadErrors[0].Path; got != "a" {
		t.Fatalf("ReadErrors[0].Path = %q, want a", got)
	}
}
