package config

import "sync"

// Store guards a Config shared across goroutines. Readers always receive
// deep copies.
type Store struct {
	mu     sync.RWMutex
	cfg    Config
	report Report
}

// NewStore wraps an already-loaded configuration.
func NewStore(cfg Config, report Report) *Store {
	return &Store{cfg: cfg.Clone(), report: report}
}

// Get returns a copy of the current configuration.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Report returns the discovery report captured when the store was built.
func (s *Store) Report() Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := s.report
	if len(s.report.ReadErrors) > 0 {
		r.ReadErrors = make([]*ReadError, len(s.report.ReadErrors))
		copy(r.ReadErrors, s.report.ReadErrors)
	}
	return r
}

// Update applies mut to the stored configuration under the write lock.
func (s *Store) Update(mut func(*Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mut(&s.cfg)
}

func (s *Store) GetTheme() *ThemeTable { return s.Get().Theme }
func (s *Store) GetGraph() *GraphTable { return s.Get().Graph }
func (s *Store) GetCursor() *CursorTable { return s.Get().Cursor }
func (s *Store) GetModes() *ModesTable { return s.Get().Modes }
func (s *Store) GetLanguage() *LanguageTable { return s.Get().Language }

var (
	globalOnce  sync.Once
	globalStore *Store

	// loadGlobal builds the process-wide store; swapped in tests.
	loadGlobal = func() *Store {
		cfg, report := LoadFrom(Candidates()...)
		return NewStore(cfg, report)
	}
)

// Global returns the process-wide Store. The first call loads the
// configuration; later calls return the same Store without touching disk.
func Global() *Store {
	globalOnce.Do(func() {
		globalStore = loadGlobal()
	})
	return globalStore
}
