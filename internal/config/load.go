package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	localConfigPath = "config.toml"
	homeConfigPath  = ".config/typy/config.toml"
)

// ReadError records a candidate path that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Report describes how a configuration was discovered. The loader never
// surfaces these as errors; callers decide whether to warn.
type Report struct {
	// Path is the candidate whose content was used, empty when none was readable.
	Path string
	// ReadErrors lists every candidate tried before Path (or all of them).
	ReadErrors []*ReadError
	// DecodeErr is set when the content was not valid for Config.
	DecodeErr error
}

// Found reports whether a candidate file was read.
func (r Report) Found() bool {
	return r.Path != ""
}

// Warnings returns the problems worth showing to a user: candidates that exist
// but could not be read, and decode failures. Missing files are not warnings.
func (r Report) Warnings() []error {
	var out []error
	for _, re := range r.ReadErrors {
		if errors.Is(re.Err, fs.ErrNotExist) {
			continue
		}
		out = append(out, re)
	}
	if r.DecodeErr != nil {
		out = append(out, fmt.Errorf("parse %s: %w", r.Path, r.DecodeErr))
	}
	return out
}

// Candidates returns the configuration paths in probe order: ./config.toml,
// then ~/.config/typy/config.toml when a home directory can be resolved.
func Candidates() []string {
	paths := []string{"./" + localConfigPath}
	if home, err := homedir.Dir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, filepath.FromSlash(homeConfigPath)))
	}
	return paths
}

// HomePath returns the home-directory candidate, or an error when the home
// directory cannot be resolved.
func HomePath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	if home == "" {
		return "", fmt.Errorf("resolve home dir: empty")
	}
	return filepath.Join(home, filepath.FromSlash(homeConfigPath)), nil
}

// Load reads the first readable candidate and decodes it. It never fails: a
// missing, unreadable or malformed file yields a Config with every table unset.
func Load() Config {
	cfg, _ := LoadFrom(Candidates()...)
	return cfg
}

// LoadFrom runs the Load algorithm over an explicit candidate list.
func LoadFrom(paths ...string) (Config, Report) {
	var report Report
	var content []byte

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			report.ReadErrors = append(report.ReadErrors, &ReadError{Path: path, Err: err})
			continue
		}
		report.Path = path
		content = data
		break
	}

	cfg, err := Decode(content)
	if err != nil {
		report.DecodeErr = err
		return Config{}, report
	}
	return cfg, report
}

// Decode parses TOML into a Config. Unknown keys and tables are ignored; a
// recognized key with a non-string value is an error.
func Decode(data []byte) (Config, error) {
	var cfg Config
	if len(data) == 0 {
		return cfg, nil
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
