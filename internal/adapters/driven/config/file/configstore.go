package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Defaults holds the user-configurable defaults applied by the CLI when
// the corresponding flag is not given.
type Defaults struct {
	// Decimals is the number of decimal places for printed floats.
	Decimals int `toml:"decimals"`

	// Seed is the default shuffle seed.
	Seed int64 `toml:"seed"`

	// Fill is the default fill value for fill-missing, as entered.
	Fill string `toml:"fill"`

	// Stopwords is the default stopword list for remove-stopwords.
	Stopwords []string `toml:"stopwords"`
}

// DefaultDefaults returns the built-in defaults used when no config file
// exists or a field was never set.
func DefaultDefaults() Defaults {
	return Defaults{
		Decimals: 4,
		Seed:     123,
		Fill:     "0",
	}
}

// ConfigStore is a file-based store for CLI defaults using TOML.
// Configuration lives in a TOML file within the prepkit config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	defaults Defaults
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.prepkit/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".prepkit")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		defaults: DefaultDefaults(),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Defaults returns a copy of the current defaults.
func (s *ConfigStore) Defaults() Defaults {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.defaults
	d.Stopwords = append([]string(nil), s.defaults.Stopwords...)
	return d
}

// SetDecimals stores the decimal places default and persists immediately.
func (s *ConfigStore) SetDecimals(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.defaults.Decimals = n
	return s.save()
}

// SetSeed stores the shuffle seed default and persists immediately.
func (s *ConfigStore) SetSeed(seed int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.defaults.Seed = seed
	return s.save()
}

// SetFill stores the fill value default and persists immediately.
func (s *ConfigStore) SetFill(fill string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.defaults.Fill = fill
	return s.save()
}

// SetStopwords stores the default stopword list and persists immediately.
func (s *ConfigStore) SetStopwords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.defaults.Stopwords = append([]string(nil), words...)
	return s.save()
}

// Reset restores the built-in defaults and persists the result.
func (s *ConfigStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.defaults = DefaultDefaults()
	return s.save()
}

// save writes the defaults to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.defaults)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads the defaults from the TOML file. A missing file leaves the
// built-in defaults in place.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.defaults = DefaultDefaults()
			return nil
		}
		return err
	}

	loaded := DefaultDefaults()
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	s.defaults = loaded
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
