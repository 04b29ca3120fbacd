package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists section data between runs. Sections are opaque
// string-keyed maps here; typed access lives in the Section
// implementations.
type Store interface {
	// Load reads the persisted data from disk
	Load() error

	// Save writes the current data to disk
	Save() error

	// GetSection returns a copy of one section's data
	GetSection(sectionID string) (map[string]interface{}, error)

	// SetSection replaces one section's data
	SetSection(sectionID string, data map[string]interface{}) error

	// GetAll returns a copy of every section
	GetAll() (map[string]map[string]interface{}, error)

	// SetAll replaces every section
	SetAll(data map[string]map[string]interface{}) error
}

// legacyFileName is the flat single-key settings file written by older
// releases, e.g. {"default_search_engine": "duckduckgo"}.
const legacyFileName = "ringzauber_config.json"

// FileStore keeps the configuration in a versioned JSON file.
type FileStore struct {
	path     string
	data     map[string]map[string]interface{}
	mu       sync.RWMutex
	version  string
	modified bool
}

// fileLayout is the on-disk shape of the config file.
type fileLayout struct {
	Version  string                            `json:"version"`
	Sections map[string]map[string]interface{} `json:"sections"`
}

// NewFileStore opens (or initializes) the store at path. An empty path
// means ~/.ringzauber/config.json. A missing file is not an error.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".ringzauber", "config.json")
	}

	store := &FileStore{
		path:    path,
		data:    make(map[string]map[string]interface{}),
		version: "1.0",
	}

	if err := store.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	return store, nil
}

// Load reads the config file. When it does not exist yet, a legacy
// flat settings file in the same directory is imported into the search
// section instead.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]map[string]interface{})
			s.importLegacy()
			return nil
		}
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var layout fileLayout
	if err := json.NewDecoder(file).Decode(&layout); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}

	s.version = layout.Version
	s.data = layout.Sections
	if s.data == nil {
		s.data = make(map[string]map[string]interface{})
	}
	s.modified = false

	return nil
}

// importLegacy reads the old flat settings file, if any, and maps its
// keys onto sections. Caller holds the lock.
func (s *FileStore) importLegacy() {
	legacyPath := filepath.Join(filepath.Dir(s.path), legacyFileName)
	raw, err := os.ReadFile(legacyPath)
	if err != nil {
		return
	}

	var flat map[string]interface{}
	if err := json.Unmarshal(raw, &flat); err != nil {
		return
	}

	if engine, ok := flat["default_search_engine"].(string); ok && engine != "" {
		s.data[SectionIDSearch] = map[string]interface{}{
			"default_search_engine": engine,
		}
		s.modified = true
	}
}

// Save writes the current data through a temp file and a rename, so a
// crash mid-write never leaves a half-written config behind.
func (s *FileStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tempPath := s.path + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(fileLayout{Version: s.version, Sections: s.data}); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	s.modified = false
	return nil
}

// copySection clones one section map so callers never share the
// store's backing data.
func copySection(data map[string]interface{}) map[string]interface{} {
	clone := make(map[string]interface{}, len(data))
	for k, v := range data {
		clone[k] = v
	}
	return clone
}

// GetSection returns a copy of the named section; unknown sections
// yield an empty map rather than an error.
func (s *FileStore) GetSection(sectionID string) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if data, exists := s.data[sectionID]; exists {
		return copySection(data), nil
	}
	return make(map[string]interface{}), nil
}

// SetSection replaces the named section's data.
func (s *FileStore) SetSection(sectionID string, data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[sectionID] = copySection(data)
	s.modified = true
	return nil
}

// GetAll returns a copy of every section.
func (s *FileStore) GetAll() (map[string]map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clone := make(map[string]map[string]interface{}, len(s.data))
	for sectionID, sectionData := range s.data {
		clone[sectionID] = copySection(sectionData)
	}
	return clone, nil
}

// SetAll replaces every section at once.
func (s *FileStore) SetAll(data map[string]map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := make(map[string]map[string]interface{}, len(data))
	for sectionID, sectionData := range data {
		clone[sectionID] = copySection(sectionData)
	}

	s.data = clone
	s.modified = true
	return nil
}

// IsModified reports whether there are unsaved changes.
func (s *FileStore) IsModified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modified
}
