package store

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

// FileGlobalStore implements GlobalStore using the filesystem.
type FileGlobalStore struct {
	paths *config.Paths
}

// NewGlobalStore creates a new global store.
func NewGlobalStore(paths *config.Paths) *FileGlobalStore {
	return &FileGlobalStore{paths: paths}
}

// Load reads the global config from disk.
// Returns an empty config if the file doesn't exist.
func (s *FileGlobalStore) Load() (*model.GlobalConfig, error) {
	path := s.paths.ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.GlobalConfig{}, nil
		}
		return nil, err
	}

	var cfg model.GlobalConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Strict version validation (only if file exists)
	if cfg.SwatchSchema == "" {
		return nil, version.MissingGlobalSchema(path)
	}
	if cfg.SwatchSchema != version.CurrentGlobalSchema() {
		return nil, version.InvalidGlobalSchema(path, cfg.SwatchSchema)
	}

	return &cfg, nil
}

// Save writes the global config to disk.
func (s *FileGlobalStore) Save(cfg *model.GlobalConfig) error {
	// Stamp current schema version
	cfg.SwatchSchema = version.CurrentGlobalSchema()

	if err := os.MkdirAll(s.paths.Root(), 0755); err != nil {
		return err
	}

	f, err := os.Create(s.paths.ConfigPath())
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the global config file if it doesn't exist.
func (s *FileGlobalStore) EnsureExists() error {
	if _, err := os.Stat(s.paths.ConfigPath()); os.IsNotExist(err) {
		return s.Save(&model.GlobalConfig{})
	}
	return nil
}
