package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prospecta/internal/model"
)

// SettingsStore persists the singleton settings record as a JSON object file.
type SettingsStore struct {
	mu   sync.Mutex
	path string
}

func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load returns the current settings. Seeds and persists the defaults if no
// settings file exists yet.
func (s *SettingsStore) Load(ctx context.Context) (*model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := &model.Settings{}
	err := readFile(s.path, settings)
	if isNotExist(err) {
		defaults := model.DefaultSettings()
		if saveErr := writeFile(s.path, defaults); saveErr != nil {
			return nil, saveErr
		}
		slog.Info("settings: seeded defaults", "path", s.path)
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Save persists the settings record.
func (s *SettingsStore) Save(ctx context.Context, settings *model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeFile(s.path, settings)
}
