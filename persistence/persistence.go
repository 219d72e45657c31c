package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const (
	tasksItem    = "tasks"
	settingsItem = "config"
)

// Data is the saved to-do list. SavedTasks is in creation order, oldest first.
type Data struct {
	SavedTasks []string `json:"savedTasks"`
}

// Settings are the user-editable overlay options
type Settings struct {
	UseLargerFont bool   `json:"useLargerFont"`
	OpenListKey   string `json:"openListKey"`
}

// DefaultSettings returns the settings written on first run
func DefaultSettings() Settings {
	return Settings{
		UseLargerFont: false,
		OpenListKey:   "F2",
	}
}

// ItemStore is the key/value backend. *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes the task list and settings
type Store struct {
	items ItemStore
}

// Open initializes a gdata-backed store for the given app name
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata %s: %w", appName, err)
	}
	return NewStore(m), nil
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// LoadData loads the saved task list. A missing item yields an empty list.
func (s *Store) LoadData() (*Data, error) {
	raw, err := s.items.LoadItem(tasksItem)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", tasksItem, err)
	}

	data := &Data{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", tasksItem, err)
	}
	return data, nil
}

// SaveData persists the task list
func (s *Store) SaveData(data *Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", tasksItem, err)
	}
	if err := s.items.SaveItem(tasksItem, raw); err != nil {
		return fmt.Errorf("save %s: %w", tasksItem, err)
	}
	return nil
}

// SaveFunc binds data to a zero-argument save callback
func (s *Store) SaveFunc(data *Data) func() error {
	return func() error {
		return s.SaveData(data)
	}
}

// LoadSettings loads the overlay settings. On first run the defaults are
// written back so the player has a file to edit.
func (s *Store) LoadSettings() (Settings, error) {
	raw, err := s.items.LoadItem(settingsItem)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("load %s: %w", settingsItem, err)
	}

	if len(raw) == 0 {
		settings := DefaultSettings()
		if err := s.SaveSettings(settings); err != nil {
			log.Printf("Warning: Could not write default settings: %v", err)
		}
		return settings, nil
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parse %s: %w", settingsItem, err)
	}
	if settings.OpenListKey == "" {
		settings.OpenListKey = DefaultSettings().OpenListKey
	}
	return settings, nil
}

// SaveSettings persists the overlay settings
func (s *Store) SaveSettings(settings Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", settingsItem, err)
	}
	if err := s.items.SaveItem(settingsItem, raw); err != nil {
		return fmt.Errorf("save %s: %w", settingsItem, err)
	}
	return nil
}
