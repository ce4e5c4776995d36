package demo

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the user preferences kept between runs.
type Settings struct {
	Scale   int     `yaml:"scale"`
	Volume  float64 `yaml:"volume"`
	Muted   bool    `yaml:"muted"`
	ShowFPS bool    `yaml:"showFPS"`
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() Settings {
	return DefaultConfig().Settings()
}

const (
	settingsObject   = "settings"
	settingsProperty = "demo"
)

// SettingsStore loads and saves Settings through gdata. A store with a nil
// manager keeps settings in memory only.
type SettingsStore struct {
	data     *gdata.Manager
	settings Settings
}

// NewSettingsStore creates a store and loads any saved settings. A failed
// load is logged and leaves the defaults in place.
func NewSettingsStore(data *gdata.Manager) *SettingsStore {
	s := &SettingsStore{data: data, settings: DefaultSettings()}
	if err := s.Load(); err != nil {
		log.Printf("[settings] load failed, using defaults: %v", err)
	}
	return s
}

// OpenSettingsStore opens the gdata storage for appName. If the storage
// cannot be opened, the returned store works in memory and the error is
// returned alongside it.
func OpenSettingsStore(appName string) (*SettingsStore, error) {
	data, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSettingsStore(nil), fmt.Errorf("open settings storage: %w", err)
	}
	return NewSettingsStore(data), nil
}

// Load reads the saved settings. Missing settings reset to the defaults.
func (s *SettingsStore) Load() error {
	s.settings = DefaultSettings()
	if s.data == nil || !s.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	raw, err := s.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)
	s.settings = loaded
	return nil
}

// Save writes the current settings. It is a no-op without storage.
func (s *SettingsStore) Save() error {
	if s.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	log.Printf("[settings] saved")
	return nil
}

// Settings returns the current settings.
func (s *SettingsStore) Settings() Settings {
	return s.settings
}

// Set replaces the current settings in memory. Call Save to persist them.
func (s *SettingsStore) Set(settings Settings) {
	settings.Volume = clampVolume(settings.Volume)
	s.settings = settings
}
