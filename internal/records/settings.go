package records

import (
	"errors"
	"fmt"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/storage"
)

type SettingsStore struct{ *base }

// Get reads every preference key, applying defaults for missing ones.
func (s *SettingsStore) Get() (models.Preferences, error) {
	raw := make(map[string]string, len(models.PreferenceKeys))
	for _, key := range models.PreferenceKeys {
		v, err := s.p.GetItem(key)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return models.Preferences{}, fmt.Errorf("load %s: %w", key, err)
		}
		raw[key] = v
	}
	return models.MapToPreferences(raw)
}

// Save validates prefs and writes each key.
func (s *SettingsStore) Save(prefs models.Preferences) error {
	models.ApplyDefaultPreferences(&prefs)
	if err := prefs.Validate(); err != nil {
		return err
	}
	for key, value := range models.PreferencesToMap(prefs) {
		if err := s.p.SetItem(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	if prefs.UserWeight == 0 {
		if err := s.clear(constants.KeyUserWeight); err != nil {
			return err
		}
	}
	if prefs.UserHeight == 0 {
		if err := s.clear(constants.KeyUserHeight); err != nil {
			return err
		}
	}
	return nil
}

// Set updates a single preference by storage key.
func (s *SettingsStore) Set(key, value string) (models.Preferences, error) {
	known := false
	for _, k := range models.PreferenceKeys {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return models.Preferences{}, fmt.Errorf("unknown setting %q", key)
	}
	prefs, err := s.Get()
	if err != nil {
		return models.Preferences{}, err
	}
	m := models.PreferencesToMap(prefs)
	m[key] = value
	updated, err := models.MapToPreferences(m)
	if err != nil {
		return models.Preferences{}, err
	}
	return updated, s.Save(updated)
}

func (s *SettingsStore) clear(key string) error {
	if err := s.p.RemoveItem(key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (s *SettingsStore) Profile() (models.Profile, error) {
	return load(s.p, constants.KeyProfile, func() models.Profile { return models.Profile{} })
}

func (s *SettingsStore) SaveProfile(p models.Profile) error {
	return save(s.p, constants.KeyProfile, p)
}
