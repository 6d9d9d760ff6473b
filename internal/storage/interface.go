package storage

import (
	"errors"

	apperrors "github.com/julianstephens/wellhub/internal/errors"
)

// Provider is a string key/value store holding one JSON document per key.
// It deliberately mirrors browser local storage so that documents written by
// any backend are interchangeable.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Documents
	// GetItem returns ErrNotFound when the key has never been set.
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	// Keys returns every stored key in ascending order.
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

var (
	// ErrNotFound is returned by GetItem for an unknown key.
	ErrNotFound = apperrors.ErrNotFound
	// ErrNotLoaded is returned when a document method runs before Init or Load.
	ErrNotLoaded = errors.New("storage not loaded")
)

// Snapshot copies every key/value pair out of a provider.
func Snapshot(p Provider) (map[string]string, error) {
	keys, err := p.Keys()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := p.GetItem(k)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
