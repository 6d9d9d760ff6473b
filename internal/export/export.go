// Package export dumps every storage key to a portable YAML or JSON file
// and loads such files back.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/storage"
)

const FormatVersion = 1

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Document is the export envelope.
type Document struct {
	Version    int            `yaml:"version" json:"version"`
	App        string         `yaml:"app" json:"app"`
	ExportedAt time.Time      `yaml:"exportedAt" json:"exportedAt"`
	Data       map[string]any `yaml:"data" json:"data"`
}

// Build snapshots p into a Document. Typed documents are exported as
// structured values, scalar keys as strings. Malformed documents are
// skipped with a warning.
func Build(p storage.Provider, now time.Time) (Document, error) {
	docs, err := storage.Snapshot(p)
	if err != nil {
		return Document{}, fmt.Errorf("snapshot: %w", err)
	}

	doc := Document{
		Version:    FormatVersion,
		App:        constants.AppName,
		ExportedAt: now.UTC(),
		Data:       make(map[string]any, len(docs)),
	}
	for key, raw := range docs {
		decoded, err := records.Decode(key, raw)
		if err != nil {
			logger.Warn("Skipping malformed document in export", "key", key, "error", err)
			continue
		}
		if s, ok := decoded.(string); ok {
			doc.Data[key] = s
			continue
		}
		// round-trip through JSON so field names match the stored form
		generic, err := toGeneric(decoded)
		if err != nil {
			return Document{}, fmt.Errorf("%s: %w", key, err)
		}
		doc.Data[key] = generic
	}
	return doc, nil
}

func toGeneric(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Write builds a Document from p and encodes it to w.
func Write(p storage.Provider, w io.Writer, format Format, now time.Time) (int, error) {
	doc, err := Build(p, now)
	if err != nil {
		return 0, err
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", format, err)
	}
	return len(doc.Data), nil
}

// ImportOptions controls Read.
type ImportOptions struct {
	// Replace removes every application key absent from the import.
	Replace bool
}

// Read decodes an export from r, validates every document against its
// schema and only then writes the keys to p. Returns the keys written.
func Read(p storage.Provider, r io.Reader, format Format, opts ImportOptions) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc Document
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if doc.Version > FormatVersion {
		return nil, fmt.Errorf("export version %d is newer than supported version %d", doc.Version, FormatVersion)
	}

	values := make(map[string]string, len(doc.Data))
	for key, v := range doc.Data {
		raw, err := canonical(key, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		values[key] = raw
	}

	if opts.Replace {
		for _, key := range constants.AllKeys {
			if _, ok := values[key]; ok {
				continue
			}
			if err := p.RemoveItem(key); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("remove %s: %w", key, err)
			}
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := p.SetItem(key, values[key]); err != nil {
			return nil, fmt.Errorf("save %s: %w", key, err)
		}
	}
	logger.Info("Imported documents", "count", len(keys), "replace", opts.Replace)
	return keys, nil
}

// canonical turns an imported value into the stored string form.
func canonical(key string, v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", errors.New("value is empty")
	case string:
		if _, err := records.Decode(key, s); err != nil {
			return "", err
		}
		return s, nil
	case bool, int, int64, float64, json.Number:
		return fmt.Sprint(s), nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	typed, err := records.Decode(key, string(data))
	if err != nil {
		return "", err
	}
	if _, scalar := typed.(string); scalar {
		return "", errors.New("expected a scalar value")
	}
	out, err := json.Marshal(typed)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
