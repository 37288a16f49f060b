package responder

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"
)

// Store holds one domain's knowledge base: category names mapped to
// structured records, loaded from a JSON file at construction. When the
// file is missing or malformed the embedded built-in default of the same
// shape is substituted, so a Store is never empty and loading never fails.
// Read-only after load.
type Store struct {
	data map[string]any
	raw  []byte
}

// LoadStore reads the knowledge file at path, falling back to the embedded
// default bytes on any problem.
func LoadStore(path string, fallback []byte, logger *slog.Logger) *Store {
	raw, err := os.ReadFile(path)
	if err == nil {
		if s := parseStore(raw); s != nil {
			return s
		}
		logger.Warn("Knowledge file is not valid JSON, using built-in default", slog.String("path", path))
	} else {
		logger.Warn("Knowledge file not found, using built-in default",
			slog.String("path", path), slog.Any("error", err))
	}

	s := parseStore(fallback)
	if s == nil {
		// The embedded defaults are compiled in; this only trips on a
		// programming error, and an empty store is still safer than a panic.
		logger.Error("Built-in default knowledge failed to parse", slog.String("path", path))
		return &Store{data: map[string]any{}, raw: []byte("{}")}
	}
	return s
}

func parseStore(raw []byte) *Store {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil || len(data) == 0 {
		return nil
	}
	return &Store{data: data, raw: raw}
}

// ContextJSON renders the whole knowledge base as indented JSON for
// embedding into grounding prompts.
func (s *Store) ContextJSON() string {
	out, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return string(s.raw)
	}
	return string(out)
}

// Lookup returns the top-level entry for key, case-insensitively.
func (s *Store) Lookup(key string) (any, bool) {
	if v, ok := s.data[key]; ok {
		return v, true
	}
	lower := strings.ToLower(key)
	for k, v := range s.data {
		if strings.ToLower(k) == lower {
			return v, true
		}
	}
	return nil, false
}

// Decode unmarshals the backing document into a typed structure.
func (s *Store) Decode(v any) error {
	return json.Unmarshal(s.raw, v)
}
