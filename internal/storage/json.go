package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"nbfix/internal/domain"
)

// Encode writes the Result Set as pretty-printed JSON: 2-space indent,
// HTML escaping off so multi-byte characters are emitted literally rather
// than as \u escapes. Map keys marshal in sorted order, which keeps the
// output byte-identical across runs.
func (s *JSONStorage) Encode(w io.Writer, set domain.ResultSet) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("marshal fixtures: %w", err)
	}
	return nil
}

// Save writes the Result Set to the configured JSON output file
func (s *JSONStorage) Save(set domain.ResultSet) error {
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create fixtures file: %w", err)
	}
	if err := s.Encode(f, set); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write fixtures: %w", err)
	}
	return nil
}

// Load reads a previously written fixtures file
func (s *JSONStorage) Load() (domain.ResultSet, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures file: %w", err)
	}
	var set domain.ResultSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return set, nil
}
