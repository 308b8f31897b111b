package notebook

import (
	"encoding/json"
	"fmt"
	"os"
)

// Roundtrip computes source fragments by persisting a notebook to a
// scoped temporary file and reading back what was stored. This goes
// through the on-disk form on purpose: the fixtures must reflect what the
// serializer actually writes, not what an in-memory shortcut would say.
type Roundtrip struct{}

// NewRoundtrip creates a new Roundtrip oracle
func NewRoundtrip() *Roundtrip {
	return &Roundtrip{}
}

// rawNotebook is the read-back side of the round trip: only the stored
// source arrays matter
type rawNotebook struct {
	Cells []struct {
		Source []string `json:"source"`
	} `json:"cells"`
}

// SourceLines persists source as a single code cell in a temporary
// notebook file and returns the source fragments stored for that cell.
// The temporary file is removed on every exit path.
func (rt *Roundtrip) SourceLines(source string) ([]string, error) {
	nb := New()
	nb.AppendCodeCell(source)

	f, err := os.CreateTemp("", "nbfix-*.ipynb")
	if err != nil {
		return nil, fmt.Errorf("create temp notebook: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	enc := json.NewEncoder(f)
	enc.SetIndent("", " ")
	if err := enc.Encode(nb); err != nil {
		f.Close()
		return nil, fmt.Errorf("write temp notebook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close temp notebook: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read temp notebook: %w", err)
	}

	var raw rawNotebook
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse temp notebook: %w", err)
	}
	if len(raw.Cells) != 1 {
		return nil, fmt.Errorf("expected 1 cell in temp notebook, got %d", len(raw.Cells))
	}

	lines := raw.Cells[0].Source
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}
