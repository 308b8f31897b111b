package storage

import (
	"io"

	"nbfix/internal/config"
	"nbfix/internal/domain"
)

// Storage persists and loads generated fixture sets (e.g. for verify and
// the viewer)
type Storage interface {
	// Encode writes the Result Set as pretty JSON to w (stdout output path)
	Encode(w io.Writer, set domain.ResultSet) error
	Save(set domain.ResultSet) error
	Load() (domain.ResultSet, error)
}

// JSONStorage stores fixtures in a JSON file under the configured output path
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
