package storage

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"nbfix/internal/config"
	"nbfix/internal/domain"
)

func testSet() domain.ResultSet {
	return domain.ResultSet{
		"empty": {
			Source:   "",
			Expected: []string{},
		},
		"multi_line": {
			Source:   "x = 1\ny = 2",
			Expected: []string{"x = 1\n", "y = 2"},
		},
		"unicode_emoji": {
			Source:   "🎉 = \"party\"",
			Expected: []string{"🎉 = \"party\""},
		},
	}
}

func TestJSONStorage_Encode(t *testing.T) {
	st := NewJSONStorage(config.New())

	var buf bytes.Buffer
	if err := st.Encode(&buf, testSet()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	t.Run("pretty printed with 2-space indent", func(t *testing.T) {
		if !strings.Contains(out, "\n  \"empty\": {\n    \"source\": \"\",\n    \"expected\": []\n  }") {
			t.Errorf("unexpected formatting:\n%s", out)
		}
	})

	t.Run("unicode is emitted literally", func(t *testing.T) {
		if !strings.Contains(out, "🎉") {
			t.Errorf("expected literal emoji in output:\n%s", out)
		}
		if strings.Contains(out, `\u`) {
			t.Errorf("expected no unicode escapes in output:\n%s", out)
		}
	})

	t.Run("ends with a single newline", func(t *testing.T) {
		if !strings.HasSuffix(out, "}\n") || strings.HasSuffix(out, "\n\n") {
			t.Errorf("unexpected trailer:\n%q", out)
		}
	})

	t.Run("byte-identical across encodes", func(t *testing.T) {
		var again bytes.Buffer
		if err := st.Encode(&again, testSet()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != again.String() {
			t.Error("two encodes of the same set differ")
		}
	})
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.Flags.Output = filepath.Join(t.TempDir(), "fixtures", "source-splitting.json")
	st := NewJSONStorage(cfg)

	set := testSet()
	if err := st.Save(set); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded, set) {
		t.Errorf("loaded set differs:\ngot  %#v\nwant %#v", loaded, set)
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	cfg := config.New()
	cfg.Flags.Output = filepath.Join(t.TempDir(), "nope.json")
	st := NewJSONStorage(cfg)

	if _, err := st.Load(); err == nil {
		t.Error("expected an error for a missing fixtures file")
	}
}
