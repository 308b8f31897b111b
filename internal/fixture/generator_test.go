package fixture

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"nbfix/internal/domain"
	"nbfix/internal/notebook"
)

type failingOracle struct {
	failOn string
}

func (o *failingOracle) SourceLines(source string) ([]string, error) {
	if source == o.failOn {
		return nil, errors.New("boom")
	}
	return []string{source}, nil
}

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator(notebook.NewRoundtrip())

	set, err := gen.Generate(Builtin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set) != len(Builtin()) {
		t.Fatalf("expected %d records, got %d", len(Builtin()), len(set))
	}

	for _, c := range Builtin() {
		rec, ok := set[c.Name]
		if !ok {
			t.Errorf("missing record for case %q", c.Name)
			continue
		}
		if rec.Source != c.Source {
			t.Errorf("case %q: source changed to %q", c.Name, rec.Source)
		}
		if rec.Expected == nil {
			t.Errorf("case %q: expected fragments must not be nil", c.Name)
		}
		if joined := strings.Join(rec.Expected, ""); joined != c.Source {
			t.Errorf("case %q: fragments rejoin to %q, want %q", c.Name, joined, c.Source)
		}
	}

	if len(set["empty"].Expected) != 0 {
		t.Errorf("empty case should have no fragments, got %q", set["empty"].Expected)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	gen := NewGenerator(notebook.NewRoundtrip())

	first, err := gen.Generate(Builtin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := gen.Generate(Builtin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same cases produced different result sets")
	}
}

func TestGenerator_OracleFailureAborts(t *testing.T) {
	gen := NewGenerator(&failingOracle{failOn: "y = 2"})

	cases := []domain.Case{
		{Name: "ok", Source: "x = 1"},
		{Name: "bad", Source: "y = 2"},
		{Name: "never_reached", Source: "z = 3"},
	}

	set, err := gen.Generate(cases)
	if err == nil {
		t.Fatal("expected an error")
	}
	if set != nil {
		t.Errorf("expected no partial result, got %d records", len(set))
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("error should name the failing case, got %q", err.Error())
	}
}

func TestBuiltin_NamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Builtin() {
		if seen[c.Name] {
			t.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
	}
}
