package fixture

import (
	"fmt"

	"nbfix/internal/domain"
)

// Oracle produces the stored line fragments for a cell source
type Oracle interface {
	SourceLines(source string) ([]string, error)
}

// Progress receives per-case completion updates during generation
type Progress interface {
	Update(done int)
	Finish()
}

// Generator builds the Result Set by running each case through the oracle
type Generator struct {
	oracle   Oracle
	progress Progress
}

// NewGenerator creates a new Generator
func NewGenerator(oracle Oracle) *Generator {
	return &Generator{oracle: oracle}
}

// SetProgress attaches an optional progress reporter
func (g *Generator) SetProgress(p Progress) {
	g.progress = p
}

// Generate processes the cases strictly one at a time and returns the
// complete Result Set. The first oracle failure aborts the run; there is
// no partial result.
func (g *Generator) Generate(cases []domain.Case) (domain.ResultSet, error) {
	set := make(domain.ResultSet, len(cases))
	for i, c := range cases {
		expected, err := g.oracle.SourceLines(c.Source)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		set[c.Name] = domain.Record{
			Source:   c.Source,
			Expected: expected,
		}
		if g.progress != nil {
			g.progress.Update(i + 1)
		}
	}
	if g.progress != nil {
		g.progress.Finish()
	}
	return set, nil
}
