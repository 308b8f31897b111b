package ui

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"nbfix/internal/config"
	"nbfix/internal/domain"
)

// Formatter formats and displays console output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintCaseList displays the fixture cases, optionally with their sources
func (f *Formatter) PrintCaseList(cases []domain.Case, showSources bool) error {
	color.Cyan("Fixture cases (%d):\n", len(cases))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, c := range cases {
		if showSources {
			fmt.Fprintf(w, "  %d.\t%s\t%s\n", i+1, c.Name, quoteSource(c.Source))
		} else {
			fmt.Fprintf(w, "  %d.\t%s\n", i+1, c.Name)
		}
	}
	return w.Flush()
}

// PrintMismatch displays one failed verification with its diff
func (f *Formatter) PrintMismatch(name, diff string) {
	color.Red("✗ %s", name)
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		fmt.Printf("    %s\n", line)
	}
}

// PrintVerifySummary displays the verification outcome
func (f *Formatter) PrintVerifySummary(total, mismatched int) {
	fmt.Println()
	if mismatched == 0 {
		color.Green("✓ %d/%d fixtures match %s", total, total, f.config.GetOutputPath())
		return
	}
	color.Red("✗ %d/%d fixtures differ from %s", mismatched, total, f.config.GetOutputPath())
}

// quoteSource renders a source string on one line with visible escapes
func quoteSource(source string) string {
	return fmt.Sprintf("%q", source)
}
