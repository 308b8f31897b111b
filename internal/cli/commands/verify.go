package commands

import (
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"nbfix/internal/config"
	"nbfix/internal/domain"
	"nbfix/internal/fixture"
	"nbfix/internal/storage"
	"nbfix/internal/ui"
)

// VerifyCommand handles the verify command
type VerifyCommand struct {
	config    *config.Config
	generator *fixture.Generator
	filter    *fixture.Filter
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewVerifyCommand creates a new VerifyCommand
func NewVerifyCommand(
	cfg *config.Config,
	generator *fixture.Generator,
	filter *fixture.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
) *VerifyCommand {
	return &VerifyCommand{
		config:    cfg,
		generator: generator,
		filter:    filter,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (vc *VerifyCommand) Execute(cmd *cobra.Command, args []string) error {
	stored, err := vc.storage.Load()
	if err != nil {
		return err
	}

	cases := vc.filter.FilterByName(fixture.Builtin(), vc.config.Flags.NameFilter)
	fresh, err := vc.generator.Generate(cases)
	if err != nil {
		return fmt.Errorf("generate fixtures: %w", err)
	}

	mismatched := 0
	for _, name := range sortedNames(fresh) {
		want := fresh[name]
		got, ok := stored[name]
		if !ok {
			mismatched++
			vc.formatter.PrintMismatch(name, "missing from fixtures file")
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			mismatched++
			vc.formatter.PrintMismatch(name, diff)
		}
	}

	vc.formatter.PrintVerifySummary(len(fresh), mismatched)
	if mismatched > 0 {
		return fmt.Errorf("%d fixture(s) out of date", mismatched)
	}
	return nil
}

func sortedNames(set domain.ResultSet) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
