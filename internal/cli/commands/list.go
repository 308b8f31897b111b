package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nbfix/internal/config"
	"nbfix/internal/fixture"
	"nbfix/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *fixture.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *fixture.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases := lc.filter.FilterByName(fixture.Builtin(), lc.config.Flags.NameFilter)
	if len(cases) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	return lc.formatter.PrintCaseList(cases, lc.config.Flags.Sources)
}
