package commands

import (
	"fmt"
	"os"

	"nbfix/internal/config"
	"nbfix/internal/fixture"
	"nbfix/internal/storage"
	"nbfix/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config    *config.Config
	generator *fixture.Generator
	filter    *fixture.Filter
	storage   storage.Storage
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(
	cfg *config.Config,
	generator *fixture.Generator,
	filter *fixture.Filter,
	st storage.Storage,
) *GenerateCommand {
	return &GenerateCommand{
		config:    cfg,
		generator: generator,
		filter:    filter,
		storage:   st,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	cases := gc.filter.FilterByName(fixture.Builtin(), gc.config.Flags.NameFilter)
	if len(cases) == 0 {
		color.Yellow("No cases to generate")
		return nil
	}

	toFile := gc.config.Flags.Output != "" && gc.config.Flags.Output != "-"
	if toFile {
		gc.generator.SetProgress(ui.NewProgressBar(len(cases)))
	}

	set, err := gc.generator.Generate(cases)
	if err != nil {
		return fmt.Errorf("generate fixtures: %w", err)
	}

	if !toFile {
		return gc.storage.Encode(os.Stdout, set)
	}

	if err := gc.storage.Save(set); err != nil {
		return fmt.Errorf("save fixtures: %w", err)
	}
	color.Green("✓ Wrote %d fixtures to %s", len(set), gc.config.GetOutputPath())
	return nil
}
