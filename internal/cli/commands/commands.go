package commands

import (
	"nbfix/internal/cli"
	"nbfix/internal/config"
	"nbfix/internal/fixture"
	"nbfix/internal/notebook"
	"nbfix/internal/storage"
	"nbfix/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	Verify   *VerifyCommand
	View     *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	oracle := notebook.NewRoundtrip()
	generator := fixture.NewGenerator(oracle)
	filter := fixture.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewFixtureViewer(cfg)

	return &Commands{
		Generate: NewGenerateCommand(cfg, generator, filter, jsonStorage),
		List:     NewListCommand(cfg, filter, formatter),
		Verify:   NewVerifyCommand(cfg, generator, filter, jsonStorage, formatter),
		View:     NewViewCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate source-splitting fixtures",
		Long:  "Run every fixture case through the notebook round trip and emit the name → {source, expected} mapping as JSON on stdout (or to a file with --output)",
		RunE:  c.Generate.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	generateCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write fixtures to a file instead of stdout ('-' means stdout)")
	generateCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Only generate cases whose name matches the pattern (supports wildcards, e.g. 'unicode_*')")
	rootCmd.AddCommand(generateCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List fixture cases",
		Long:  "Print the built-in fixture case names without generating anything",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Only list cases whose name matches the pattern")
	listCmd.Flags().BoolVarP(&flags.Sources, "sources", "s", false, "Also print each case's source, quoted")
	rootCmd.AddCommand(listCmd)

	// Verify command
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a fixtures file against a fresh run",
		Long:  "Regenerate all fixtures and diff them against a previously written fixtures file; exits non-zero on any mismatch",
		RunE:  c.Verify.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	verifyCmd.Flags().StringVarP(&flags.Output, "input", "i", "", "Fixtures file to verify (defaults to the configured fixtures path)")
	verifyCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Only verify cases whose name matches the pattern")
	rootCmd.AddCommand(verifyCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "View fixtures interactively",
		Long:  "Browse a fixtures file in an interactive viewer: case names on the left, source and fragments on the right",
		RunE:  c.View.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	viewCmd.Flags().StringVarP(&flags.Output, "input", "i", "", "Fixtures file to view (defaults to the configured fixtures path)")
	rootCmd.AddCommand(viewCmd)
}
