package main

import (
	"fmt"
	"os"

	"nbfix/internal/cli"
	"nbfix/internal/cli/commands"
	"nbfix/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "nbfix",
		Short:   "Notebook source-splitting fixture generator",
		Long:    `Generates reference fixtures for notebook cell source line-splitting. Each fixture case is persisted as a code cell through the nbformat round trip and the stored source fragments are collected into a JSON mapping for consumption by test harnesses.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
