// Package main provides the entry point for the edaplot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for edaplot.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edaplot",
		Short: "Exploratory plot generator for tabular datasets",
		Long: `edaplot turns a CSV dataset into exploratory charts: one scatter plot per
explanatory column against the response, augmented with a boxplot overlay for
categorical columns or an OLS trend overlay for numeric ones.

Column names, the response column and categorical re-typing are described by a
companion YAML metadata file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRenderCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
