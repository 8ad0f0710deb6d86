// Package cli provides the command-line interface for textkit.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textkit-dev/textkit/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "Line-oriented text processing toolkit",
		Long: `textkit reads comment-aware logical lines from text files and runs them
through configurable string transforms.

A logical line has trailing comments stripped, blank lines suppressed, and
backslash-continued lines merged. Transforms cover case folding, trimming,
whitespace condensing, substring replace/erase, bracket stripping, and
tokenizing.

Exit codes:
  0 - Success
  2 - Configuration or runtime error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewApplyCommand())
	rootCmd.AddCommand(commands.NewCountCommand())
	rootCmd.AddCommand(commands.NewSplitCommand())
	rootCmd.AddCommand(commands.NewStandardizeCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
