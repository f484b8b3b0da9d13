// Root command configuration for the glint CLI.
// Defines global flags, help output, and top-level command metadata.
package main

import (
	"fmt"
	"os"

	"github.com/sandover/glint/internal/glint"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Root command flags
	globalOpts glint.GlobalOptions
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "Color-aware shell prompt renderer.",
	Long: `glint renders decorated prompt lines from a compact markup language
and keeps a stable accent color per repository, chosen to avoid
clashing with the repos you visited recently.`,
	SilenceUsage:  true, // Don't print usage on every error
	SilenceErrors: true, // We handle errors in main
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&globalOpts.StartDir, "dir", "", "Run as if started in this directory")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Quiet, "quiet", "q", false, "Suppress hints")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.JSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.NoColor, "no-color", false, "Plain help output")

	// Set the version to enable --version flag
	rootCmd.Version = version

	// Override default help to use our custom text
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		isTTY := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Println(glint.UsageText(isTTY && !globalOpts.NoColor))
	})
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		exitErr(err, &globalOpts)
	}
}
