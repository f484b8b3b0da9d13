// Purpose: Wire cobra subcommands to internal glint.RunX implementations.
// Exports: none.
// Role: CLI composition layer for user-facing commands.
// Invariants: Flags and command names align with the embedded help text.
// Notes: init functions register commands and their flags.
package main

import (
	"github.com/sandover/glint/internal/glint"
	"github.com/spf13/cobra"
)

var (
	colorFormat  string
	promptStatus int
)

func init() {
	// glint render
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().IntVar(&globalOpts.Width, "width", 0, "Target width in columns (default: COLUMNS, then terminal, then 80)")
	renderCmd.Flags().StringVar(&globalOpts.Shell, "shell", "", "Non-printing marker mode: none, zsh, or bash (default: GLINT_SHELL)")
	renderCmd.Flags().Int64Var(&globalOpts.Seed, "seed", 0, "Seed for randomized fill glyphs (0 = time-seeded)")
	// glint prompt
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().IntVar(&globalOpts.Width, "width", 0, "Target width in columns")
	promptCmd.Flags().StringVar(&globalOpts.Shell, "shell", "", "Non-printing marker mode: none, zsh, or bash")
	promptCmd.Flags().Int64Var(&globalOpts.Seed, "seed", 0, "Seed for randomized fill glyphs")
	promptCmd.Flags().IntVar(&promptStatus, "status", 0, "Previous command's exit status")
	// glint color
	rootCmd.AddCommand(colorCmd)
	colorCmd.Flags().StringVar(&colorFormat, "format", "index", "Output format: index, name, hex, or dim-hex")
	// glint where
	rootCmd.AddCommand(whereCmd)
	// glint quickstart
	rootCmd.AddCommand(quickstartCmd)
	// glint version
	rootCmd.AddCommand(versionCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <markup>",
	Short: "Render a markup string to the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return glint.RunRender(args, globalOpts)
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Compose and render the full shell prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return glint.RunPrompt(promptStatus, globalOpts)
	},
}

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Print this repository's accent color",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return glint.RunColor(colorFormat, globalOpts)
	},
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the repo root and color-cache location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return glint.RunWhere(globalOpts)
	},
}

var quickstartCmd = &cobra.Command{
	Use:   "quickstart",
	Short: "Markup language tour",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return glint.RunQuickstart(args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the glint version",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}
