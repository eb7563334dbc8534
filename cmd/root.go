package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/version"
)

var (
	logLevel string
	logger   = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Steel I-Section Properties and Classification Tool",
	Long: `gosteel - Go Steel Section Properties

A CLI tool for the cross-section properties of open steel sections
symmetric about their minor axis, classified to EN 1993-1-1.

This tool helps structural engineers compute:
  - Area, mass, centroid and plastic neutral axis
  - Second moments of area and radii of gyration
  - Elastic and plastic section moduli
  - Shear areas
  - Section class (Table 5.2) and local plate check applicability (EN 1993-1-5)

Material: S355 (ε = 0.81).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
			return errors.Wrapf(err, "invalid --log-level %q", logLevel)
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gosteel v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Steel Section Properties                             ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Cross-section properties and EN 1993-1-1 classification")
		fmt.Fprintln(out, "  of open steel I-sections.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Geometric, elastic and plastic section properties")
		fmt.Fprintln(out, "    • Rolled and welded (custom) I-sections with unequal flanges")
		fmt.Fprintln(out, "    • Section classification of web and flanges")
		fmt.Fprintln(out, "    • Shear lag, plate and shear buckling applicability gate")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gosteel --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}
