package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	sheetName string
	verbose   bool
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

var rootCmd = &cobra.Command{
	Use:           "xlstyle",
	Short:         "Inspect and edit XLSX cell formatting",
	Version:       Version,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Sheet name, defaults to the first sheet (env: XLSTYLE_SHEET)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

func resolveSheet() string {
	if sheetName != "" {
		return sheetName
	}
	return os.Getenv("XLSTYLE_SHEET")
}

func Execute() error {
	return rootCmd.Execute()
}
