package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cxlint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cxlint",
	Short: "C++ lint toolchain",
	Long:  `cxlint tokenizes C++ sources for style and correctness checks`,
}

// main registers subcommands and persistent flags, then executes the
// root command. A command error exits with status 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
