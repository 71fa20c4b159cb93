package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cxlint/internal/diagfmt"
	"cxlint/internal/driver"
	"cxlint/internal/observ"
	"cxlint/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.cpp",
	Short: "Tokenize a C++ source file",
	Long:  `Tokenize breaks a C++ source file (or a directory of them) into its constituent tokens`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("dir", "", "tokenize every source file under a directory")
	tokenizeCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
	tokenizeCmd.Flags().String("ui", "auto", "progress UI for directory runs (auto|on|off)")
	tokenizeCmd.Flags().Bool("no-cache", false, "disable the on-disk token cache")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}
	if dir == "" && len(args) == 0 {
		return fmt.Errorf("expected a file argument or --dir")
	}
	if dir != "" && len(args) > 0 {
		return fmt.Errorf("--dir and a file argument are mutually exclusive")
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	cfg, err := loadLintConfig(".")
	if err != nil {
		return err
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && cfg.Lint.MaxDiagnostics > 0 {
		maxDiagnostics = cfg.Lint.MaxDiagnostics
	}

	opts := driver.Options{MaxDiagnostics: maxDiagnostics}
	noCache, _ := cmd.Flags().GetBool("no-cache")
	if !noCache {
		cache, err := driver.OpenTokenCache("cxlint")
		if err == nil {
			opts.Cache = cache
		}
		// кеш недоступен — лексим без него
	}

	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	timer := observ.NewTimer()

	if dir != "" {
		return runTokenizeDir(cmd, dir, opts, cfg, format, timer, timings)
	}
	return runTokenizeFile(cmd, args[0], opts, format, timer, timings)
}

func runTokenizeFile(cmd *cobra.Command, filePath string, opts driver.Options, format string, timer *observ.Timer, timings bool) error {
	phase := timer.Begin("tokenize")
	result, err := driver.Tokenize(filePath, opts)
	timer.End(phase, filePath)

	if result != nil && (result.Bag.HasErrors() || result.Bag.HasWarnings()) {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts(cmd))
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	}
}

func runTokenizeDir(cmd *cobra.Command, dir string, opts driver.Options, cfg *lintConfig, format string, timer *observ.Timer, timings bool) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs == 0 && cfg.Lint.Jobs > 0 {
		jobs = cfg.Lint.Jobs
	}

	dirOpts := driver.DirOptions{
		Options:    opts,
		Extensions: cfg.Lint.Extensions,
		Jobs:       jobs,
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	ctx := context.Background()
	phase := timer.Begin("tokenize-dir")

	var fileSet *source.FileSet
	var results []driver.TokenizeDirResult
	if shouldUseTUI(mode) && format != "json" {
		fileSet, results, err = runTokenizeDirWithUI(ctx, dir, dirOpts)
	} else {
		fileSet, results, err = driver.TokenizeDir(ctx, dir, dirOpts)
	}
	if err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))

	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	failed := 0
	for _, res := range results {
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, prettyOpts(cmd))
		}
		if res.Err != nil {
			failed++
			continue
		}
		if quiet {
			continue
		}
		switch format {
		case "json":
			if err := diagfmt.FormatTokensJSON(os.Stdout, res.Tokens); err != nil {
				return err
			}
		default:
			fmt.Fprintf(os.Stdout, "== %s (%d tokens)\n", res.Path, len(res.Tokens))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to tokenize", failed, len(results))
	}
	return nil
}

func prettyOpts(cmd *cobra.Command) diagfmt.PrettyOpts {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	return diagfmt.PrettyOpts{
		Color:   useColor,
		Context: 2,
	}
}
