package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/harrison/textfinder/internal/config"
	"github.com/harrison/textfinder/internal/display"
	"github.com/harrison/textfinder/internal/filelock"
	"github.com/harrison/textfinder/internal/logger"
	"github.com/harrison/textfinder/internal/search"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for textfinder
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textfinder [path]",
		Short: "Find files whose content matches a regular expression",
		Long: `Textfinder walks a directory tree, selects files by extension and reports
the files whose content matches a regular expression.

Files with the extensions rs and txt are always searched unless
--no-default-patterns is given. Content that is not valid UTF-8 is decoded
with the fallback encoding, so binary files never cause an error.

Configuration is loaded from .textfinder.yaml, .textfinder.yml or
.textfinder.toml in the current directory or one of its parents, or from the
file named by TEXTFINDER_CONFIG. CLI flags override configuration file settings.

Examples:
  # Every directory below the current one, matching files only
  textfinder

  # Search Go and Markdown files for a function name
  textfinder ./src -r 'func\s+Visit' -p go -p md

  # Only the top-level directory, showing directories without matches
  textfinder --recurse=false --hide=false /var/log

  # Write the report to a file instead of stdout
  textfinder -r TODO -o report.txt`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE:         runSearch,
	}

	defaults := config.DefaultConfig()

	pf := cmd.PersistentFlags()
	pf.StringP("config", "c", "", "Path to config file (default: nearest .textfinder.yaml/.yml/.toml)")
	pf.StringSliceP("pattern", "p", nil, "File extension to search, without the dot (repeatable)")
	pf.Bool("no-default-patterns", false, fmt.Sprintf("Do not add the default extensions %v", config.DefaultPatterns))
	pf.Bool("recurse", defaults.Recurse, "Descend into subdirectories")
	pf.String("log-level", defaults.LogLevel, "Log level for stderr diagnostics (trace, debug, info, warn, error)")
	pf.String("color", defaults.Color, "Colored output (auto, always, never)")

	cmd.Flags().StringP("regex", "r", defaults.Regex, "Regular expression to search for")
	cmd.Flags().Bool("hide", defaults.HideEmptyDirs, "Only show directories that contain matching files")
	cmd.Flags().String("fallback-encoding", defaults.FallbackEncoding, "Encoding for content that is not valid UTF-8 (e.g. latin1, windows-1252)")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")

	cmd.AddCommand(NewFilesCommand())

	return cmd
}

// runSearch implements the root command logic
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	colorMode := display.ColorMode(cfg.Color)
	log := newLogger(stderr, cfg)

	searcher, err := search.New(cfg.SearchConfig(), log)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if patternErr := searcher.PatternErr(); patternErr != nil {
		display.PatternWarning(cfg.Regex, patternErr).Display(stderr, display.UseColor(stderr, colorMode))
	}

	outputPath, _ := cmd.Flags().GetString("output")

	var report bytes.Buffer
	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		out = &report
	}

	reporter := display.NewReporter(out, colorMode)
	summary, err := searcher.Run(root, reporter)
	if err != nil {
		return err
	}
	reporter.Summary(summary)
	if err := reporter.Err(); err != nil {
		return err
	}

	if outputPath == "" {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := filelock.LockAndWrite(ctx, outputPath, report.Bytes(), filelock.DefaultTimeout); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Infof("run %s: report written to %s", summary.RunID, outputPath)
	return nil
}

// loadConfig resolves the configuration file, applies the flags that were
// set explicitly and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else if wd, err := os.Getwd(); err == nil {
		configPath = config.FindConfigFile(wd)
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		cfg = loaded
	}

	cfg.MergeWithFlags(overridesFromFlags(flags))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// overridesFromFlags collects the flags the user set. Flags missing from
// the command (e.g. --regex on "files") are never Changed.
func overridesFromFlags(flags *pflag.FlagSet) config.Overrides {
	var o config.Overrides

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	boolFlag := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}

	o.Regex = stringFlag("regex")
	o.LogLevel = stringFlag("log-level")
	o.FallbackEncoding = stringFlag("fallback-encoding")
	o.Color = stringFlag("color")
	o.NoDefaults = boolFlag("no-default-patterns")
	o.Recurse = boolFlag("recurse")
	o.HideEmptyDirs = boolFlag("hide")
	if flags.Changed("pattern") {
		o.Patterns, _ = flags.GetStringSlice("pattern")
	}
	return o
}

// resolveRoot returns the absolute search root; it defaults to ".".
func resolveRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", root, err)
	}
	return abs, nil
}

func newLogger(w io.Writer, cfg *config.Config) *logger.ConsoleLogger {
	log := logger.NewConsoleLogger(w, cfg.LogLevel)
	log.SetColor(display.UseColor(w, display.ColorMode(cfg.Color)))
	return log
}
