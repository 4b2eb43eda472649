package cmd

import (
	"fmt"

	"github.com/harrison/textfinder/internal/display"
	"github.com/harrison/textfinder/internal/fileutil"
	"github.com/spf13/cobra"
)

// NewFilesCommand creates the files subcommand
func NewFilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "files [path]",
		Short: "List the files a search would inspect",
		Long: `List every file whose extension is selected, without reading its content.

The same extension, recurse and configuration rules as the search apply.

Examples:
  textfinder files
  textfinder files ./src -p go --no-default-patterns`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runFiles,
	}
}

func runFiles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), cfg)
	log.Debugf("listing %s for %v (recurse=%t)", root, cfg.Extensions(), cfg.Recurse)

	result, err := fileutil.ScanDirectory(root, fileutil.ScanOptions{
		Extensions: cfg.Extensions(),
		Recursive:  cfg.Recurse,
	})
	if err != nil {
		return fmt.Errorf("list %s: %w", root, err)
	}

	out := cmd.OutOrStdout()
	list := display.NewFileList(out, len(result.Files), display.UseColor(out, display.ColorMode(cfg.Color)))
	list.Start(root)
	for _, f := range result.Files {
		list.Step(f)
	}
	list.Complete(len(result.Dirs))
	return nil
}
