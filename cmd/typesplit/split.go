package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/typesplit/internal/cli"
	"github.com/Veraticus/typesplit/internal/config"
	"github.com/Veraticus/typesplit/internal/model"
	"github.com/Veraticus/typesplit/internal/storage"
	"github.com/Veraticus/typesplit/internal/writer"
	"github.com/spf13/cobra"
)

func splitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split types.xml into category files and update the manifest",
		Long: `Split the types document into one file per category and register the
generated files in cfgeconomycore.xml.

Each type is assigned to the first category whose rule matches it; types no
rule claims go to uncategorized.xml. Categories without types produce no file.
After the manifest is written the source is archived as types.bk.

Examples:
  typesplit split                                  # split ./types.xml
  typesplit split -s mpmissions/dayzOffline.chernarusplus/db/types.xml
  typesplit split --fresh --yes                    # rebuild from types.bk and prune stale files
  typesplit split --dry-run                        # show what would be written`,
		RunE: runSplit,
	}

	addPathFlags(cmd)
	cmd.Flags().Bool("fresh", false, "rebuild from scratch: prune stale category files and reuse the backup when the source is gone")
	cmd.Flags().Bool("dry-run", false, "classify and report without writing anything")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	cmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation in fresh mode")

	return cmd
}

func runSplit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd, map[string]string{
		"fresh":   config.KeyFresh,
		"dry-run": config.KeyDryRun,
	})
	if err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); cfg.Fresh && !cfg.DryRun && !yes {
		ok, err := confirmFresh(cmd, cfg)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Aborted, nothing was changed"))
			return nil
		}
	}

	var progress writer.Progress
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress && !cfg.DryRun {
		progress = cli.NewWriteProgress(cmd.ErrOrStderr())
	}

	eng, _, err := buildEngine(cfg, progress)
	if err != nil {
		return err
	}

	slog.Info("Starting split",
		"source", cfg.SourcePath,
		"output", cfg.OutputDir,
		"manifest", cfg.ManifestPath,
		"fresh", cfg.Fresh,
		"dry_run", cfg.DryRun)

	result, err := eng.Run(ctx, engineConfig(cfg))
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.RenderCategoryTable(result.Set, false))
	fmt.Fprintln(out, cli.RenderSummary(result))

	return nil
}

// confirmFresh lists the category files a fresh split may remove and asks
// before going on.
func confirmFresh(cmd *cobra.Command, cfg *config.SplitConfig) (bool, error) {
	existing, err := storage.NewOSStore().List(cfg.OutputDir, model.CategoryFileExt)
	if err != nil {
		return false, fmt.Errorf("failed to list %s: %w", cfg.OutputDir, err)
	}

	prompter := cli.NewCLIPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	return prompter.ConfirmFresh(cmd.Context(), cfg.OutputDir, existing)
}
