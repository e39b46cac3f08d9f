package main

import (
	"fmt"

	"github.com/Veraticus/typesplit/internal/cli"
	"github.com/spf13/cobra"
)

func manifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Rebuild the manifest from the category files on disk",
		Long: `Register every .xml file in the output directory in cfgeconomycore.xml,
replacing the existing types entries. Classes and defaults are kept.

Use this after adding or removing category files by hand.`,
		RunE: runManifest,
	}

	addPathFlags(cmd)

	return cmd
}

func runManifest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	eng, _, err := buildEngine(cfg, nil)
	if err != nil {
		return err
	}

	registered, err := eng.RebuildManifest(ctx, cfg.OutputDir, cfg.ManifestPath)
	if err != nil {
		return fmt.Errorf("manifest rebuild failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Registered %d files in %s", len(registered), cfg.ManifestPath)))
	return nil
}
