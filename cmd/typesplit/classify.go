package main

import (
	"fmt"

	"github.com/Veraticus/typesplit/internal/cli"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [type names...]",
		Short: "Report how types would be categorized without writing files",
		Long: `Classify the types document and print the number of types per category.

With type names as arguments, print the category and the matching rule for
each type in the document with that name instead.`,
		RunE: runClassify,
	}

	addPathFlags(cmd)
	cmd.Flags().Bool("all", false, "include empty categories in the report")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	eng, classifier, err := buildEngine(cfg, nil)
	if err != nil {
		return err
	}

	set, err := eng.Classify(ctx, cfg.SourcePath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		showAll, _ := cmd.Flags().GetBool("all")
		fmt.Fprintln(out, cli.RenderCategoryTable(set, showAll))
		return nil
	}

	wanted := make(map[string]bool, len(args))
	for _, name := range args {
		wanted[name] = true
	}

	found := make(map[string]bool, len(args))
	for _, category := range set.NonEmpty() {
		for _, elem := range set.Elements(category) {
			if !wanted[elem.Name()] {
				continue
			}
			found[elem.Name()] = true
			rule := classifier.Explain(elem)
			fmt.Fprintf(out, "%s -> %s (%s)\n", elem.Name(), rule.Category, rule.Describe())
		}
	}

	for _, name := range args {
		if !found[name] {
			fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("%s not found in %s", name, cfg.SourcePath)))
		}
	}

	return nil
}
