package main

import (
	"fmt"

	"github.com/Veraticus/typesplit/internal/classification"
	"github.com/Veraticus/typesplit/internal/cli"
	"github.com/Veraticus/typesplit/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ruleView is the serialized form of a rule.
type ruleView struct {
	Category string `yaml:"category"`
	When     string `yaml:"when"`
}

// rulesView is the serialized form of the rule table.
type rulesView struct {
	Rules     []ruleView               `yaml:"rules"`
	Overrides classification.Overrides `yaml:"overrides"`
}

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the category rules in evaluation order",
		Long: `Print the rule table. Rules are evaluated top to bottom and the first
matching rule decides the category.

The override lists can be changed in the config file:

  rules:
    clothes_overrides: [GhillieSuit_Tan, GhillieSuit_Woodland]
    food_overrides: [Apple, Pear]
    container_overrides: [WaterBottle, Canteen]`,
		RunE: runRules,
	}

	cmd.Flags().String("format", "table", "Output format (table, yaml)")

	return cmd
}

func runRules(cmd *cobra.Command, _ []string) error {
	overrides := classification.Overrides{
		Clothes:    viper.GetStringSlice(config.KeyClothesOverrides),
		Containers: viper.GetStringSlice(config.KeyContainerOverrides),
		Food:       viper.GetStringSlice(config.KeyFoodOverrides),
	}
	rules := classification.RulesWithOverrides(overrides)
	if err := classification.ValidateRules(rules); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "table":
		fmt.Fprintln(out, cli.RenderRules(rules))
	case "yaml":
		view := rulesView{Overrides: overrides.WithDefaults()}
		for _, r := range rules {
			view.Rules = append(view.Rules, ruleView{Category: r.Category.String(), When: r.Describe()})
		}
		data, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("failed to encode rules: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		return fmt.Errorf("unknown format %q (use table or yaml)", format)
	}

	return nil
}
