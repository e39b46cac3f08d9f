package classification

import (
	"fmt"

	"github.com/Veraticus/typesplit/internal/common"
	"github.com/Veraticus/typesplit/internal/model"
)

// Rule assigns elements matching When to Category.
type Rule struct {
	When     Predicate
	Category model.Category
}

// Describe renders the rule for reports.
func (r Rule) Describe() string {
	return r.When.Describe()
}

// Overrides are explicit name lists that take precedence over the
// structural category rules.
type Overrides struct {
	// Clothes are names classified as clothes even when their category says tools.
	Clothes []string `yaml:"clothes_overrides"`
	// Containers are name prefixes classified as containers.
	Containers []string `yaml:"container_overrides"`
	// Food are names classified as food regardless of their category.
	Food []string `yaml:"food_overrides"`
}

// DefaultOverrides returns the built-in override lists.
func DefaultOverrides() Overrides {
	return Overrides{
		Clothes: []string{
			"GhillieSuit_Tan",
			"GhillieSuit_Woodland",
			"GhillieSuit_Mossy",
			"GhillieHood_Tan",
			"GhillieHood_Woodland",
		},
		Containers: []string{
			"FilteringBottle",
			"GlassBottle",
			"WaterBottle",
		},
		Food: []string{
			"Apple",
			"Banana",
			"Kiwi",
			"Orange",
			"Pear",
			"Plum",
			"Potato",
			"Tomato",
			"Zucchini",
		},
	}
}

// WithDefaults fills any empty list from the built-in overrides.
func (o Overrides) WithDefaults() Overrides {
	defaults := DefaultOverrides()
	if len(o.Clothes) == 0 {
		o.Clothes = defaults.Clothes
	}
	if len(o.Containers) == 0 {
		o.Containers = defaults.Containers
	}
	if len(o.Food) == 0 {
		o.Food = defaults.Food
	}
	return o
}

// DefaultRules returns the canonical rule table using the built-in overrides.
func DefaultRules() []Rule {
	return RulesWithOverrides(DefaultOverrides())
}

// RulesWithOverrides returns the canonical rule table in evaluation order.
// Empty override lists fall back to the built-in ones.
func RulesWithOverrides(o Overrides) []Rule {
	o = o.WithDefaults()
	clothes := NameIn(o.Clothes)

	return []Rule{
		{Category: model.CategoryAmmo, When: NamePrefix{"Ammo_"}},
		{Category: model.CategoryArmbands, When: NamePrefix{"Armband_"}},
		{Category: model.CategoryAmmoBoxes, When: NamePrefix{"AmmoBox_"}},
		{Category: model.CategoryAnimals, When: NamePrefix{"Animal_"}},
		{Category: model.CategoryContamination, When: NamePrefix{"Land_Container_", "Land_Train_", "ContaminatedArea_Dynamic"}},
		{Category: model.CategoryFlags, When: NamePrefix{"Flag_"}},
		{Category: model.CategoryStaticObjs, When: NamePrefix{"StaticObj_"}},
		{Category: model.CategoryVehicles, When: NamePrefix{"Offroad", "CivilianSedan", "Hatchback", "Sedan", "Truck_01", "Boat_"}},
		{Category: model.CategoryWrecks, When: NamePrefix{"Land_Wreck_", "Land_wreck_", "Wreck_"}},
		{Category: model.CategoryZombies, When: NamePrefix{"ZmbM_", "ZmbF_", "Zmbm_"}},
		{Category: model.CategorySeasonal, When: AnyOf{
			HasUsage("SeasonalEvent"),
			NamePrefix{"ChristmasTree", "Bonfire", "EasterEgg", "Aniversary"},
		}},
		{Category: model.CategoryClothes, When: AnyOf{clothes, CategoryIs("clothes")}},
		{Category: model.CategoryExplosives, When: CategoryIs("explosives")},
		{Category: model.CategoryContainers, When: AnyOf{CategoryIs("containers"), NamePrefix(o.Containers)}},
		{Category: model.CategoryFood, When: AnyOf{CategoryIs("food"), NameIn(o.Food)}},
		{Category: model.CategoryTools, When: AllOf{CategoryIs("tools"), Not{Predicate: clothes}}},
		{Category: model.CategoryWeapons, When: CategoryIs("weapons")},
		{Category: model.CategoryVehicleParts, When: CategoryIs("lootdispatch")},
		{Category: model.CategoryUncategorized, When: Always{}},
	}
}

// ValidateRules checks that a rule table can classify every element:
// it must be non-empty, name each category once, and end in a catch-all.
func ValidateRules(rules []Rule) error {
	if len(rules) == 0 {
		return fmt.Errorf("%w: no rules", common.ErrInvalidRules)
	}

	seen := make(map[model.Category]bool, len(rules))
	for i, rule := range rules {
		if rule.Category == "" {
			return fmt.Errorf("%w: rule %d has no category", common.ErrInvalidRules, i)
		}
		if rule.When == nil {
			return fmt.Errorf("%w: rule %d (%s) has no predicate", common.ErrInvalidRules, i, rule.Category)
		}
		if seen[rule.Category] {
			return fmt.Errorf("%w: category %s listed twice", common.ErrInvalidRules, rule.Category)
		}
		seen[rule.Category] = true
	}

	if _, ok := rules[len(rules)-1].When.(Always); !ok {
		return fmt.Errorf("%w: last rule must be a catch-all", common.ErrInvalidRules)
	}

	return nil
}
