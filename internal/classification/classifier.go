// Package classification assigns type elements to categories using an
// ordered rule table where the first matching rule wins.
package classification

import (
	"github.com/Veraticus/typesplit/internal/model"
)

// Classifier evaluates elements against an ordered rule table.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier over a validated copy of rules.
func NewClassifier(rules []Rule) (*Classifier, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	owned := make([]Rule, len(rules))
	copy(owned, rules)

	return &Classifier{rules: owned}, nil
}

// Rules returns a copy of the rule table in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Categories returns the categories of the rule table in evaluation order.
func (c *Classifier) Categories() []model.Category {
	out := make([]model.Category, 0, len(c.rules))
	for _, r := range c.rules {
		out = append(out, r.Category)
	}
	return out
}

// Explain returns the rule that claims elem. The catch-all guarantees a result.
func (c *Classifier) Explain(elem model.TypeElement) Rule {
	for _, rule := range c.rules {
		if rule.When.Match(elem) {
			return rule
		}
	}
	// Unreachable with a validated table.
	return c.rules[len(c.rules)-1]
}

// Classify buckets every top-level type element of root. The document is
// only read, never modified.
func (c *Classifier) Classify(root *model.Node) *model.CategorizedSet {
	set := model.NewCategorizedSet(c.Categories())
	for _, elem := range model.TypeElements(root) {
		set.Add(c.Explain(elem).Category, elem)
	}
	return set
}
