package classification

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/typesplit/internal/model"
)

// Predicate decides whether a type element belongs to a rule's category.
type Predicate interface {
	// Match reports whether elem satisfies the predicate.
	Match(elem model.TypeElement) bool
	// Describe renders the predicate for reports.
	Describe() string
}

// NamePrefix matches elements whose name starts with any of the prefixes.
// Elements without a name never match.
type NamePrefix []string

// Match implements Predicate.
func (p NamePrefix) Match(elem model.TypeElement) bool {
	name := elem.Name()
	if name == "" {
		return false
	}
	for _, prefix := range p {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Describe implements Predicate.
func (p NamePrefix) Describe() string {
	return "name starts with " + quoteList(p)
}

// NameIn matches elements whose name is exactly one of the listed names.
type NameIn []string

// Match implements Predicate.
func (p NameIn) Match(elem model.TypeElement) bool {
	name := elem.Name()
	return name != "" && slices.Contains(p, name)
}

// Describe implements Predicate.
func (p NameIn) Describe() string {
	return "name in " + quoteList(p)
}

// CategoryIs matches elements whose category child has the given name,
// compared case-insensitively.
type CategoryIs string

// Match implements Predicate.
func (p CategoryIs) Match(elem model.TypeElement) bool {
	category := elem.CategoryName()
	return category != "" && strings.EqualFold(category, string(p))
}

// Describe implements Predicate.
func (p CategoryIs) Describe() string {
	return fmt.Sprintf("category is %q", string(p))
}

// HasUsage matches elements carrying a usage child with exactly this name.
type HasUsage string

// Match implements Predicate.
func (p HasUsage) Match(elem model.TypeElement) bool {
	return slices.Contains(elem.Usages(), string(p))
}

// Describe implements Predicate.
func (p HasUsage) Describe() string {
	return fmt.Sprintf("usage is %q", string(p))
}

// AnyOf matches when at least one of its predicates matches.
type AnyOf []Predicate

// Match implements Predicate.
func (p AnyOf) Match(elem model.TypeElement) bool {
	for _, pred := range p {
		if pred.Match(elem) {
			return true
		}
	}
	return false
}

// Describe implements Predicate.
func (p AnyOf) Describe() string {
	return joinDescriptions(p, " OR ")
}

// AllOf matches when every one of its predicates matches.
type AllOf []Predicate

// Match implements Predicate.
func (p AllOf) Match(elem model.TypeElement) bool {
	for _, pred := range p {
		if !pred.Match(elem) {
			return false
		}
	}
	return len(p) > 0
}

// Describe implements Predicate.
func (p AllOf) Describe() string {
	return joinDescriptions(p, " AND ")
}

// Not inverts a predicate.
type Not struct {
	Predicate Predicate
}

// Match implements Predicate.
func (p Not) Match(elem model.TypeElement) bool {
	return !p.Predicate.Match(elem)
}

// Describe implements Predicate.
func (p Not) Describe() string {
	return "NOT (" + p.Predicate.Describe() + ")"
}

// Always matches every element. It is the catch-all at the end of a rule table.
type Always struct{}

// Match implements Predicate.
func (Always) Match(model.TypeElement) bool {
	return true
}

// Describe implements Predicate.
func (Always) Describe() string {
	return "always"
}

func joinDescriptions(preds []Predicate, sep string) string {
	parts := make([]string, 0, len(preds))
	for _, pred := range preds {
		d := pred.Describe()
		if _, nested := pred.(AnyOf); nested {
			d = "(" + d + ")"
		}
		if _, nested := pred.(AllOf); nested {
			d = "(" + d + ")"
		}
		parts = append(parts, d)
	}
	return strings.Join(parts, sep)
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
