package model

// CategorizedSet maps categories to the type elements assigned to them.
// Categories keep the order they were declared in and each sequence keeps
// source document order.
type CategorizedSet struct {
	items map[Category][]TypeElement
	order []Category
}

// NewCategorizedSet creates an empty set with one sequence per category.
func NewCategorizedSet(categories []Category) *CategorizedSet {
	s := &CategorizedSet{
		items: make(map[Category][]TypeElement, len(categories)),
		order: make([]Category, 0, len(categories)),
	}
	for _, c := range categories {
		if _, ok := s.items[c]; ok {
			continue
		}
		s.items[c] = nil
		s.order = append(s.order, c)
	}
	return s
}

// Add appends elem to the category's sequence. Unknown categories are
// appended to the category order.
func (s *CategorizedSet) Add(c Category, elem TypeElement) {
	if _, ok := s.items[c]; !ok {
		s.order = append(s.order, c)
	}
	s.items[c] = append(s.items[c], elem)
}

// Elements returns the elements assigned to c in document order.
func (s *CategorizedSet) Elements(c Category) []TypeElement {
	return s.items[c]
}

// Categories returns every category in declaration order, including empty ones.
func (s *CategorizedSet) Categories() []Category {
	out := make([]Category, len(s.order))
	copy(out, s.order)
	return out
}

// NonEmpty returns the categories holding at least one element.
func (s *CategorizedSet) NonEmpty() []Category {
	var out []Category
	for _, c := range s.order {
		if len(s.items[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the total number of elements across all categories.
func (s *CategorizedSet) Len() int {
	total := 0
	for _, elems := range s.items {
		total += len(elems)
	}
	return total
}

// Counts returns the number of elements per category.
func (s *CategorizedSet) Counts() map[Category]int {
	counts := make(map[Category]int, len(s.items))
	for c, elems := range s.items {
		counts[c] = len(elems)
	}
	return counts
}
