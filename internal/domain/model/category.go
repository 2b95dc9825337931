package model

import "slices"

// Category is the coarse display grouping derived for a project.
type Category string

const (
	CategoryAIML      Category = "AI/ML"
	CategoryReact     Category = "React"
	CategoryPython    Category = "Python"
	CategoryFullStack Category = "Full Stack"
)

// Categories returns every category label in display order.
func Categories() []Category {
	return []Category{CategoryAIML, CategoryReact, CategoryPython, CategoryFullStack}
}

// Valid reports whether c is one of the known category labels.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}
