package types

import "fmt"

// Category is one of the fixed spending categories.
//
// CategorySurplus ("excedente") is a pseudo-category: it appears as a bucket
// in monthly budgets to hold carried-over surplus, but it is not a valid
// category for expenses, budget edits or shortcuts.
type Category string

const (
	CategoryFood          Category = "alimentacion"
	CategoryTransport     Category = "transporte"
	CategoryEntertainment Category = "entretenimiento"
	CategoryServices      Category = "servicios"
	CategoryOther         Category = "otros"

	CategorySurplus Category = "excedente"
)

// Categories returns the fixed spending categories, without the surplus
// pseudo-category.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryServices,
		CategoryOther,
	}
}

// Valid reports whether the category is one of the fixed spending categories.
// The surplus pseudo-category is not a spending category.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryEntertainment, CategoryServices, CategoryOther:
		return true
	}

	return false
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Anything outside the fixed set and the surplus pseudo-category is
// rejected at the boundary.
func (c *Category) UnmarshalText(text []byte) error {
	category := Category(text)
	if !category.Valid() && category != CategorySurplus {
		return fmt.Errorf("unknown category: %q", string(text))
	}

	*c = category
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c), nil
}
