package entity

// Category is the enumerated partition key of the catalog. The underlying
// document store shards on this value, so every stored article must carry
// exactly one of the known categories.
type Category string

// The fixed category set. These are the only values the partition strategy
// routes on.
const (
	CategorySports     Category = "Sports"
	CategoryPolitics   Category = "Politics"
	CategoryTechnology Category = "Technology"
	CategoryHealth     Category = "Health"
	CategoryCulture    Category = "Culture"
)

// Categories lists every known category in a stable order.
func Categories() []Category {
	return []Category{
		CategorySports,
		CategoryPolitics,
		CategoryTechnology,
		CategoryHealth,
		CategoryCulture,
	}
}

// IsValid reports whether c is a member of the fixed category set.
func (c Category) IsValid() bool {
	switch c {
	case CategorySports, CategoryPolitics, CategoryTechnology, CategoryHealth, CategoryCulture:
		return true
	}
	return false
}

// String returns the category as its wire value.
func (c Category) String() string { return string(c) }

// ParseCategory validates an externally supplied category value.
// Returns a ValidationError if the value is not in the fixed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", &ValidationError{Field: "category", Message: "must be one of Sports, Politics, Technology, Health, Culture"}
	}
	return c, nil
}
