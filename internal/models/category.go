package models

// Category name constants for the fixed spending categories.
const (
	CategoryUtility       = "Utility"
	CategoryFood          = "Food"
	CategoryGrocery       = "Grocery"
	CategoryMedical       = "Medical"
	CategoryTravel        = "Travel"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryUncategorized = "Uncategorized"
)

// CategoryConfig represents one category and its keyword set as configured
// in the categories YAML file. Order is significant: the first category whose
// keyword matches wins.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// KnownCategories returns the fixed category names in priority order,
// including the fallback.
func KnownCategories() []string {
	return []string{
		CategoryUtility,
		CategoryFood,
		CategoryGrocery,
		CategoryMedical,
		CategoryTravel,
		CategoryShopping,
		CategoryEntertainment,
		CategoryUncategorized,
	}
}
