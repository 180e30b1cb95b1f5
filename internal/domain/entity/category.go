package entity

// Category is one of the five fixed spend classifications.
type Category string

const (
	CategoryCompute    Category = "Compute"
	CategoryStorage    Category = "Storage"
	CategoryDatabase   Category = "Database"
	CategoryNetworking Category = "Networking"
	CategoryOther      Category = "Other"
)

// Categories lists every category in classification priority order. A service
// name matching keywords from two groups is assigned to the earlier one.
var Categories = []Category{
	CategoryCompute,
	CategoryStorage,
	CategoryDatabase,
	CategoryNetworking,
	CategoryOther,
}

// CategoryTotals maps each category to an accumulated spend amount. Totals are
// always dense: every category is present, zero when no spend occurred.
type CategoryTotals map[Category]float64

// NewCategoryTotals returns a zero-filled totals map over all five categories.
func NewCategoryTotals() CategoryTotals {
	totals := make(CategoryTotals, len(Categories))
	for _, category := range Categories {
		totals[category] = 0
	}
	return totals
}

// Sum returns the combined amount across all categories.
func (t CategoryTotals) Sum() float64 {
	var total float64
	for _, amount := range t {
		total += amount
	}
	return total
}
