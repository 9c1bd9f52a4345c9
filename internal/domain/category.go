package domain

// Category is a canonical spend category key. Raw transaction labels
// from aggregators get folded into one of these by the categories
// package; anything unrecognized lands in CategoryOther.
type Category string

const (
	CategoryDining        Category = "Dining"
	CategoryGroceries     Category = "Groceries"
	CategoryTravel        Category = "Travel"
	CategoryGas           Category = "Gas"
	CategoryTransit       Category = "Transit"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryStreaming     Category = "Streaming"
	CategoryUtilities     Category = "Utilities"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

func AllCategories() []Category {
	return []Category{
		CategoryDining,
		CategoryGroceries,
		CategoryTravel,
		CategoryGas,
		CategoryTransit,
		CategoryEntertainment,
		CategoryShopping,
		CategoryStreaming,
		CategoryUtilities,
		CategoryHealth,
		CategoryOther,
	}
}
