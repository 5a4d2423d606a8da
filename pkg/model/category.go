package model

// Categories is the list of favor categories. Index 0 is only used to filter
// and is never stored on a favor.
var Categories = []string{
	"All",
	"Household",
	"Cooking / Eating",
	"Plants",
	"Animals",
	"Office",
	"Entertainment / Company",
	"Family",
	"Accompanying",
	"Transport",
	"Lending / Sharing",
	"Miscellaneous",
}

const unknownCategoryName = "Unknown"

// CategoryName returns the label for a category index
func CategoryName(category uint8) string {
	if int(category) >= len(Categories) {
		return unknownCategoryName
	}
	return Categories[category]
}

// IsValidFavorCategory returns true if the index can be set on a favor
func IsValidFavorCategory(category int) bool {
	return category > 0 && category < len(Categories)
}
