package inventory

// Category is the closed set of sellable item kinds.
//
// The canonical name (the string value) is stable and used in persistence
// and filter matching. The display name is presentation-only. The two sets
// are a total bijection; no category can be added at runtime.
type Category string

const (
	CategoryDrink          Category = "DRINK"
	CategorySides          Category = "SIDES"
	CategoryMiniDog        Category = "MINI_DOG"
	CategoryHotdog         Category = "HOTDOG"
	CategoryHotdogSandwich Category = "HOTDOG_SANDWICH"
)

// Categories lists every category in menu order.
var Categories = []Category{
	CategoryDrink,
	CategorySides,
	CategoryMiniDog,
	CategoryHotdog,
	CategoryHotdogSandwich,
}

var displayNames = map[Category]string{
	CategoryDrink:          "Drink",
	CategorySides:          "Sides",
	CategoryMiniDog:        "Mini Dog",
	CategoryHotdog:         "Hotdog",
	CategoryHotdogSandwich: "Hotdog Sandwich",
}

// String returns the canonical name.
func (c Category) String() string {
	return string(c)
}

// DisplayName returns the human-readable label for the category.
// Returns the canonical name for values outside the enumeration.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	_, ok := displayNames[c]
	return ok
}

// ParseCategory resolves a canonical name to its Category.
// The match is exact; "HOTDOG" parses, "hotdog" and "Hotdog" do not.
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	if c.Valid() {
		return c, true
	}
	return "", false
}

// ParseDisplayName resolves a display label ("Mini Dog") to its Category.
func ParseDisplayName(label string) (Category, bool) {
	for c, name := range displayNames {
		if name == label {
			return c, true
		}
	}
	return "", false
}
