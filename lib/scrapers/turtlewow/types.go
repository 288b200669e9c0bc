package turtlewow

// ScrapedItem is the transient representation of an item page, not yet
// validated against reference data.
type ScrapedItem struct {
	Name     string
	ItemType string
	// Subtype and Slot are empty when the page carried no recognizable
	// keyword for them.
	Subtype string
	Slot    string
	// ItemLevel is 0 when absent from the page.
	ItemLevel     int
	RequiredLevel int
	Quality       string
	Description   string
	// SpellIDs are opaque external spell identifiers in document order.
	// The page may repeat a spell, consumers must tolerate duplicates.
	SpellIDs          []string
	VendorPriceCopper int
	BindType          string
	MaxStack          int
}

type Ingredient struct {
	Name     string
	Quantity int
}

// ScrapedRecipe is the transient representation of a spell page.
// Ingredient names refer to other items by display name, not by id.
type ScrapedRecipe struct {
	SpellID       string
	Name          string
	Profession    string
	RequiredSkill int
	Ingredients   []Ingredient
	RecipeType    string
}
