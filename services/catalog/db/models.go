package db

import "database/sql"

type ItemType struct {
	ID          int64
	Name        string
	Description sql.NullString
}

type ItemSubtype struct {
	ID          int64
	TypeID      int64
	Name        string
	Description sql.NullString
}

type ItemSlot struct {
	ID          int64
	Name        string
	Description sql.NullString
}

type Profession struct {
	ID            int64
	Name          string
	Description   sql.NullString
	MaxSkillLevel int64
}

type Item struct {
	ID                int64
	Name              string
	Description       sql.NullString
	TypeID            int64
	SubtypeID         sql.NullInt64
	SlotID            sql.NullInt64
	ItemLevel         sql.NullInt64
	RequiredLevel     int64
	Quality           string
	BindType          string
	MaxStack          int64
	VendorPriceCopper int64
	CreatedAt         int64
	UpdatedAt         int64
}

type Vendor struct {
	ID        int64
	Name      string
	Location  sql.NullString
	Faction   sql.NullString
	CreatedAt int64
}

type VendorItem struct {
	ID                 int64
	VendorID           int64
	ItemID             int64
	PriceCopper        int64
	StockQuantity      int64
	RequiredReputation sql.NullString
}

type Recipe struct {
	ID                 int64
	Name               string
	ProfessionID       int64
	CreatesItemID      int64
	RequiredSkillLevel int64
	RecipeType         string
	CreatedAt          int64
}

type RecipeIngredient struct {
	ID               int64
	RecipeID         int64
	IngredientItemID int64
	Quantity         int64
}
