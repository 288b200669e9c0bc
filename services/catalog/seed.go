package catalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"turtledb-backend/services/catalog/db"
)

type seedReference struct {
	name        string
	description string
}

var seedItemTypes = []seedReference{
	{"armor", "Protective equipment worn by characters"},
	{"weapon", "Combat equipment for dealing damage"},
	{"consumable", "Items that can be used and consumed"},
	{"trade_goods", "Materials used in professions and trading"},
	{"miscellaneous", "Various utility and special items"},
}

var seedSubtypes = []struct {
	name        string
	description string
	itemType    string
}{
	{"plate", "Heavy metal armor for warriors and paladins", "armor"},
	{"cloth", "Light fabric armor for casters", "armor"},
	{"leather", "Medium armor for rogues and hunters", "armor"},
	{"mail", "Chain armor for hunters and shamans", "armor"},
	{"sword", "Bladed melee weapons", "weapon"},
	{"staff", "Two-handed casting weapons", "weapon"},
	{"mace", "Blunt melee weapons", "weapon"},
}

var seedSlots = []seedReference{
	{"head", "Helmet or hat slot"},
	{"chest", "Chest armor slot"},
	{"feet", "Boot or shoe slot"},
	{"legs", "Pants or leggings slot"},
	{"main_hand", "Primary weapon slot"},
	{"off_hand", "Secondary weapon or shield slot"},
	{"hands", "Gloves or gauntlets slot"},
	{"waist", "Belt slot"},
}

var seedProfessions = []seedReference{
	{"blacksmithing", "Crafting metal weapons and armor"},
	{"tailoring", "Creating cloth armor and bags"},
	{"alchemy", "Brewing potions and elixirs"},
	{"leatherworking", "Crafting leather armor and accessories"},
	{"enchanting", "Imbuing equipment with magical properties"},
	{"engineering", "Building gadgets, explosives and devices"},
	{"cooking", "Preparing food with useful effects"},
	{"first aid", "Crafting bandages"},
}

type seedItem struct {
	name          string
	description   string
	itemType      string
	subtype       string
	slot          string
	itemLevel     int64
	requiredLevel int64
	quality       string
	bindType      string
	maxStack      int64
	priceCopper   int64
}

var seedItems = []seedItem{
	{
		name:          "Abyssal Inscribed Greaves",
		description:   "Heavy plate boots inscribed with abyssal runes",
		itemType:      "armor",
		subtype:       "plate",
		slot:          "feet",
		itemLevel:     65,
		requiredLevel: 60,
		quality:       "rare",
		bindType:      "pickup",
		maxStack:      1,
		priceCopper:   123456,
	},
	{
		name:          "Titanic Leggings",
		description:   "Massive plate pants forged with titanic strength",
		itemType:      "armor",
		subtype:       "plate",
		slot:          "legs",
		itemLevel:     70,
		requiredLevel: 65,
		quality:       "epic",
		bindType:      "pickup",
		maxStack:      1,
	},
	{
		name:          "Arcanite Bar",
		description:   "A bar of refined arcanite, used in advanced smithing",
		itemType:      "trade_goods",
		requiredLevel: 1,
		quality:       "uncommon",
		bindType:      "none",
		maxStack:      20,
		priceCopper:   50000,
	},
	{
		name:          "Enchanted Thorium Bar",
		description:   "Thorium infused with magical energy",
		itemType:      "trade_goods",
		requiredLevel: 1,
		quality:       "uncommon",
		bindType:      "none",
		maxStack:      20,
		priceCopper:   30000,
	},
}

type seedRecipe struct {
	name          string
	profession    string
	createsItem   string
	requiredSkill int64
	ingredients   []struct {
		item     string
		quantity int64
	}
}

var seedRecipes = []seedRecipe{
	{
		name:          "Titanic Leggings",
		profession:    "blacksmithing",
		createsItem:   "Titanic Leggings",
		requiredSkill: 300,
		ingredients: []struct {
			item     string
			quantity int64
		}{
			{"Arcanite Bar", 12},
			{"Enchanted Thorium Bar", 20},
		},
	},
}

// Seed inserts the reference rows and a handful of starter items and
// recipes. Every insert is guarded by a lookup so running it against an
// already seeded database is a no-op.
func Seed(ctx context.Context, database *sql.DB) error {
	ctx, span := tracer.Start(ctx, "Seed")
	defer span.End()

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	qry := db.New(database).WithTx(tx)

	typeIDs := map[string]int64{}
	for _, t := range seedItemTypes {
		existing, err := qry.GetItemTypeByName(ctx, t.name)
		if err == nil {
			typeIDs[t.name] = existing.ID
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		id, err := qry.CreateItemType(ctx, db.CreateItemTypeParams{
			Name:        t.name,
			Description: sql.NullString{String: t.description, Valid: true},
		})
		if err != nil {
			return err
		}
		typeIDs[t.name] = id
	}

	subtypeIDs := map[string]int64{}
	for _, st := range seedSubtypes {
		existing, err := qry.GetItemSubtypeByName(ctx, db.GetItemSubtypeByNameParams{
			TypeID: typeIDs[st.itemType],
			Name:   st.name,
		})
		if err == nil {
			subtypeIDs[st.name] = existing.ID
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		id, err := qry.CreateItemSubtype(ctx, db.CreateItemSubtypeParams{
			TypeID:      typeIDs[st.itemType],
			Name:        st.name,
			Description: sql.NullString{String: st.description, Valid: true},
		})
		if err != nil {
			return err
		}
		subtypeIDs[st.name] = id
	}

	slotIDs := map[string]int64{}
	for _, sl := range seedSlots {
		existing, err := qry.GetItemSlotByName(ctx, sl.name)
		if err == nil {
			slotIDs[sl.name] = existing.ID
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		id, err := qry.CreateItemSlot(ctx, db.CreateItemSlotParams{
			Name:        sl.name,
			Description: sql.NullString{String: sl.description, Valid: true},
		})
		if err != nil {
			return err
		}
		slotIDs[sl.name] = id
	}

	professionIDs := map[string]int64{}
	for _, p := range seedProfessions {
		existing, err := qry.GetProfessionByName(ctx, p.name)
		if err == nil {
			professionIDs[p.name] = existing.ID
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		id, err := qry.CreateProfession(ctx, db.CreateProfessionParams{
			Name:          p.name,
			Description:   sql.NullString{String: p.description, Valid: true},
			MaxSkillLevel: 375,
		})
		if err != nil {
			return err
		}
		professionIDs[p.name] = id
	}

	itemIDs := map[string]int64{}
	for _, it := range seedItems {
		existing, err := qry.GetItemByName(ctx, it.name)
		if err == nil {
			itemIDs[it.name] = existing.ID
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		params := db.CreateItemParams{
			Name:              it.name,
			Description:       sql.NullString{String: it.description, Valid: true},
			TypeID:            typeIDs[it.itemType],
			RequiredLevel:     it.requiredLevel,
			Quality:           it.quality,
			BindType:          it.bindType,
			MaxStack:          it.maxStack,
			VendorPriceCopper: it.priceCopper,
		}
		if it.subtype != "" {
			params.SubtypeID = sql.NullInt64{Int64: subtypeIDs[it.subtype], Valid: true}
		}
		if it.slot != "" {
			params.SlotID = sql.NullInt64{Int64: slotIDs[it.slot], Valid: true}
		}
		if it.itemLevel > 0 {
			params.ItemLevel = sql.NullInt64{Int64: it.itemLevel, Valid: true}
		}
		id, err := qry.CreateItem(ctx, params)
		if err != nil {
			return err
		}
		itemIDs[it.name] = id
	}

	for _, r := range seedRecipes {
		_, err := qry.GetRecipeByNameAndItem(ctx, db.GetRecipeByNameAndItemParams{
			Name:          r.name,
			CreatesItemID: itemIDs[r.createsItem],
		})
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		recipeID, err := qry.CreateRecipe(ctx, db.CreateRecipeParams{
			Name:               r.name,
			ProfessionID:       professionIDs[r.profession],
			CreatesItemID:      itemIDs[r.createsItem],
			RequiredSkillLevel: r.requiredSkill,
			RecipeType:         "learned",
		})
		if err != nil {
			return err
		}
		for _, ing := range r.ingredients {
			err := qry.CreateRecipeIngredient(ctx, db.CreateRecipeIngredientParams{
				RecipeID:         recipeID,
				IngredientItemID: itemIDs[ing.item],
				Quantity:         ing.quantity,
			})
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.InfoContext(ctx, "seeded catalog database")
	return nil
}
