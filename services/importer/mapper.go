package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"turtledb-backend/lib/scrapers/turtlewow"
	"turtledb-backend/lib/textutil"
	"turtledb-backend/services/catalog/db"
)

// professionAliases folds the shorthand profession spellings pages use
// onto the canonical reference names.
var professionAliases = map[string]string{
	"blacksmith":  "blacksmithing",
	"tailor":      "tailoring",
	"leatherwork": "leatherworking",
	"engineer":    "engineering",
	"alchemist":   "alchemy",
	"enchanter":   "enchanting",
	"cook":        "cooking",
}

// qualityNames maps scraped quality words, including the color synonyms
// players use, onto canonical quality names.
var qualityNames = map[string]string{
	"poor":      "poor",
	"common":    "common",
	"uncommon":  "uncommon",
	"rare":      "rare",
	"epic":      "epic",
	"legendary": "legendary",
	"artifact":  "artifact",
	"white":     "common",
	"gray":      "poor",
	"grey":      "poor",
	"green":     "uncommon",
	"blue":      "rare",
	"purple":    "epic",
	"orange":    "legendary",
}

var bindTypes = map[string]string{
	"none":    "none",
	"pickup":  "pickup",
	"equip":   "equip",
	"use":     "use",
	"account": "account",
	"bop":     "pickup",
	"boe":     "equip",
	"bou":     "use",
	"boa":     "account",
}

// mapper resolves scraped reference names against the database,
// creating missing rows on the fly. It operates on queries bound to the
// caller's transaction so nothing it creates outlives a rollback.
type mapper struct {
	qry *db.Queries
}

// getOrCreate is the shared lookup-then-insert used by every reference
// kind. find must return sql.ErrNoRows on a miss.
func (m mapper) getOrCreate(ctx context.Context, find func() (int64, error), create func() (int64, error)) (int64, error) {
	id, err := find()
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	return create()
}

func autoDescription(kind, name string) sql.NullString {
	return sql.NullString{
		String: fmt.Sprintf("Auto-created %s: %s", kind, name),
		Valid:  true,
	}
}

func (m mapper) resolveItemType(ctx context.Context, name string) (int64, error) {
	key := textutil.NormalizeKey(name)
	if key == "" {
		key = "miscellaneous"
	}
	return m.getOrCreate(ctx,
		func() (int64, error) {
			row, err := m.qry.GetItemTypeByName(ctx, key)
			return row.ID, err
		},
		func() (int64, error) {
			return m.qry.CreateItemType(ctx, db.CreateItemTypeParams{
				Name:        key,
				Description: autoDescription("item type", key),
			})
		},
	)
}

func (m mapper) resolveSubtype(ctx context.Context, typeID int64, name string) (sql.NullInt64, error) {
	key := textutil.NormalizeKey(name)
	if key == "" {
		return sql.NullInt64{}, nil
	}
	id, err := m.getOrCreate(ctx,
		func() (int64, error) {
			row, err := m.qry.GetItemSubtypeByName(ctx, db.GetItemSubtypeByNameParams{
				TypeID: typeID,
				Name:   key,
			})
			return row.ID, err
		},
		func() (int64, error) {
			return m.qry.CreateItemSubtype(ctx, db.CreateItemSubtypeParams{
				TypeID:      typeID,
				Name:        key,
				Description: autoDescription("item subtype", key),
			})
		},
	)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}

func (m mapper) resolveSlot(ctx context.Context, name string) (sql.NullInt64, error) {
	key := textutil.NormalizeKey(name)
	if key == "" {
		return sql.NullInt64{}, nil
	}
	id, err := m.getOrCreate(ctx,
		func() (int64, error) {
			row, err := m.qry.GetItemSlotByName(ctx, key)
			return row.ID, err
		},
		func() (int64, error) {
			return m.qry.CreateItemSlot(ctx, db.CreateItemSlotParams{
				Name:        key,
				Description: autoDescription("item slot", key),
			})
		},
	)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}

func (m mapper) resolveProfession(ctx context.Context, name string) (int64, error) {
	key := textutil.NormalizeKey(name)
	if canonical, ok := professionAliases[key]; ok {
		key = canonical
	}
	if key == "" {
		key = "unknown"
	}
	return m.getOrCreate(ctx,
		func() (int64, error) {
			row, err := m.qry.GetProfessionByName(ctx, key)
			return row.ID, err
		},
		func() (int64, error) {
			return m.qry.CreateProfession(ctx, db.CreateProfessionParams{
				Name:          key,
				Description:   autoDescription("profession", key),
				MaxSkillLevel: 375,
			})
		},
	)
}

// normalizeQuality falls back to common for words it does not know.
// The warning log keeps an unrecognized quality distinguishable from a
// page that really said common.
func normalizeQuality(ctx context.Context, raw string) string {
	key := textutil.NormalizeKey(raw)
	if key == "" {
		return "common"
	}
	if quality, ok := qualityNames[key]; ok {
		return quality
	}
	slog.WarnContext(ctx, "unrecognized item quality, defaulting to common", "quality", raw)
	return "common"
}

func normalizeBind(raw string) string {
	key := textutil.NormalizeKey(raw)
	if bind, ok := bindTypes[key]; ok {
		return bind
	}
	return "none"
}

// mapItem turns a scraped item into insert parameters, resolving every
// reference name. A missing item name is the only condition treated as
// a mapping failure, everything else degrades to defaults.
func (m mapper) mapItem(ctx context.Context, scraped turtlewow.ScrapedItem) (db.CreateItemParams, error) {
	name := textutil.CleanDisplay(scraped.Name)
	if name == "" {
		return db.CreateItemParams{}, newError(CodeMapping, "scraped item has no name", nil)
	}

	typeID, err := m.resolveItemType(ctx, scraped.ItemType)
	if err != nil {
		return db.CreateItemParams{}, err
	}
	subtypeID, err := m.resolveSubtype(ctx, typeID, scraped.Subtype)
	if err != nil {
		return db.CreateItemParams{}, err
	}
	slotID, err := m.resolveSlot(ctx, scraped.Slot)
	if err != nil {
		return db.CreateItemParams{}, err
	}

	var description sql.NullString
	if scraped.Description != "" {
		description = sql.NullString{String: scraped.Description, Valid: true}
	}
	var itemLevel sql.NullInt64
	if scraped.ItemLevel > 0 {
		itemLevel = sql.NullInt64{Int64: int64(scraped.ItemLevel), Valid: true}
	}
	requiredLevel := int64(scraped.RequiredLevel)
	if requiredLevel <= 0 {
		requiredLevel = 1
	}
	maxStack := int64(scraped.MaxStack)
	if maxStack <= 0 {
		maxStack = 1
	}

	return db.CreateItemParams{
		Name:              name,
		Description:       description,
		TypeID:            typeID,
		SubtypeID:         subtypeID,
		SlotID:            slotID,
		ItemLevel:         itemLevel,
		RequiredLevel:     requiredLevel,
		Quality:           normalizeQuality(ctx, scraped.Quality),
		BindType:          normalizeBind(scraped.BindType),
		MaxStack:          maxStack,
		VendorPriceCopper: int64(scraped.VendorPriceCopper),
	}, nil
}
