package db

import (
	"context"
	"database/sql"
)

const getItemTypeByName = `-- name: GetItemTypeByName :one
SELECT id, name, description FROM item_types WHERE name = ?
`

func (q *Queries) GetItemTypeByName(ctx context.Context, name string) (ItemType, error) {
	row := q.db.QueryRowContext(ctx, getItemTypeByName, name)
	var i ItemType
	err := row.Scan(&i.ID, &i.Name, &i.Description)
	return i, err
}

const createItemType = `-- name: CreateItemType :one
INSERT INTO item_types (name, description) VALUES (?, ?) RETURNING id
`

type CreateItemTypeParams struct {
	Name        string
	Description sql.NullString
}

func (q *Queries) CreateItemType(ctx context.Context, arg CreateItemTypeParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createItemType, arg.Name, arg.Description)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const listItemTypes = `-- name: ListItemTypes :many
SELECT id, name, description FROM item_types ORDER BY name
`

func (q *Queries) ListItemTypes(ctx context.Context) ([]ItemType, error) {
	rows, err := q.db.QueryContext(ctx, listItemTypes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ItemType
	for rows.Next() {
		var i ItemType
		if err := rows.Scan(&i.ID, &i.Name, &i.Description); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getItemSubtypeByName = `-- name: GetItemSubtypeByName :one
SELECT id, type_id, name, description FROM item_subtypes
WHERE type_id = ? AND name = ?
`

type GetItemSubtypeByNameParams struct {
	TypeID int64
	Name   string
}

func (q *Queries) GetItemSubtypeByName(ctx context.Context, arg GetItemSubtypeByNameParams) (ItemSubtype, error) {
	row := q.db.QueryRowContext(ctx, getItemSubtypeByName, arg.TypeID, arg.Name)
	var i ItemSubtype
	err := row.Scan(&i.ID, &i.TypeID, &i.Name, &i.Description)
	return i, err
}

const createItemSubtype = `-- name: CreateItemSubtype :one
INSERT INTO item_subtypes (type_id, name, description) VALUES (?, ?, ?) RETURNING id
`

type CreateItemSubtypeParams struct {
	TypeID      int64
	Name        string
	Description sql.NullString
}

func (q *Queries) CreateItemSubtype(ctx context.Context, arg CreateItemSubtypeParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createItemSubtype, arg.TypeID, arg.Name, arg.Description)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getItemSlotByName = `-- name: GetItemSlotByName :one
SELECT id, name, description FROM item_slots WHERE name = ?
`

func (q *Queries) GetItemSlotByName(ctx context.Context, name string) (ItemSlot, error) {
	row := q.db.QueryRowContext(ctx, getItemSlotByName, name)
	var i ItemSlot
	err := row.Scan(&i.ID, &i.Name, &i.Description)
	return i, err
}

const createItemSlot = `-- name: CreateItemSlot :one
INSERT INTO item_slots (name, description) VALUES (?, ?) RETURNING id
`

type CreateItemSlotParams struct {
	Name        string
	Description sql.NullString
}

func (q *Queries) CreateItemSlot(ctx context.Context, arg CreateItemSlotParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createItemSlot, arg.Name, arg.Description)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getProfessionByName = `-- name: GetProfessionByName :one
SELECT id, name, description, max_skill_level FROM professions WHERE name = ?
`

func (q *Queries) GetProfessionByName(ctx context.Context, name string) (Profession, error) {
	row := q.db.QueryRowContext(ctx, getProfessionByName, name)
	var i Profession
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.MaxSkillLevel)
	return i, err
}

const createProfession = `-- name: CreateProfession :one
INSERT INTO professions (name, description, max_skill_level) VALUES (?, ?, ?) RETURNING id
`

type CreateProfessionParams struct {
	Name          string
	Description   sql.NullString
	MaxSkillLevel int64
}

func (q *Queries) CreateProfession(ctx context.Context, arg CreateProfessionParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createProfession, arg.Name, arg.Description, arg.MaxSkillLevel)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const listProfessions = `-- name: ListProfessions :many
SELECT id, name, description, max_skill_level FROM professions ORDER BY name
`

func (q *Queries) ListProfessions(ctx context.Context) ([]Profession, error) {
	rows, err := q.db.QueryContext(ctx, listProfessions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Profession
	for rows.Next() {
		var i Profession
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.MaxSkillLevel); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getItem = `-- name: GetItem :one
SELECT id, name, description, type_id, subtype_id, slot_id, item_level,
       required_level, quality, bind_type, max_stack, vendor_price_copper,
       created_at, updated_at
FROM items WHERE id = ?
`

func (q *Queries) GetItem(ctx context.Context, id int64) (Item, error) {
	row := q.db.QueryRowContext(ctx, getItem, id)
	var i Item
	err := row.Scan(
		&i.ID, &i.Name, &i.Description, &i.TypeID, &i.SubtypeID, &i.SlotID,
		&i.ItemLevel, &i.RequiredLevel, &i.Quality, &i.BindType, &i.MaxStack,
		&i.VendorPriceCopper, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

const getItemByName = `-- name: GetItemByName :one
SELECT id, name, description, type_id, subtype_id, slot_id, item_level,
       required_level, quality, bind_type, max_stack, vendor_price_copper,
       created_at, updated_at
FROM items WHERE name = ?
`

func (q *Queries) GetItemByName(ctx context.Context, name string) (Item, error) {
	row := q.db.QueryRowContext(ctx, getItemByName, name)
	var i Item
	err := row.Scan(
		&i.ID, &i.Name, &i.Description, &i.TypeID, &i.SubtypeID, &i.SlotID,
		&i.ItemLevel, &i.RequiredLevel, &i.Quality, &i.BindType, &i.MaxStack,
		&i.VendorPriceCopper, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

const createItem = `-- name: CreateItem :one
INSERT INTO items (
    name, description, type_id, subtype_id, slot_id, item_level,
    required_level, quality, bind_type, max_stack, vendor_price_copper
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id
`

type CreateItemParams struct {
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
}

func (q *Queries) CreateItem(ctx context.Context, arg CreateItemParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createItem,
		arg.Name, arg.Description, arg.TypeID, arg.SubtypeID, arg.SlotID,
		arg.ItemLevel, arg.RequiredLevel, arg.Quality, arg.BindType,
		arg.MaxStack, arg.VendorPriceCopper,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const listItems = `-- name: ListItems :many
SELECT id, name, description, type_id, subtype_id, slot_id, item_level,
       required_level, quality, bind_type, max_stack, vendor_price_copper,
       created_at, updated_at
FROM items ORDER BY name LIMIT ? OFFSET ?
`

type ListItemsParams struct {
	Limit  int64
	Offset int64
}

func (q *Queries) ListItems(ctx context.Context, arg ListItemsParams) ([]Item, error) {
	rows, err := q.db.QueryContext(ctx, listItems, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		var i Item
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Description, &i.TypeID, &i.SubtypeID, &i.SlotID,
			&i.ItemLevel, &i.RequiredLevel, &i.Quality, &i.BindType, &i.MaxStack,
			&i.VendorPriceCopper, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listItemNames = `-- name: ListItemNames :many
SELECT name FROM items ORDER BY name
`

func (q *Queries) ListItemNames(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listItemNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		items = append(items, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getItemDetail = `-- name: GetItemDetail :one
SELECT i.id, i.name, i.description, i.type_id, i.subtype_id, i.slot_id,
       i.item_level, i.required_level, i.quality, i.bind_type, i.max_stack,
       i.vendor_price_copper, i.created_at, i.updated_at,
       t.name AS type_name, st.name AS subtype_name, sl.name AS slot_name
FROM items i
JOIN item_types t ON t.id = i.type_id
LEFT JOIN item_subtypes st ON st.id = i.subtype_id
LEFT JOIN item_slots sl ON sl.id = i.slot_id
WHERE i.id = ?
`

type GetItemDetailRow struct {
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
	TypeName          string
	SubtypeName       sql.NullString
	SlotName          sql.NullString
}

func (q *Queries) GetItemDetail(ctx context.Context, id int64) (GetItemDetailRow, error) {
	row := q.db.QueryRowContext(ctx, getItemDetail, id)
	var i GetItemDetailRow
	err := row.Scan(
		&i.ID, &i.Name, &i.Description, &i.TypeID, &i.SubtypeID, &i.SlotID,
		&i.ItemLevel, &i.RequiredLevel, &i.Quality, &i.BindType, &i.MaxStack,
		&i.VendorPriceCopper, &i.CreatedAt, &i.UpdatedAt,
		&i.TypeName, &i.SubtypeName, &i.SlotName,
	)
	return i, err
}

const listItemDetails = `-- name: ListItemDetails :many
SELECT i.id, i.name, i.description, i.type_id, i.subtype_id, i.slot_id,
       i.item_level, i.required_level, i.quality, i.bind_type, i.max_stack,
       i.vendor_price_copper, i.created_at, i.updated_at,
       t.name AS type_name, st.name AS subtype_name, sl.name AS slot_name
FROM items i
JOIN item_types t ON t.id = i.type_id
LEFT JOIN item_subtypes st ON st.id = i.subtype_id
LEFT JOIN item_slots sl ON sl.id = i.slot_id
ORDER BY i.name
LIMIT ? OFFSET ?
`

type ListItemDetailsParams struct {
	Limit  int64
	Offset int64
}

func (q *Queries) ListItemDetails(ctx context.Context, arg ListItemDetailsParams) ([]GetItemDetailRow, error) {
	rows, err := q.db.QueryContext(ctx, listItemDetails, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetItemDetailRow
	for rows.Next() {
		var i GetItemDetailRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Description, &i.TypeID, &i.SubtypeID, &i.SlotID,
			&i.ItemLevel, &i.RequiredLevel, &i.Quality, &i.BindType, &i.MaxStack,
			&i.VendorPriceCopper, &i.CreatedAt, &i.UpdatedAt,
			&i.TypeName, &i.SubtypeName, &i.SlotName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateItem = `-- name: UpdateItem :exec
UPDATE items SET
    name = ?,
    description = ?,
    item_level = ?,
    required_level = ?,
    quality = ?,
    bind_type = ?,
    max_stack = ?,
    vendor_price_copper = ?,
    updated_at = unixepoch()
WHERE id = ?
`

type UpdateItemParams struct {
	Name              string
	Description       sql.NullString
	ItemLevel         sql.NullInt64
	RequiredLevel     int64
	Quality           string
	BindType          string
	MaxStack          int64
	VendorPriceCopper int64
	ID                int64
}

func (q *Queries) UpdateItem(ctx context.Context, arg UpdateItemParams) error {
	_, err := q.db.ExecContext(ctx, updateItem,
		arg.Name, arg.Description, arg.ItemLevel, arg.RequiredLevel,
		arg.Quality, arg.BindType, arg.MaxStack, arg.VendorPriceCopper, arg.ID,
	)
	return err
}

const deleteItem = `-- name: DeleteItem :exec
DELETE FROM items WHERE id = ?
`

func (q *Queries) DeleteItem(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteItem, id)
	return err
}

const getRecipeByNameAndItem = `-- name: GetRecipeByNameAndItem :one
SELECT id, name, profession_id, creates_item_id, required_skill_level,
       recipe_type, created_at
FROM recipes WHERE name = ? AND creates_item_id = ?
`

type GetRecipeByNameAndItemParams struct {
	Name          string
	CreatesItemID int64
}

func (q *Queries) GetRecipeByNameAndItem(ctx context.Context, arg GetRecipeByNameAndItemParams) (Recipe, error) {
	row := q.db.QueryRowContext(ctx, getRecipeByNameAndItem, arg.Name, arg.CreatesItemID)
	var i Recipe
	err := row.Scan(
		&i.ID, &i.Name, &i.ProfessionID, &i.CreatesItemID,
		&i.RequiredSkillLevel, &i.RecipeType, &i.CreatedAt,
	)
	return i, err
}

const createRecipe = `-- name: CreateRecipe :one
INSERT INTO recipes (
    name, profession_id, creates_item_id, required_skill_level, recipe_type
) VALUES (?, ?, ?, ?, ?)
RETURNING id
`

type CreateRecipeParams struct {
	Name               string
	ProfessionID       int64
	CreatesItemID      int64
	RequiredSkillLevel int64
	RecipeType         string
}

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createRecipe,
		arg.Name, arg.ProfessionID, arg.CreatesItemID,
		arg.RequiredSkillLevel, arg.RecipeType,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const listRecipesForItem = `-- name: ListRecipesForItem :many
SELECT r.id, r.name, r.profession_id, r.creates_item_id, r.required_skill_level,
       r.recipe_type, r.created_at, p.name AS profession_name
FROM recipes r
JOIN professions p ON p.id = r.profession_id
WHERE r.creates_item_id = ?
ORDER BY r.name
`

type ListRecipesForItemRow struct {
	ID                 int64
	Name               string
	ProfessionID       int64
	CreatesItemID      int64
	RequiredSkillLevel int64
	RecipeType         string
	CreatedAt          int64
	ProfessionName     string
}

func (q *Queries) ListRecipesForItem(ctx context.Context, createsItemID int64) ([]ListRecipesForItemRow, error) {
	rows, err := q.db.QueryContext(ctx, listRecipesForItem, createsItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListRecipesForItemRow
	for rows.Next() {
		var i ListRecipesForItemRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.ProfessionID, &i.CreatesItemID,
			&i.RequiredSkillLevel, &i.RecipeType, &i.CreatedAt, &i.ProfessionName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createRecipeIngredient = `-- name: CreateRecipeIngredient :exec
INSERT INTO recipe_ingredients (recipe_id, ingredient_item_id, quantity)
VALUES (?, ?, ?)
`

type CreateRecipeIngredientParams struct {
	RecipeID         int64
	IngredientItemID int64
	Quantity         int64
}

func (q *Queries) CreateRecipeIngredient(ctx context.Context, arg CreateRecipeIngredientParams) error {
	_, err := q.db.ExecContext(ctx, createRecipeIngredient,
		arg.RecipeID, arg.IngredientItemID, arg.Quantity,
	)
	return err
}

const listRecipeIngredients = `-- name: ListRecipeIngredients :many
SELECT ri.id, ri.recipe_id, ri.ingredient_item_id, ri.quantity, i.name AS ingredient_name
FROM recipe_ingredients ri
JOIN items i ON i.id = ri.ingredient_item_id
WHERE ri.recipe_id = ?
ORDER BY ri.id
`

type ListRecipeIngredientsRow struct {
	ID               int64
	RecipeID         int64
	IngredientItemID int64
	Quantity         int64
	IngredientName   string
}

func (q *Queries) ListRecipeIngredients(ctx context.Context, recipeID int64) ([]ListRecipeIngredientsRow, error) {
	rows, err := q.db.QueryContext(ctx, listRecipeIngredients, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListRecipeIngredientsRow
	for rows.Next() {
		var i ListRecipeIngredientsRow
		if err := rows.Scan(&i.ID, &i.RecipeID, &i.IngredientItemID, &i.Quantity, &i.IngredientName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countRecipeIngredients = `-- name: CountRecipeIngredients :one
SELECT COUNT(*) FROM recipe_ingredients WHERE recipe_id = ?
`

func (q *Queries) CountRecipeIngredients(ctx context.Context, recipeID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, countRecipeIngredients, recipeID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createVendor = `-- name: CreateVendor :one
INSERT INTO vendors (name, location, faction) VALUES (?, ?, ?) RETURNING id
`

type CreateVendorParams struct {
	Name     string
	Location sql.NullString
	Faction  sql.NullString
}

func (q *Queries) CreateVendor(ctx context.Context, arg CreateVendorParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createVendor, arg.Name, arg.Location, arg.Faction)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getVendor = `-- name: GetVendor :one
SELECT id, name, location, faction, created_at FROM vendors WHERE id = ?
`

func (q *Queries) GetVendor(ctx context.Context, id int64) (Vendor, error) {
	row := q.db.QueryRowContext(ctx, getVendor, id)
	var i Vendor
	err := row.Scan(&i.ID, &i.Name, &i.Location, &i.Faction, &i.CreatedAt)
	return i, err
}

const listVendors = `-- name: ListVendors :many
SELECT id, name, location, faction, created_at FROM vendors ORDER BY name
`

func (q *Queries) ListVendors(ctx context.Context) ([]Vendor, error) {
	rows, err := q.db.QueryContext(ctx, listVendors)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Vendor
	for rows.Next() {
		var i Vendor
		if err := rows.Scan(&i.ID, &i.Name, &i.Location, &i.Faction, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createVendorItem = `-- name: CreateVendorItem :exec
INSERT INTO vendor_items (vendor_id, item_id, price_copper, stock_quantity, required_reputation)
VALUES (?, ?, ?, ?, ?)
`

type CreateVendorItemParams struct {
	VendorID           int64
	ItemID             int64
	PriceCopper        int64
	StockQuantity      int64
	RequiredReputation sql.NullString
}

func (q *Queries) CreateVendorItem(ctx context.Context, arg CreateVendorItemParams) error {
	_, err := q.db.ExecContext(ctx, createVendorItem,
		arg.VendorID, arg.ItemID, arg.PriceCopper, arg.StockQuantity, arg.RequiredReputation,
	)
	return err
}

const listVendorItems = `-- name: ListVendorItems :many
SELECT vi.id, vi.vendor_id, vi.item_id, vi.price_copper, vi.stock_quantity,
       vi.required_reputation, i.name AS item_name
FROM vendor_items vi
JOIN items i ON i.id = vi.item_id
WHERE vi.vendor_id = ?
ORDER BY i.name
`

type ListVendorItemsRow struct {
	ID                 int64
	VendorID           int64
	ItemID             int64
	PriceCopper        int64
	StockQuantity      int64
	RequiredReputation sql.NullString
	ItemName           string
}

func (q *Queries) ListVendorItems(ctx context.Context, vendorID int64) ([]ListVendorItemsRow, error) {
	rows, err := q.db.QueryContext(ctx, listVendorItems, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListVendorItemsRow
	for rows.Next() {
		var i ListVendorItemsRow
		if err := rows.Scan(
			&i.ID, &i.VendorID, &i.ItemID, &i.PriceCopper,
			&i.StockQuantity, &i.RequiredReputation, &i.ItemName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countItems = `-- name: CountItems :one
SELECT COUNT(*) FROM items
`

func (q *Queries) CountItems(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countItems)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countRecipes = `-- name: CountRecipes :one
SELECT COUNT(*) FROM recipes
`

func (q *Queries) CountRecipes(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countRecipes)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countItemTypes = `-- name: CountItemTypes :one
SELECT COUNT(*) FROM item_types
`

func (q *Queries) CountItemTypes(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countItemTypes)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countItemSubtypes = `-- name: CountItemSubtypes :one
SELECT COUNT(*) FROM item_subtypes
`

func (q *Queries) CountItemSubtypes(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countItemSubtypes)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countItemSlots = `-- name: CountItemSlots :one
SELECT COUNT(*) FROM item_slots
`

func (q *Queries) CountItemSlots(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countItemSlots)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countProfessions = `-- name: CountProfessions :one
SELECT COUNT(*) FROM professions
`

func (q *Queries) CountProfessions(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countProfessions)
	var count int64
	err := row.Scan(&count)
	return count, err
}
