package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"turtledb-backend/lib/textutil"
	"turtledb-backend/services/catalog/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/catalog")

// NotFoundError reports a lookup miss for a named entity. The zero
// value is not meaningful.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

type Item struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	ItemType          string  `json:"item_type"`
	Subtype           *string `json:"subtype"`
	Slot              *string `json:"slot"`
	ItemLevel         *int64  `json:"item_level"`
	RequiredLevel     int64   `json:"required_level"`
	Quality           string  `json:"quality"`
	BindType          string  `json:"bind_type"`
	MaxStack          int64   `json:"max_stack"`
	VendorPriceCopper int64   `json:"vendor_price_copper"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedAt         int64   `json:"updated_at"`
}

type RecipeIngredient struct {
	ItemID   int64  `json:"item_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type Recipe struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Profession    string             `json:"profession"`
	CreatesItemID int64              `json:"creates_item_id"`
	RequiredSkill int64              `json:"required_skill_level"`
	RecipeType    string             `json:"recipe_type"`
	Ingredients   []RecipeIngredient `json:"ingredients"`
}

type Profession struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	MaxSkillLevel int64   `json:"max_skill_level"`
}

type Vendor struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location"`
	Faction  *string `json:"faction"`
}

type VendorListing struct {
	ItemID             int64   `json:"item_id"`
	ItemName           string  `json:"item_name"`
	PriceCopper        int64   `json:"price_copper"`
	StockQuantity      int64   `json:"stock_quantity"`
	RequiredReputation *string `json:"required_reputation"`
}

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

func nullToPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullIntToPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func ptrToNull(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func itemFromRow(r db.GetItemDetailRow) Item {
	return Item{
		ID:                r.ID,
		Name:              r.Name,
		Description:       nullToPtr(r.Description),
		ItemType:          r.TypeName,
		Subtype:           nullToPtr(r.SubtypeName),
		Slot:              nullToPtr(r.SlotName),
		ItemLevel:         nullIntToPtr(r.ItemLevel),
		RequiredLevel:     r.RequiredLevel,
		Quality:           r.Quality,
		BindType:          r.BindType,
		MaxStack:          r.MaxStack,
		VendorPriceCopper: r.VendorPriceCopper,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func (s Service) GetItem(ctx context.Context, id int64) (Item, error) {
	ctx, span := tracer.Start(ctx, "GetItem")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", id))

	row, err := s.qry.GetItemDetail(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, NotFoundError{Kind: "item", Key: fmt.Sprint(id)}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Item{}, err
	}
	return itemFromRow(row), nil
}

func (s Service) GetItemByName(ctx context.Context, name string) (Item, error) {
	ctx, span := tracer.Start(ctx, "GetItemByName")
	defer span.End()
	span.SetAttributes(attribute.String("name", name))

	item, err := s.qry.GetItemByName(ctx, textutil.CleanDisplay(name))
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, NotFoundError{Kind: "item", Key: name}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Item{}, err
	}
	return s.GetItem(ctx, item.ID)
}

func (s Service) ListItems(ctx context.Context, limit, offset int64) ([]Item, error) {
	ctx, span := tracer.Start(ctx, "ListItems")
	defer span.End()

	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := s.qry.ListItemDetails(ctx, db.ListItemDetailsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	items := make([]Item, len(rows))
	for i, r := range rows {
		items[i] = itemFromRow(r)
	}
	return items, nil
}

type CreateItemInput struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	ItemType          string  `json:"item_type"`
	Subtype           *string `json:"subtype"`
	Slot              *string `json:"slot"`
	ItemLevel         *int64  `json:"item_level"`
	RequiredLevel     int64   `json:"required_level"`
	Quality           string  `json:"quality"`
	BindType          string  `json:"bind_type"`
	MaxStack          int64   `json:"max_stack"`
	VendorPriceCopper int64   `json:"vendor_price_copper"`
}

// CreateItem resolves reference rows by name and fails with
// NotFoundError when one is missing. Reference data is only ever
// auto-created by the importer.
func (s Service) CreateItem(ctx context.Context, input CreateItemInput) (Item, error) {
	ctx, span := tracer.Start(ctx, "CreateItem")
	defer span.End()
	span.SetAttributes(attribute.String("name", input.Name))

	name := textutil.CleanDisplay(input.Name)
	if name == "" {
		return Item{}, fmt.Errorf("item name must not be empty")
	}

	itemType, err := s.qry.GetItemTypeByName(ctx, textutil.NormalizeKey(input.ItemType))
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, NotFoundError{Kind: "item type", Key: input.ItemType}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Item{}, err
	}

	var subtypeID sql.NullInt64
	if input.Subtype != nil {
		subtype, err := s.qry.GetItemSubtypeByName(ctx, db.GetItemSubtypeByNameParams{
			TypeID: itemType.ID,
			Name:   textutil.NormalizeKey(*input.Subtype),
		})
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, NotFoundError{Kind: "item subtype", Key: *input.Subtype}
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Item{}, err
		}
		subtypeID = sql.NullInt64{Int64: subtype.ID, Valid: true}
	}

	var slotID sql.NullInt64
	if input.Slot != nil {
		slot, err := s.qry.GetItemSlotByName(ctx, textutil.NormalizeKey(*input.Slot))
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, NotFoundError{Kind: "item slot", Key: *input.Slot}
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Item{}, err
		}
		slotID = sql.NullInt64{Int64: slot.ID, Valid: true}
	}

	var itemLevel sql.NullInt64
	if input.ItemLevel != nil {
		itemLevel = sql.NullInt64{Int64: *input.ItemLevel, Valid: true}
	}
	requiredLevel := input.RequiredLevel
	if requiredLevel <= 0 {
		requiredLevel = 1
	}
	quality := textutil.NormalizeKey(input.Quality)
	if quality == "" {
		quality = "common"
	}
	bindType := textutil.NormalizeKey(input.BindType)
	if bindType == "" {
		bindType = "none"
	}
	maxStack := input.MaxStack
	if maxStack <= 0 {
		maxStack = 1
	}

	id, err := s.qry.CreateItem(ctx, db.CreateItemParams{
		Name:              name,
		Description:       ptrToNull(input.Description),
		TypeID:            itemType.ID,
		SubtypeID:         subtypeID,
		SlotID:            slotID,
		ItemLevel:         itemLevel,
		RequiredLevel:     requiredLevel,
		Quality:           quality,
		BindType:          bindType,
		MaxStack:          maxStack,
		VendorPriceCopper: input.VendorPriceCopper,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Item{}, err
	}
	return s.GetItem(ctx, id)
}

type UpdateItemInput struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	ItemLevel         *int64  `json:"item_level"`
	RequiredLevel     *int64  `json:"required_level"`
	Quality           *string `json:"quality"`
	BindType          *string `json:"bind_type"`
	MaxStack          *int64  `json:"max_stack"`
	VendorPriceCopper *int64  `json:"vendor_price_copper"`
}

func (s Service) UpdateItem(ctx context.Context, id int64, input UpdateItemInput) (Item, error) {
	ctx, span := tracer.Start(ctx, "UpdateItem")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", id))

	existing, err := s.qry.GetItem(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, NotFoundError{Kind: "item", Key: fmt.Sprint(id)}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Item{}, err
	}

	params := db.UpdateItemParams{
		ID:                existing.ID,
		Name:              existing.Name,
		Description:       existing.Description,
		ItemLevel:         existing.ItemLevel,
		RequiredLevel:     existing.RequiredLevel,
		Quality:           existing.Quality,
		BindType:          existing.BindType,
		MaxStack:          existing.MaxStack,
		VendorPriceCopper: existing.VendorPriceCopper,
	}
	if input.Name != nil {
		params.Name = textutil.CleanDisplay(*input.Name)
	}
	if input.Description != nil {
		params.Description = sql.NullString{String: *input.Description, Valid: true}
	}
	if input.ItemLevel != nil {
		params.ItemLevel = sql.NullInt64{Int64: *input.ItemLevel, Valid: true}
	}
	if input.RequiredLevel != nil {
		params.RequiredLevel = *input.RequiredLevel
	}
	if input.Quality != nil {
		params.Quality = textutil.NormalizeKey(*input.Quality)
	}
	if input.BindType != nil {
		params.BindType = textutil.NormalizeKey(*input.BindType)
	}
	if input.MaxStack != nil {
		params.MaxStack = *input.MaxStack
	}
	if input.VendorPriceCopper != nil {
		params.VendorPriceCopper = *input.VendorPriceCopper
	}

	err = s.qry.UpdateItem(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Item{}, err
	}
	return s.GetItem(ctx, id)
}

func (s Service) DeleteItem(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "DeleteItem")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", id))

	_, err := s.qry.GetItem(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return NotFoundError{Kind: "item", Key: fmt.Sprint(id)}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	err = s.qry.DeleteItem(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s Service) ListRecipesForItem(ctx context.Context, itemID int64) ([]Recipe, error) {
	ctx, span := tracer.Start(ctx, "ListRecipesForItem")
	defer span.End()
	span.SetAttributes(attribute.Int64("item_id", itemID))

	_, err := s.qry.GetItem(ctx, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundError{Kind: "item", Key: fmt.Sprint(itemID)}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	rows, err := s.qry.ListRecipesForItem(ctx, itemID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	recipes := make([]Recipe, 0, len(rows))
	for _, r := range rows {
		ingredients, err := s.qry.ListRecipeIngredients(ctx, r.ID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		recipe := Recipe{
			ID:            r.ID,
			Name:          r.Name,
			Profession:    r.ProfessionName,
			CreatesItemID: r.CreatesItemID,
			RequiredSkill: r.RequiredSkillLevel,
			RecipeType:    r.RecipeType,
		}
		for _, ing := range ingredients {
			recipe.Ingredients = append(recipe.Ingredients, RecipeIngredient{
				ItemID:   ing.IngredientItemID,
				Name:     ing.IngredientName,
				Quantity: ing.Quantity,
			})
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (s Service) ListProfessions(ctx context.Context) ([]Profession, error) {
	ctx, span := tracer.Start(ctx, "ListProfessions")
	defer span.End()

	rows, err := s.qry.ListProfessions(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	professions := make([]Profession, len(rows))
	for i, r := range rows {
		professions[i] = Profession{
			ID:            r.ID,
			Name:          r.Name,
			Description:   nullToPtr(r.Description),
			MaxSkillLevel: r.MaxSkillLevel,
		}
	}
	return professions, nil
}

type CreateVendorInput struct {
	Name     string  `json:"name"`
	Location *string `json:"location"`
	Faction  *string `json:"faction"`
}

func (s Service) CreateVendor(ctx context.Context, input CreateVendorInput) (Vendor, error) {
	ctx, span := tracer.Start(ctx, "CreateVendor")
	defer span.End()
	span.SetAttributes(attribute.String("name", input.Name))

	name := textutil.CleanDisplay(input.Name)
	if name == "" {
		return Vendor{}, fmt.Errorf("vendor name must not be empty")
	}
	id, err := s.qry.CreateVendor(ctx, db.CreateVendorParams{
		Name:     name,
		Location: ptrToNull(input.Location),
		Faction:  ptrToNull(input.Faction),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Vendor{}, err
	}
	return Vendor{
		ID:       id,
		Name:     name,
		Location: input.Location,
		Faction:  input.Faction,
	}, nil
}

func (s Service) ListVendors(ctx context.Context) ([]Vendor, error) {
	ctx, span := tracer.Start(ctx, "ListVendors")
	defer span.End()

	rows, err := s.qry.ListVendors(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	vendors := make([]Vendor, len(rows))
	for i, r := range rows {
		vendors[i] = Vendor{
			ID:       r.ID,
			Name:     r.Name,
			Location: nullToPtr(r.Location),
			Faction:  nullToPtr(r.Faction),
		}
	}
	return vendors, nil
}

type AddVendorItemInput struct {
	ItemID             int64   `json:"item_id"`
	PriceCopper        int64   `json:"price_copper"`
	StockQuantity      *int64  `json:"stock_quantity"`
	RequiredReputation *string `json:"required_reputation"`
}

func (s Service) AddVendorItem(ctx context.Context, vendorID int64, input AddVendorItemInput) error {
	ctx, span := tracer.Start(ctx, "AddVendorItem")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("vendor_id", vendorID),
		attribute.Int64("item_id", input.ItemID),
	)

	_, err := s.qry.GetVendor(ctx, vendorID)
	if errors.Is(err, sql.ErrNoRows) {
		return NotFoundError{Kind: "vendor", Key: fmt.Sprint(vendorID)}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	_, err = s.qry.GetItem(ctx, input.ItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return NotFoundError{Kind: "item", Key: fmt.Sprint(input.ItemID)}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	// -1 marks unlimited stock.
	stock := int64(-1)
	if input.StockQuantity != nil {
		stock = *input.StockQuantity
	}
	err = s.qry.CreateVendorItem(ctx, db.CreateVendorItemParams{
		VendorID:           vendorID,
		ItemID:             input.ItemID,
		PriceCopper:        input.PriceCopper,
		StockQuantity:      stock,
		RequiredReputation: ptrToNull(input.RequiredReputation),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s Service) ListVendorItems(ctx context.Context, vendorID int64) ([]VendorListing, error) {
	ctx, span := tracer.Start(ctx, "ListVendorItems")
	defer span.End()
	span.SetAttributes(attribute.Int64("vendor_id", vendorID))

	_, err := s.qry.GetVendor(ctx, vendorID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundError{Kind: "vendor", Key: fmt.Sprint(vendorID)}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	rows, err := s.qry.ListVendorItems(ctx, vendorID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	listings := make([]VendorListing, len(rows))
	for i, r := range rows {
		listings[i] = VendorListing{
			ItemID:             r.ItemID,
			ItemName:           r.ItemName,
			PriceCopper:        r.PriceCopper,
			StockQuantity:      r.StockQuantity,
			RequiredReputation: nullToPtr(r.RequiredReputation),
		}
	}
	return listings, nil
}

type Counts struct {
	Items        int64 `json:"items"`
	Recipes      int64 `json:"recipes"`
	ItemTypes    int64 `json:"item_types"`
	ItemSubtypes int64 `json:"item_subtypes"`
	ItemSlots    int64 `json:"item_slots"`
	Professions  int64 `json:"professions"`
}

func (s Service) CountAll(ctx context.Context) (Counts, error) {
	ctx, span := tracer.Start(ctx, "CountAll")
	defer span.End()

	var counts Counts
	var err error
	if counts.Items, err = s.qry.CountItems(ctx); err != nil {
		return counts, err
	}
	if counts.Recipes, err = s.qry.CountRecipes(ctx); err != nil {
		return counts, err
	}
	if counts.ItemTypes, err = s.qry.CountItemTypes(ctx); err != nil {
		return counts, err
	}
	if counts.ItemSubtypes, err = s.qry.CountItemSubtypes(ctx); err != nil {
		return counts, err
	}
	if counts.ItemSlots, err = s.qry.CountItemSlots(ctx); err != nil {
		return counts, err
	}
	if counts.Professions, err = s.qry.CountProfessions(ctx); err != nil {
		return counts, err
	}
	return counts, nil
}
