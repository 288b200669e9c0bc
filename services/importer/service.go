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

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/importer")

// Scraper is the page access surface the orchestrator needs, satisfied
// by *turtlewow.Client.
type Scraper interface {
	ValidateItemURL(rawURL string) bool
	ScrapeItem(ctx context.Context, pageURL string) (turtlewow.ScrapedItem, error)
	ScrapeRecipe(ctx context.Context, spellID string) (turtlewow.ScrapedRecipe, error)
}

type Result struct {
	ItemID          int64    `json:"item_id"`
	ItemName        string   `json:"item_name"`
	RecipesImported int      `json:"recipes_imported"`
	Warnings        []string `json:"warnings"`
}

type Service struct {
	db      *sql.DB
	qry     *db.Queries
	scraper Scraper
}

func NewService(database *sql.DB, scraper Scraper) Service {
	return Service{
		db:      database,
		qry:     db.New(database),
		scraper: scraper,
	}
}

// recipeOutcome records one crafting spell attempt. A nil err counts
// toward RecipesImported, anything else becomes a warning.
type recipeOutcome struct {
	spellID string
	err     error
}

func classifyScrapeError(err error) *Error {
	var unavailable *turtlewow.SourceUnavailableError
	if errors.As(err, &unavailable) {
		return newError(CodeSource, unavailable.Error(), err)
	}
	var format *turtlewow.FormatError
	if errors.As(err, &format) {
		return newError(CodeSourceFormat, format.Error(), err)
	}
	return newError(CodeInternal, err.Error(), err)
}

// asImportError keeps typed errors as they are and folds everything
// else into INTERNAL_ERROR.
func asImportError(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return newError(CodeInternal, err.Error(), err)
}

// ImportItemFromURL scrapes the item page, inserts the item and then
// best-effort imports its crafting recipes. All writes happen in one
// transaction committed only at the end, so a failure past validation
// leaves the database untouched. Failed recipe sub-imports do not fail
// the call, they surface as warnings on the result.
func (s Service) ImportItemFromURL(ctx context.Context, rawURL string, importRecipes bool) (Result, error) {
	ctx, span := tracer.Start(ctx, "ImportItemFromURL")
	defer span.End()
	span.SetAttributes(
		attribute.String("url", rawURL),
		attribute.Bool("import_recipes", importRecipes),
	)

	if !s.scraper.ValidateItemURL(rawURL) {
		return Result{}, newError(CodeValidation,
			fmt.Sprintf("not a supported item page url: %s", rawURL), nil)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, newError(CodeInternal, err.Error(), err)
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	scraped, err := s.scraper.ScrapeItem(ctx, rawURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scrape failed")
		return Result{}, classifyScrapeError(err)
	}

	name := textutil.CleanDisplay(scraped.Name)
	_, err = txqry.GetItemByName(ctx, name)
	if err == nil {
		return Result{}, newError(CodeDuplicate,
			fmt.Sprintf("item %q already exists", name), nil)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, newError(CodeInternal, err.Error(), err)
	}

	m := mapper{qry: txqry}
	params, err := m.mapItem(ctx, scraped)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "mapping failed")
		return Result{}, asImportError(err)
	}
	itemID, err := txqry.CreateItem(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, newError(CodeInternal, err.Error(), err)
	}

	var outcomes []recipeOutcome
	if importRecipes {
		for _, spellID := range scraped.SpellIDs {
			err := s.importRecipe(ctx, tx, txqry, m, itemID, spellID)
			outcomes = append(outcomes, recipeOutcome{spellID: spellID, err: err})
		}
	}

	result := Result{
		ItemID:   itemID,
		ItemName: params.Name,
	}
	for _, outcome := range outcomes {
		if outcome.err == nil {
			result.RecipesImported++
			continue
		}
		warning := fmt.Sprintf("failed to import recipe from spell %s: %v",
			outcome.spellID, outcome.err)
		result.Warnings = append(result.Warnings, warning)
		slog.WarnContext(ctx, "recipe sub-import failed",
			"spell_id", outcome.spellID, "item", params.Name, "error", outcome.err)
	}

	if err := tx.Commit(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, newError(CodeInternal, err.Error(), err)
	}

	span.SetAttributes(
		attribute.Int64("item_id", itemID),
		attribute.Int("recipes_imported", result.RecipesImported),
		attribute.Int("warnings", len(result.Warnings)),
	)
	slog.InfoContext(ctx, "imported item",
		"item", params.Name, "id", itemID,
		"recipes", result.RecipesImported, "warnings", len(result.Warnings))
	return result, nil
}

// importRecipe runs one recipe sub-import under a savepoint so a
// mid-recipe failure cannot leave partial rows in the surrounding
// transaction.
func (s Service) importRecipe(ctx context.Context, tx *sql.Tx, txqry *db.Queries, m mapper, itemID int64, spellID string) error {
	recipe, err := s.scraper.ScrapeRecipe(ctx, spellID)
	if err != nil {
		return classifyScrapeError(err)
	}
	name := textutil.CleanDisplay(recipe.Name)
	if name == "" {
		return newError(CodeMapping, "scraped recipe has no name", nil)
	}

	// A matching recipe from an earlier import is reused as-is, its
	// ingredient rows included.
	_, err = txqry.GetRecipeByNameAndItem(ctx, db.GetRecipeByNameAndItemParams{
		Name:          name,
		CreatesItemID: itemID,
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SAVEPOINT recipe_import"); err != nil {
		return err
	}
	err = s.insertRecipe(ctx, txqry, m, itemID, name, recipe)
	if err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO recipe_import"); rbErr != nil {
			return rbErr
		}
		return err
	}
	_, err = tx.ExecContext(ctx, "RELEASE recipe_import")
	return err
}

func (s Service) insertRecipe(ctx context.Context, txqry *db.Queries, m mapper, itemID int64, name string, recipe turtlewow.ScrapedRecipe) error {
	professionID, err := m.resolveProfession(ctx, recipe.Profession)
	if err != nil {
		return err
	}
	requiredSkill := int64(recipe.RequiredSkill)
	if requiredSkill <= 0 {
		requiredSkill = 1
	}
	recipeType := textutil.NormalizeKey(recipe.RecipeType)
	if recipeType == "" {
		recipeType = "learned"
	}

	recipeID, err := txqry.CreateRecipe(ctx, db.CreateRecipeParams{
		Name:               name,
		ProfessionID:       professionID,
		CreatesItemID:      itemID,
		RequiredSkillLevel: requiredSkill,
		RecipeType:         recipeType,
	})
	if err != nil {
		return err
	}

	seen := map[int64]bool{}
	for _, ingredient := range recipe.Ingredients {
		ingredientName := textutil.CleanDisplay(ingredient.Name)
		item, err := txqry.GetItemByName(ctx, ingredientName)
		if errors.Is(err, sql.ErrNoRows) {
			s.warnUnresolvedIngredient(ctx, txqry, name, ingredientName)
			continue
		}
		if err != nil {
			return err
		}
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true

		quantity := int64(ingredient.Quantity)
		if quantity <= 0 {
			quantity = 1
		}
		err = txqry.CreateRecipeIngredient(ctx, db.CreateRecipeIngredientParams{
			RecipeID:         recipeID,
			IngredientItemID: item.ID,
			Quantity:         quantity,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// warnUnresolvedIngredient logs a skipped ingredient together with the
// closest known item name, which makes typo-level mismatches easy to
// spot in the import logs.
func (s Service) warnUnresolvedIngredient(ctx context.Context, txqry *db.Queries, recipeName, ingredientName string) {
	attrs := []any{"recipe", recipeName, "ingredient", ingredientName}
	names, err := txqry.ListItemNames(ctx)
	if err == nil {
		if suggestion := nearestName(ingredientName, names); suggestion != "" {
			attrs = append(attrs, "closest_match", suggestion)
		}
	}
	slog.WarnContext(ctx, "skipping unresolved recipe ingredient", attrs...)
}

func nearestName(target string, candidates []string) string {
	best := ""
	bestDistance := -1
	for _, candidate := range candidates {
		distance := matchr.Levenshtein(
			textutil.NormalizeKey(target),
			textutil.NormalizeKey(candidate),
		)
		if bestDistance < 0 || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	if bestDistance < 0 || bestDistance > len(target)/2 {
		return ""
	}
	return best
}
