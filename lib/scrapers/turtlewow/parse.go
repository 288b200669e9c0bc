package turtlewow

import (
	"regexp"
	"strconv"
	"strings"

	"turtledb-backend/lib/htmlutil"
	"turtledb-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	// UnknownItemName is the sentinel used when no name extraction tier
	// matches.
	UnknownItemName = "Unknown Item"

	unknownRecipeName = "Unknown Recipe"
	titleSuffix       = " - Turtle WoW Database"

	defaultItemType = "miscellaneous"
)

var (
	requiredLevelRe = regexp.MustCompile(`level (\d+)`)
	itemLevelRe     = regexp.MustCompile(`item level (\d+)`)
	spellHrefRe     = regexp.MustCompile(`\?spell=(\d+)`)
	requiredSkillRe = regexp.MustCompile(`requires? .* \((\d+)\)`)
	qtyFirstRe      = regexp.MustCompile(`^(\d+)x?\s*(.+)$`)
	qtyLastRe       = regexp.MustCompile(`^(.+?)\s*\((\d+)\)$`)
)

func parseItem(doc *goquery.Document) ScrapedItem {
	details := extractItemDetails(doc)
	return ScrapedItem{
		Name:              extractItemName(doc),
		ItemType:          details.itemType,
		Subtype:           details.subtype,
		Slot:              details.slot,
		ItemLevel:         details.itemLevel,
		RequiredLevel:     details.requiredLevel,
		Quality:           details.quality,
		SpellIDs:          extractCraftingSpells(doc),
		VendorPriceCopper: 0,
		BindType:          "none",
		MaxStack:          1,
	}
}

// extractItemName applies the name precedence tiers:
// 1. first non-empty h1
// 2. the page title with the site suffix stripped, if stripping changed it
// 3. the first text node under the main content region with a plausible
//    length
// 4. the UnknownItemName sentinel
func extractItemName(doc *goquery.Document) string {
	heading := strings.TrimSpace(doc.Find("h1").First().Text())
	if heading != "" {
		return heading
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title != "" {
		stripped := strings.TrimSuffix(title, titleSuffix)
		if stripped != title && strings.TrimSpace(stripped) != "" {
			return strings.TrimSpace(stripped)
		}
	}

	main := doc.Find("div.main-content")
	if main.Length() == 0 {
		main = doc.Find("main")
	}
	for _, node := range htmlutil.TextNodes(main) {
		candidate := strings.TrimSpace(node)
		if len(candidate) > 3 && len(candidate) < 100 {
			return candidate
		}
	}

	return UnknownItemName
}

type itemDetails struct {
	itemType      string
	subtype       string
	slot          string
	quality       string
	itemLevel     int
	requiredLevel int
}

// extractItemDetails scans the details region row by row. The first match
// per field wins, later rows never override an already-set field.
func extractItemDetails(doc *goquery.Document) itemDetails {
	var d itemDetails

	region := doc.Find("table.item-info")
	tabular := region.Length() > 0
	if !tabular {
		region = doc.Find("div.item-details")
	}

	var rows *goquery.Selection
	if tabular {
		rows = region.Find("tr")
	} else {
		rows = region.Find("div")
	}

	rows.Each(func(_ int, row *goquery.Selection) {
		text := strings.ToLower(textutil.CleanDisplay(row.Text()))

		if d.itemType == "" {
			if value, ok := matchKeyword(typeRules, text); ok {
				d.itemType = value
			}
		}
		// subtypes only qualify when the parent type keyword is on the
		// same row
		if d.subtype == "" && strings.Contains(text, "armor") {
			if value, ok := matchKeyword(armorSubtypeRules, text); ok {
				d.subtype = value
			}
		}
		if d.slot == "" {
			if value, ok := matchKeyword(slotRules, text); ok {
				d.slot = value
			}
		}
		if d.quality == "" {
			if value, ok := matchKeyword(qualityRules, text); ok {
				d.quality = value
			}
		}
		if d.itemLevel == 0 {
			if m := itemLevelRe.FindStringSubmatch(text); m != nil {
				d.itemLevel, _ = strconv.Atoi(m[1])
			}
		}
		if d.requiredLevel == 0 {
			if m := requiredLevelRe.FindStringSubmatch(text); m != nil {
				d.requiredLevel, _ = strconv.Atoi(m[1])
			}
		}
	})

	if d.itemType == "" {
		d.itemType = defaultItemType
	}
	if d.quality == "" {
		d.quality = "common"
	}
	if d.requiredLevel == 0 {
		d.requiredLevel = 1
	}
	return d
}

// extractCraftingSpells collects spell ids from the "created by" section
// in document order. Duplicates are preserved.
func extractCraftingSpells(doc *goquery.Document) []string {
	section := doc.Find("div#tab-created-by")
	if section.Length() == 0 {
		section = doc.Find("div.created-by")
	}
	if section.Length() == 0 {
		section = doc.Find("section#created-by")
	}

	var spellIDs []string
	for _, anchor := range htmlutil.GetAnchors(section.Find("a")) {
		m := spellHrefRe.FindStringSubmatch(anchor.Href)
		if m != nil {
			spellIDs = append(spellIDs, m[1])
		}
	}
	return spellIDs
}

func parseRecipe(doc *goquery.Document) ScrapedRecipe {
	recipe := ScrapedRecipe{
		Name:          unknownRecipeName,
		Profession:    "Unknown",
		RequiredSkill: 1,
		RecipeType:    "learned",
	}

	heading := strings.TrimSpace(doc.Find("h1").First().Text())
	if heading != "" {
		recipe.Name = heading
	}

	pageText := strings.ToLower(doc.Text())
	if value, ok := matchKeyword(professionRules, pageText); ok {
		recipe.Profession = value
	}
	if m := requiredSkillRe.FindStringSubmatch(pageText); m != nil {
		recipe.RequiredSkill, _ = strconv.Atoi(m[1])
	}

	recipe.Ingredients = extractIngredients(doc)
	return recipe
}

func extractIngredients(doc *goquery.Document) []Ingredient {
	region := doc.Find("table.reagents")
	tabular := region.Length() > 0
	if !tabular {
		region = doc.Find("div.reagents")
	}

	var rows *goquery.Selection
	if tabular {
		// the first row of a reagents table is a header
		rows = region.Find("tr")
		if rows.Length() > 0 {
			rows = rows.Slice(1, goquery.ToEnd)
		}
	} else {
		rows = region.Find("div")
	}

	var ingredients []Ingredient
	rows.Each(func(_ int, row *goquery.Selection) {
		text := textutil.CleanDisplay(row.Text())
		ingredient, ok := parseIngredient(text)
		if ok {
			ingredients = append(ingredients, ingredient)
		}
	})
	return ingredients
}

// parseIngredient accepts "2x Iron Bar" / "2 Iron Bar" (quantity first)
// or "Iron Bar (2)" (quantity last). Which pattern applies is decided by
// whether the leading token is a pure integer. A name that is itself
// numeric stays ambiguous under this heuristic, see parseIngredient tests.
func parseIngredient(text string) (Ingredient, bool) {
	if m := qtyFirstRe.FindStringSubmatch(text); m != nil {
		quantity, err := strconv.Atoi(m[1])
		name := strings.TrimSpace(m[2])
		if err == nil && quantity >= 1 && name != "" {
			return Ingredient{Name: name, Quantity: quantity}, true
		}
		return Ingredient{}, false
	}
	if m := qtyLastRe.FindStringSubmatch(text); m != nil {
		quantity, err := strconv.Atoi(m[2])
		name := strings.TrimSpace(m[1])
		if err == nil && quantity >= 1 && name != "" {
			return Ingredient{Name: name, Quantity: quantity}, true
		}
	}
	return Ingredient{}, false
}
