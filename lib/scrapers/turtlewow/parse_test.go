package turtlewow

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractItemNameHeading(t *testing.T) {
	doc := docFrom(t, `<html><head><title>Wrong - Turtle WoW Database</title></head>
		<body><h1>Thunderfury, Blessed Blade</h1></body></html>`)
	require.Equal(t, "Thunderfury, Blessed Blade", extractItemName(doc))
}

func TestExtractItemNameTitle(t *testing.T) {
	doc := docFrom(t, `<html><head><title>Arcanite Bar - Turtle WoW Database</title></head>
		<body></body></html>`)
	require.Equal(t, "Arcanite Bar", extractItemName(doc))

	// a title without the site suffix does not qualify
	doc = docFrom(t, `<html><head><title>Some Unrelated Page</title></head>
		<body></body></html>`)
	require.Equal(t, UnknownItemName, extractItemName(doc))
}

func TestExtractItemNameMainContent(t *testing.T) {
	doc := docFrom(t, `<html><body><div class="main-content">
		<span>ok</span>
		<span>Ironfoe</span>
	</div></body></html>`)
	require.Equal(t, "Ironfoe", extractItemName(doc))

	// plain <main> works as the fallback region
	doc = docFrom(t, `<html><body><main><p>Dark Iron Pulverizer</p></main></body></html>`)
	require.Equal(t, "Dark Iron Pulverizer", extractItemName(doc))
}

func TestExtractItemNameSentinel(t *testing.T) {
	doc := docFrom(t, `<html><body><p>nothing useful here</p></body></html>`)
	require.Equal(t, UnknownItemName, extractItemName(doc))
}

func TestParseItemDetails(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<h1>Abyssal Plate Greaves</h1>
		<table class="item-info">
			<tr><td>Rare</td></tr>
			<tr><td>Plate Armor</td></tr>
			<tr><td>Feet</td></tr>
			<tr><td>Requires Level 60</td></tr>
			<tr><td>Item Level 65</td></tr>
		</table>
	</body></html>`)

	got := parseItem(doc)
	want := ScrapedItem{
		Name:          "Abyssal Plate Greaves",
		ItemType:      "armor",
		Subtype:       "plate",
		Slot:          "feet",
		ItemLevel:     65,
		RequiredLevel: 60,
		Quality:       "rare",
		BindType:      "none",
		MaxStack:      1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parsed item mismatch (-want +got):\n%s", diff)
	}
}

func TestParseItemDivDetails(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<h1>Netherweave Robe</h1>
		<div class="item-details">
			<div>Uncommon</div>
			<div>Cloth Armor</div>
			<div>Chest</div>
		</div>
	</body></html>`)

	got := parseItem(doc)
	require.Equal(t, "armor", got.ItemType)
	require.Equal(t, "cloth", got.Subtype)
	require.Equal(t, "chest", got.Slot)
	require.Equal(t, "uncommon", got.Quality)
	require.Equal(t, 1, got.RequiredLevel)
}

func TestParseItemDefaults(t *testing.T) {
	doc := docFrom(t, `<html><body><h1>Plain Stone</h1></body></html>`)

	got := parseItem(doc)
	require.Equal(t, "miscellaneous", got.ItemType)
	require.Equal(t, "common", got.Quality)
	require.Equal(t, "", got.Subtype)
	require.Equal(t, "", got.Slot)
	require.Equal(t, 0, got.ItemLevel)
	require.Equal(t, 1, got.RequiredLevel)
	require.Empty(t, got.SpellIDs)
}

func TestSubtypeRequiresArmorKeyword(t *testing.T) {
	// "mail" without "armor" on the row must not classify as a subtype
	doc := docFrom(t, `<html><body>
		<h1>Chainmail Sample</h1>
		<table class="item-info">
			<tr><td>Mail wrapping included</td></tr>
		</table>
	</body></html>`)

	got := parseItem(doc)
	require.Equal(t, "", got.Subtype)
}

func TestExtractCraftingSpells(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<div id="tab-created-by">
			<a href="/?spell=16667">Smelt Arcanite</a>
			<a href="/somewhere-else">not a spell</a>
			<a href="/?spell=23548">Transmute</a>
			<a href="/?spell=16667">Smelt Arcanite (again)</a>
		</div>
	</body></html>`)

	// document order, duplicates preserved
	require.Equal(t, []string{"16667", "23548", "16667"}, extractCraftingSpells(doc))
}

func TestExtractCraftingSpellsFallbackSections(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<div class="created-by"><a href="?spell=100">x</a></div>
	</body></html>`)
	require.Equal(t, []string{"100"}, extractCraftingSpells(doc))

	doc = docFrom(t, `<html><body>
		<section id="created-by"><a href="?spell=200">y</a></section>
	</body></html>`)
	require.Equal(t, []string{"200"}, extractCraftingSpells(doc))
}

func TestParseRecipe(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<h1>Transmute: Arcanite</h1>
		<p>Requires Alchemy (275)</p>
		<table class="reagents">
			<tr><th>Reagent</th></tr>
			<tr><td>1x Thorium Bar</td></tr>
			<tr><td>Arcane Crystal (1)</td></tr>
		</table>
	</body></html>`)

	got := parseRecipe(doc)
	want := ScrapedRecipe{
		Name:          "Transmute: Arcanite",
		Profession:    "alchemy",
		RequiredSkill: 275,
		RecipeType:    "learned",
		Ingredients: []Ingredient{
			{Name: "Thorium Bar", Quantity: 1},
			{Name: "Arcane Crystal", Quantity: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parsed recipe mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecipeDefaults(t *testing.T) {
	doc := docFrom(t, `<html><body><p>an empty spell page</p></body></html>`)

	got := parseRecipe(doc)
	require.Equal(t, "Unknown Recipe", got.Name)
	require.Equal(t, "Unknown", got.Profession)
	require.Equal(t, 1, got.RequiredSkill)
	require.Empty(t, got.Ingredients)
}

func TestProfessionPriority(t *testing.T) {
	// blacksmithing outranks mining when both appear on the page
	doc := docFrom(t, `<html><body>
		<h1>Dark Iron Bar</h1>
		<p>Requires Blacksmithing (300), learned near a Mining trainer</p>
	</body></html>`)
	require.Equal(t, "blacksmithing", parseRecipe(doc).Profession)
}

func TestExtractIngredientsDivRows(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<div class="reagents">
			<div>8 Runecloth</div>
			<div>Rune Thread (1)</div>
		</div>
	</body></html>`)

	got := extractIngredients(doc)
	want := []Ingredient{
		{Name: "Runecloth", Quantity: 8},
		{Name: "Rune Thread", Quantity: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ingredients mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIngredient(t *testing.T) {
	cases := []struct {
		text string
		want Ingredient
		ok   bool
	}{
		{"2x Iron Bar", Ingredient{Name: "Iron Bar", Quantity: 2}, true},
		{"12 Arcanite Bar", Ingredient{Name: "Arcanite Bar", Quantity: 12}, true},
		{"Iron Bar (2)", Ingredient{Name: "Iron Bar", Quantity: 2}, true},
		{"Mageweave Cloth (40)", Ingredient{Name: "Mageweave Cloth", Quantity: 40}, true},
		{"", Ingredient{}, false},
		{"just words", Ingredient{}, false},
		// leading integer wins the disambiguation even when a trailing
		// quantity is present
		{"2 Iron Bar (3)", Ingredient{Name: "Iron Bar (3)", Quantity: 2}, true},
	}
	for _, c := range cases {
		got, ok := parseIngredient(c.text)
		require.Equal(t, c.ok, ok, "text %q", c.text)
		require.Equal(t, c.want, got, "text %q", c.text)
	}
}
