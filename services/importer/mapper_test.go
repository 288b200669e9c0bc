package importer

import (
	"context"
	"testing"
	"time"
	"turtledb-backend/lib/scrapers/turtlewow"
	"turtledb-backend/lib/testutil"
	"turtledb-backend/services/catalog/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestNormalizeQuality(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"Epic":      "epic",
		"RARE":      "rare",
		"white":     "common",
		"gray":      "poor",
		"Grey":      "poor",
		"green":     "uncommon",
		"blue":      "rare",
		"purple":    "epic",
		"orange":    "legendary",
		"artifact":  "artifact",
		"":          "common",
		"sparkling": "common",
	}
	for input, want := range cases {
		require.Equal(t, want, normalizeQuality(ctx, input), "input %q", input)
	}
}

func TestNormalizeBind(t *testing.T) {
	cases := map[string]string{
		"BoP":     "pickup",
		"boe":     "equip",
		"BOU":     "use",
		"boa":     "account",
		"pickup":  "pickup",
		"":        "none",
		"soulbad": "none",
	}
	for input, want := range cases {
		require.Equal(t, want, normalizeBind(input), "input %q", input)
	}
}

func TestGetOrCreateReuse(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/importer",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	m := mapper{qry: db.New(setup.DB)}

	first, err := m.resolveItemType(ctx, "Armor")
	require.NoError(t, err)
	second, err := m.resolveItemType(ctx, "armor")
	require.NoError(t, err)
	require.Equal(t, first, second)

	count, err := db.New(setup.DB).CountItemTypes(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	created, err := m.qry.GetItemTypeByName(ctx, "armor")
	require.NoError(t, err)
	require.True(t, created.Description.Valid)
	require.Equal(t, "Auto-created item type: armor", created.Description.String)
}

func TestResolveProfessionAliases(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/importer",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	m := mapper{qry: db.New(setup.DB)}

	aliased, err := m.resolveProfession(ctx, "Blacksmith")
	require.NoError(t, err)
	canonical, err := m.resolveProfession(ctx, "blacksmithing")
	require.NoError(t, err)
	require.Equal(t, canonical, aliased)

	row, err := m.qry.GetProfessionByName(ctx, "blacksmithing")
	require.NoError(t, err)
	require.Equal(t, int64(375), row.MaxSkillLevel)

	count, err := m.qry.CountProfessions(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestMapItemDefaults(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/importer",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	m := mapper{qry: db.New(setup.DB)}

	params, err := m.mapItem(ctx, turtlewow.ScrapedItem{
		Name:     "  Plain Stone  ",
		ItemType: "",
	})
	require.NoError(t, err)
	require.Equal(t, "Plain Stone", params.Name)
	require.Equal(t, int64(1), params.RequiredLevel)
	require.Equal(t, int64(1), params.MaxStack)
	require.Equal(t, "common", params.Quality)
	require.Equal(t, "none", params.BindType)
	require.False(t, params.SubtypeID.Valid)
	require.False(t, params.SlotID.Valid)
	require.False(t, params.ItemLevel.Valid)

	fallback, err := m.qry.GetItemTypeByName(ctx, "miscellaneous")
	require.NoError(t, err)
	require.Equal(t, params.TypeID, fallback.ID)
}

func TestMapperWritesRollBackWithTransaction(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/importer",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	tx, err := setup.DB.BeginTx(ctx, nil)
	require.NoError(t, err)

	qry := db.New(setup.DB)
	m := mapper{qry: qry.WithTx(tx)}

	params, err := m.mapItem(ctx, turtlewow.ScrapedItem{
		Name:          "Titanic Leggings",
		ItemType:      "armor",
		Subtype:       "plate",
		Slot:          "legs",
		Quality:       "epic",
		RequiredLevel: 60,
	})
	require.NoError(t, err)
	require.True(t, params.SubtypeID.Valid)
	require.True(t, params.SlotID.Valid)

	// reference rows exist inside the transaction
	inTx, err := m.qry.CountItemTypes(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), inTx)

	require.NoError(t, tx.Rollback())

	// and vanish with it
	types, err := qry.CountItemTypes(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), types)
	subtypes, err := qry.CountItemSubtypes(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), subtypes)
	slots, err := qry.CountItemSlots(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), slots)
}

func TestMapItemMissingName(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/importer",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	m := mapper{qry: db.New(setup.DB)}

	_, err := m.mapItem(ctx, turtlewow.ScrapedItem{Name: "   "})
	var typed *Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, CodeMapping, typed.Code)
}
