package catalog

import (
	"context"
	"testing"
	"time"
	"turtledb-backend/lib/testutil"
	"turtledb-backend/services/catalog/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func strPtr(s string) *string { return &s }
func intPtr(v int64) *int64   { return &v }

func TestItemCrud(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := Seed(ctx, setup.DB)
	require.NoError(t, err)

	{
		item, err := service.CreateItem(ctx, CreateItemInput{
			Name:              "Ironforge Breastplate",
			Description:       strPtr("A sturdy chest piece"),
			ItemType:          "armor",
			Subtype:           strPtr("mail"),
			Slot:              strPtr("chest"),
			ItemLevel:         intPtr(25),
			RequiredLevel:     20,
			Quality:           "Uncommon",
			BindType:          "equip",
			VendorPriceCopper: 5250,
		})
		require.NoError(t, err)
		require.Equal(t, "armor", item.ItemType)
		require.NotNil(t, item.Subtype)
		require.Equal(t, "mail", *item.Subtype)
		require.Equal(t, "uncommon", item.Quality)
		require.Equal(t, int64(1), item.MaxStack)
		require.Equal(t, int64(5250), item.VendorPriceCopper)

		got, err := service.GetItem(ctx, item.ID)
		require.NoError(t, err)
		require.Equal(t, item, got)

		byName, err := service.GetItemByName(ctx, "Ironforge Breastplate")
		require.NoError(t, err)
		require.Equal(t, item.ID, byName.ID)
	}
	{
		_, err := service.CreateItem(ctx, CreateItemInput{
			Name:     "Mystery Object",
			ItemType: "gadget",
		})
		var notFound NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "item type", notFound.Kind)
	}
	{
		_, err := service.CreateItem(ctx, CreateItemInput{
			Name:     "Mystery Shirt",
			ItemType: "armor",
			Subtype:  strPtr("silk"),
		})
		var notFound NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "item subtype", notFound.Kind)
	}
	{
		item, err := service.GetItemByName(ctx, "Ironforge Breastplate")
		require.NoError(t, err)

		updated, err := service.UpdateItem(ctx, item.ID, UpdateItemInput{
			Quality:           strPtr("rare"),
			VendorPriceCopper: intPtr(52550),
		})
		require.NoError(t, err)
		require.Equal(t, "rare", updated.Quality)
		require.Equal(t, int64(52550), updated.VendorPriceCopper)
		require.Equal(t, item.Name, updated.Name)

		err = service.DeleteItem(ctx, item.ID)
		require.NoError(t, err)

		_, err = service.GetItem(ctx, item.ID)
		var notFound NotFoundError
		require.ErrorAs(t, err, &notFound)

		err = service.DeleteItem(ctx, item.ID)
		require.ErrorAs(t, err, &notFound)
	}
}

func TestListItems(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := Seed(ctx, setup.DB)
	require.NoError(t, err)

	items, err := service.ListItems(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 4)

	page, err := service.ListItems(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotEqual(t, items[0].ID, page[0].ID)
}

func TestSeedIdempotent(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	require.NoError(t, Seed(ctx, setup.DB))
	first, err := service.CountAll(ctx)
	require.NoError(t, err)

	require.NoError(t, Seed(ctx, setup.DB))
	second, err := service.CountAll(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.Equal(t, int64(4), first.Items)
	require.Equal(t, int64(1), first.Recipes)
	require.Equal(t, int64(8), first.Professions)
}

func TestRecipesForItem(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	require.NoError(t, Seed(ctx, setup.DB))

	item, err := service.GetItemByName(ctx, "Titanic Leggings")
	require.NoError(t, err)

	recipes, err := service.ListRecipesForItem(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	require.Equal(t, "blacksmithing", recipes[0].Profession)
	require.Equal(t, int64(300), recipes[0].RequiredSkill)
	require.Len(t, recipes[0].Ingredients, 2)

	quantities := map[string]int64{}
	for _, ing := range recipes[0].Ingredients {
		quantities[ing.Name] = ing.Quantity
	}
	require.Equal(t, int64(12), quantities["Arcanite Bar"])
	require.Equal(t, int64(20), quantities["Enchanted Thorium Bar"])

	_, err = service.ListRecipesForItem(ctx, 99999)
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestVendors(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	require.NoError(t, Seed(ctx, setup.DB))

	vendor, err := service.CreateVendor(ctx, CreateVendorInput{
		Name:     "Grimble Goldsprocket",
		Location: strPtr("Gadgetzan"),
		Faction:  strPtr("neutral"),
	})
	require.NoError(t, err)

	item, err := service.GetItemByName(ctx, "Arcanite Bar")
	require.NoError(t, err)

	err = service.AddVendorItem(ctx, vendor.ID, AddVendorItemInput{
		ItemID:      item.ID,
		PriceCopper: 60000,
	})
	require.NoError(t, err)

	listings, err := service.ListVendorItems(ctx, vendor.ID)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, "Arcanite Bar", listings[0].ItemName)
	require.Equal(t, int64(-1), listings[0].StockQuantity)

	err = service.AddVendorItem(ctx, 424242, AddVendorItemInput{ItemID: item.ID})
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "vendor", notFound.Kind)

	vendors, err := service.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
}
