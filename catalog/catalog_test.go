package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

func TestSeedIsValid(t *testing.T) {
	store, err := NewStore(seedProducts, seedCategories)
	require.NoError(t, err)
	require.NotNil(t, store)

	assert.Len(t, store.GetAll(), 8)
	assert.Len(t, store.Categories(), 4)
}

func TestNewStore_RejectsBadSeed(t *testing.T) {
	base := models.Product{
		ID: 1, Name: "Test Shirt", Price: 10,
		Category: models.CategoryMen, Subcategory: "shirts",
		Image:       "https://example.com/a.jpg",
		Images:      []string{"https://example.com/a.jpg"},
		Description: "A shirt.",
		Rating:      4.0, Reviews: 1,
	}

	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewStore([]models.Product{base, base}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate product id")
	})

	t.Run("rating out of range", func(t *testing.T) {
		p := base
		p.Rating = 5.5
		_, err := NewStore([]models.Product{p}, nil)
		require.Error(t, err)
	})

	t.Run("unknown category", func(t *testing.T) {
		p := base
		p.Category = "kids"
		_, err := NewStore([]models.Product{p}, nil)
		require.Error(t, err)
	})

	t.Run("image must duplicate first of images", func(t *testing.T) {
		p := base
		p.Image = "https://example.com/other.jpg"
		_, err := NewStore([]models.Product{p}, nil)
		require.Error(t, err)
	})
}

func TestGetAll_PreservesSeedOrder(t *testing.T) {
	all := Default().GetAll()
	require.Len(t, all, 8)
	for i, p := range all {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestGetByKey_CoercesNumericKeys(t *testing.T) {
	store := Default()

	p, err := store.GetByKey("2")
	require.NoError(t, err)
	assert.Equal(t, "Classic Denim Jacket", p.Name)

	p, err = store.GetByKey(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, "Designer Handbag", p.Name)

	_, err = store.GetByKey("handbag")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = store.GetByKey("42")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetFeatured_SubsetInCatalogOrder(t *testing.T) {
	featured := Default().GetFeatured()
	require.NotEmpty(t, featured)

	var ids []int
	for _, p := range featured {
		assert.True(t, p.Featured)
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 2, 4, 6, 7}, ids)
}

func TestGetByCategory(t *testing.T) {
	store := Default()

	women := store.GetByCategory(models.CategoryWomen)
	for _, p := range women {
		assert.Equal(t, models.CategoryWomen, p.Category)
	}
	assert.Len(t, women, 5)

	assert.Empty(t, store.GetByCategory(models.CategoryMen))
	assert.Empty(t, store.GetByCategory("no-such-category"))
}

func TestGetCategoryByID(t *testing.T) {
	store := Default()

	cat, err := store.GetCategoryByID("accessories")
	require.NoError(t, err)
	assert.Equal(t, "Accessories", cat.Name)
	assert.Contains(t, cat.Subcategories, "jewelry")

	_, err = store.GetCategoryByID("kids")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestFilterMetadataInputs(t *testing.T) {
	store := Default()

	min, max := store.PriceBounds()
	assert.InDelta(t, 49.99, min, 1e-9)
	assert.InDelta(t, 299.99, max, 1e-9)

	sizes := store.AllSizes()
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL", "XXL", "One Size"}, sizes)

	colors := store.AllColors()
	assert.Contains(t, colors, "Ivory")
	assert.Contains(t, colors, "Rose Gold")
	// first-seen order: Ivory comes from product 1
	assert.Equal(t, "Ivory", colors[0])

	inStock, outOfStock := store.AvailabilityCounts()
	assert.Equal(t, 8, inStock)
	assert.Equal(t, 0, outOfStock)
}

func TestGetAll_ReturnsACopy(t *testing.T) {
	store := Default()

	all := store.GetAll()
	all[0].Name = "mutated"

	fresh := store.GetAll()
	assert.Equal(t, "Elegant Silk Blouse", fresh[0].Name)
}

func TestReturnedRecordsShareNoBackingStorage(t *testing.T) {
	store := Default()

	all := store.GetAll()
	all[0].Sizes[0] = "mutated"
	all[0].Colors[0] = "mutated"
	all[0].Images[0] = "mutated"

	fresh, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "XS", fresh.Sizes[0])
	assert.Equal(t, "Ivory", fresh.Colors[0])
	assert.NotEqual(t, "mutated", fresh.Images[0])

	byID, err := store.GetByID(1)
	require.NoError(t, err)
	byID.Sizes[0] = "mutated"
	again, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "XS", again.Sizes[0])

	cats := store.Categories()
	cats[0].Subcategories[0] = "mutated"
	cat, err := store.GetCategoryByID("women")
	require.NoError(t, err)
	assert.Equal(t, "tops", cat.Subcategories[0])
}
