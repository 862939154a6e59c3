package product_controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
	"github.com/Modave-Commerce/modave-storefront-backend/routes"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	routes.SetupStorefrontRoutes(api)
	return router
}

type productListEnvelope struct {
	Message string            `json:"message"`
	Data    []models.Product  `json:"data"`
	Error   bool              `json:"error"`
	Meta    *models.Pagination `json:"meta"`
}

func getProducts(t *testing.T, router *gin.Engine, query string) (*httptest.ResponseRecorder, productListEnvelope) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/products"+query, nil)
	router.ServeHTTP(w, req)

	var envelope productListEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestGetProducts_DefaultListing(t *testing.T) {
	router := newTestRouter()

	w, envelope := getProducts(t, router, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, envelope.Error)

	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 8, envelope.Meta.Total)
	assert.Equal(t, 1, envelope.Meta.Page)
	require.Len(t, envelope.Data, 8)

	// default sort is featured: promoted products lead
	assert.True(t, envelope.Data[0].Featured)
}

func TestGetProducts_FiltersAndSort(t *testing.T) {
	router := newTestRouter()

	w, envelope := getProducts(t, router, "?category=women&sortBy=price-asc")
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, envelope.Data, 5)
	for i, p := range envelope.Data {
		assert.Equal(t, "women", p.Category)
		if i > 0 {
			assert.LessOrEqual(t, envelope.Data[i-1].Price, p.Price)
		}
	}
}

func TestGetProducts_PriceBucket(t *testing.T) {
	router := newTestRouter()

	_, envelope := getProducts(t, router, "?priceRange=50-100")
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, 2, envelope.Data[0].ID)
	assert.Equal(t, 5, envelope.Data[1].ID)
}

func TestGetProducts_Pagination(t *testing.T) {
	router := newTestRouter()

	_, envelope := getProducts(t, router, "?limit=3&page=3&sortBy=price-asc")
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 8, envelope.Meta.Total)
	assert.Equal(t, 3, envelope.Meta.TotalPages)
	require.Len(t, envelope.Data, 2) // last page holds the remainder

	_, envelope = getProducts(t, router, "?limit=3&page=9")
	assert.Empty(t, envelope.Data)
}

func TestGetProductByID(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/products/3", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Flowing Maxi Dress", envelope.Data.Name)
}

func TestGetProductByID_NotFound(t *testing.T) {
	router := newTestRouter()

	for _, id := range []string{"99", "not-a-number"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/products/"+id, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, "id %q", id)
	}
}

func TestGetFeaturedProducts(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/products/featured", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 5)
	for _, p := range envelope.Data {
		assert.True(t, p.Featured)
	}
}

func TestGetCategories(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/categories", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []models.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 4)
	assert.Equal(t, "women", envelope.Data[0].ID)
}

func TestGetFilterMetadata(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/filters/metadata", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.FilterMetadata `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	require.NotNil(t, envelope.Data.PriceRange)
	assert.InDelta(t, 49.99, envelope.Data.PriceRange.Min, 1e-9)
	assert.InDelta(t, 299.99, envelope.Data.PriceRange.Max, 1e-9)
	assert.Len(t, envelope.Data.PriceBuckets, 5)
	assert.Contains(t, envelope.Data.Sizes, "XXL")
	require.NotNil(t, envelope.Data.Availability)
	assert.Equal(t, 8, envelope.Data.Availability.InStock)
}
