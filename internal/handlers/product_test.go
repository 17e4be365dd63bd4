// internal/handlers/product_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/forgepeptides/forge-backend/internal/database"
	"github.com/forgepeptides/forge-backend/internal/models"
	"github.com/forgepeptides/forge-backend/internal/services"
	"github.com/forgepeptides/forge-backend/internal/store"
	"github.com/forgepeptides/forge-backend/internal/store/memory"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	store  *memory.Store
	router *gin.Engine
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.store = memory.New()
	require.NoError(suite.T(), database.SeedSampleProducts(context.Background(), suite.store))

	suite.router = newCatalogRouter(suite.store)
}

func newCatalogRouter(st store.Store) *gin.Engine {
	handler := NewProductHandler(services.NewCatalogService(st))

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/products", handler.ListProducts)
		api.GET("/products/:id", handler.GetProduct)
		api.GET("/categories", handler.Categories)
	}
	return r
}

func (suite *ProductHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProductHandlerTestSuite) listProducts(path string) []models.Product {
	w := suite.get(path)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	apiError, ok := response["error"].(map[string]interface{})
	require.True(t, ok, "expected an error envelope, got %s", w.Body.String())
	return apiError["code"].(string)
}

func (suite *ProductHandlerTestSuite) TestListAllProducts() {
	products := suite.listProducts("/api/products")

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	assert.Equal(suite.T(), []string{"BPC-157", "GHRP-6", "Magainin II", "Palmitoyl Tripeptide-1"}, names)
}

func (suite *ProductHandlerTestSuite) TestListProductsByCategory() {
	products := suite.listProducts("/api/products?category=Bioactive%20Peptides")

	require.Len(suite.T(), products, 2)
	assert.Equal(suite.T(), "BPC-157", products[0].Name)
	assert.Equal(suite.T(), "GHRP-6", products[1].Name)
}

func (suite *ProductHandlerTestSuite) TestListProductsByPurity() {
	products := suite.listProducts("/api/products?purity_min=99")

	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "GHRP-6", products[0].Name)
}

func (suite *ProductHandlerTestSuite) TestListProductsByLengthRange() {
	products := suite.listProducts("/api/products?length_min=3&length_max=6")

	require.Len(suite.T(), products, 2)
	for _, p := range products {
		assert.GreaterOrEqual(suite.T(), p.Length, 3)
		assert.LessOrEqual(suite.T(), p.Length, 6)
	}
}

func (suite *ProductHandlerTestSuite) TestListProductsRejectsMalformedBounds() {
	w := suite.get("/api/products?length_min=six")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "BAD_REQUEST", errorCode(suite.T(), w))

	w = suite.get("/api/products?purity_min=very")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "BAD_REQUEST", errorCode(suite.T(), w))
}

func (suite *ProductHandlerTestSuite) TestGetProductRoundTrip() {
	listed := suite.listProducts("/api/products?category=Cosmetic")
	require.Len(suite.T(), listed, 1)

	w := suite.get("/api/products/" + listed[0].ID)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var product models.Product
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &product))

	want := database.SampleProducts()[3]
	want.ID = listed[0].ID
	assert.Equal(suite.T(), want, product)
}

func (suite *ProductHandlerTestSuite) TestGetProductInvalidID() {
	w := suite.get("/api/products/not-a-valid-id")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "INVALID_ID", errorCode(suite.T(), w))
}

func (suite *ProductHandlerTestSuite) TestGetProductMissing() {
	w := suite.get("/api/products/" + store.NewID())

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "NOT_FOUND", errorCode(suite.T(), w))
}

func (suite *ProductHandlerTestSuite) TestCategoriesSorted() {
	w := suite.get("/api/categories")
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var categories []string
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Equal(suite.T(), []string{"Antibacterial", "Bioactive Peptides", "Cosmetic"}, categories)
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

// Degraded mode: no configured store.

func degradedGet(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := newCatalogRouter(nil)

	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListProductsDegradesToEmpty(t *testing.T) {
	w := degradedGet(t, "/api/products")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCategoriesDegradeToEmpty(t *testing.T) {
	w := degradedGet(t, "/api/categories")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProductInvalidIDWithoutStore(t *testing.T) {
	// Identifier syntax is checked before store availability.
	w := degradedGet(t, "/api/products/not-a-valid-id")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, w))
}

func TestGetProductWithoutStore(t *testing.T) {
	w := degradedGet(t, "/api/products/"+store.NewID())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}
