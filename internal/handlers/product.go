// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/forgepeptides/forge-backend/internal/models"
	"github.com/forgepeptides/forge-backend/internal/services"
	"github.com/forgepeptides/forge-backend/internal/store"
	"github.com/forgepeptides/forge-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	// Build the filter from the optional query parameters. Malformed
	// numeric values are client errors, not ignorable noise.
	filter := services.ProductFilter{
		Category: c.Query("category"),
	}

	if lengthMinStr := c.Query("length_min"); lengthMinStr != "" {
		lengthMin, err := strconv.Atoi(lengthMinStr)
		if err != nil {
			utils.BadRequestResponse(c, "length_min must be an integer", nil)
			return
		}
		filter.LengthMin = &lengthMin
	}

	if lengthMaxStr := c.Query("length_max"); lengthMaxStr != "" {
		lengthMax, err := strconv.Atoi(lengthMaxStr)
		if err != nil {
			utils.BadRequestResponse(c, "length_max must be an integer", nil)
			return
		}
		filter.LengthMax = &lengthMax
	}

	if purityMinStr := c.Query("purity_min"); purityMinStr != "" {
		purityMin, err := strconv.ParseFloat(purityMinStr, 64)
		if err != nil {
			utils.BadRequestResponse(c, "purity_min must be a number", nil)
			return
		}
		filter.PurityMin = &purityMin
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), &filter)
	if err != nil {
		// Unconfigured or unreachable store degrades to an empty catalog.
		if !errors.Is(err, store.ErrNotConfigured) {
			logrus.WithError(err).Warn("Product listing failed, returning empty catalog")
		}
		c.JSON(http.StatusOK, []models.Product{})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			utils.InvalidIDResponse(c)
			return
		}
		// Missing product, missing store, and store failures all read as
		// not-found at this endpoint.
		if !errors.Is(err, store.ErrNotFound) && !errors.Is(err, store.ErrNotConfigured) {
			logrus.WithError(err).WithField("product_id", c.Param("id")).Warn("Product lookup failed")
		}
		utils.NotFoundResponse(c, "Not found")
		return
	}

	c.JSON(http.StatusOK, product)
}

// GET /api/categories
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		if !errors.Is(err, store.ErrNotConfigured) {
			logrus.WithError(err).Warn("Category listing failed, returning empty list")
		}
		c.JSON(http.StatusOK, []string{})
		return
	}
	if categories == nil {
		categories = []string{}
	}

	c.JSON(http.StatusOK, categories)
}
