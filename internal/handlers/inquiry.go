// internal/handlers/inquiry.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/forgepeptides/forge-backend/internal/config"
	"github.com/forgepeptides/forge-backend/internal/models"
	"github.com/forgepeptides/forge-backend/internal/services"
	"github.com/forgepeptides/forge-backend/internal/store"
	"github.com/forgepeptides/forge-backend/internal/utils"
)

type InquiryHandler struct {
	inquiryService *services.InquiryService
	cfg            config.InquiryConfig
}

func NewInquiryHandler(inquiryService *services.InquiryService, cfg config.InquiryConfig) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
		cfg:            cfg,
	}
}

// POST /api/inquiry
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req models.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	id, err := h.inquiryService.Submit(c.Request.Context(), &req)
	if err != nil {
		if h.cfg.StrictPersistence {
			utils.ServiceUnavailableResponse(c, "Inquiry could not be persisted")
			return
		}
		// Best-effort contract: the storefront form never sees a hard
		// failure from this endpoint.
		if !errors.Is(err, store.ErrNotConfigured) {
			logrus.WithError(err).Warn("Inquiry persistence failed, returning best-effort response")
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"id":     nil,
			"note":   "Database not configured in this preview",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"id":     id,
	})
}
