// internal/handlers/status.go
package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/forgepeptides/forge-backend/internal/store"
)

type StatusHandler struct {
	store store.Store
}

func NewStatusHandler(st store.Store) *StatusHandler {
	return &StatusHandler{store: st}
}

// GET /
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Forge Peptides API running",
	})
}

// GET /test
//
// Diagnostic snapshot for previews: reports liveness, store reachability,
// and whether the database environment variables are present (never their
// values). Every failure inside is rendered as a status string; the
// endpoint itself never errors.
func (h *StatusHandler) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store == nil {
		response["database"] = "⚠️ Available but not initialized"
	} else {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		collections, err := h.store.CollectionNames(c.Request.Context())
		if err != nil {
			response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if collections == nil {
				collections = []string{}
			}
			if len(collections) > 10 {
				collections = collections[:10]
			}
			response["collections"] = collections
			response["database"] = "✅ Connected & Working"
		}
	}

	response["database_url"] = envStatus("DATABASE_URL")
	response["database_name"] = envStatus("DATABASE_NAME")

	c.JSON(http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
