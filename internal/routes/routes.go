package routes

import (
	"awards_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches every handler group under the API prefix.
func RegisterRoutes(r *gin.Engine, apiPrefix string, h *handlers.AppHandlers) {
	api := r.Group(apiPrefix)

	h.ContentHandler.RegisterRoutes(api)
	h.AccountHandler.RegisterRoutes(api)
}
