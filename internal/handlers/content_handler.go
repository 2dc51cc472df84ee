package handlers

import (
	"net/http"

	"awards_backend/internal/catalog"
	"awards_backend/internal/services/dto"
	"awards_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the static catalog: categories, the about
// section and the application steps.
type ContentHandler struct {
	*BaseHandler
}

func NewContentHandler(base *BaseHandler) *ContentHandler {
	return &ContentHandler{BaseHandler: base}
}

func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
	}

	content := rg.Group("/content")
	{
		content.GET("/about", h.GetAbout)
		content.GET("/steps", h.GetSteps)
	}
}

func (h *ContentHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func (h *ContentHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: catalog.Categories()})
}

func (h *ContentHandler) GetCategory(c *gin.Context) {
	cat, ok := catalog.CategoryByID(c.Param("id"))
	if !ok {
		apperrors.HandleError(c, apperrors.ErrCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *ContentHandler) GetAbout(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.About())
}

func (h *ContentHandler) GetSteps(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Steps())
}
