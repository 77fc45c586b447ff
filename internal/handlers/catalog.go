// internal/handlers/catalog.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/livrestore/storefront/internal/i18n"
	"github.com/livrestore/storefront/internal/middleware"
	"github.com/livrestore/storefront/internal/services"
	"github.com/livrestore/storefront/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /catalog/products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	params := utils.GetPaginationParams(c)

	products := h.catalogService.Browse(sess)
	page := utils.PageSlice(products, params)

	result := utils.CreatePaginationResult(page, int64(len(products)), params)
	utils.PaginatedResponse(c, result)
}

// GET /catalog/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	product, err := h.catalogService.Get(sess, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product":      product,
		"current_view": sess.CurrentView(),
	})
}

// GET /catalog/search
func (h *CatalogHandler) Search(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := middleware.SessionFromContext(c)

	query := c.Query("q")
	results := h.catalogService.Search(sess, query)

	utils.SuccessResponse(c, gin.H{
		"message":      i18n.T(lang, i18n.KeySearchResultsFound, query),
		"query":        query,
		"results":      results,
		"current_view": sess.CurrentView(),
	})
}

// GET /catalog/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.catalogService.Categories(),
	})
}
