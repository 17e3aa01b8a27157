package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/models"
)

// CatalogService is the catalog surface the product endpoints use.
type CatalogService interface {
	EnsureSeeded(ctx context.Context)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type ProductController struct {
	catalog CatalogService
}

func NewProductController(catalog CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// GetProducts seeds the catalog when empty, then returns it in full.
func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	pc.catalog.EnsureSeeded(ctx)

	products, err := pc.catalog.ListProducts(ctx)
	if err != nil {
		zap.L().Error("Error fetching products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
