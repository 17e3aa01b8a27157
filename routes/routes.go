package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/controllers"
)

// RegisterRoutes wires every endpoint of the storefront API.
func RegisterRoutes(
	r *gin.Engine,
	products *controllers.ProductController,
	leads *controllers.LeadController,
	checkout *controllers.CheckoutController,
	diagnostics *controllers.DiagnosticsController,
) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Perfume AI Agent Backend Running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/test", diagnostics.Test)

	api := r.Group("/api")
	api.GET("/products", products.GetProducts)
	api.POST("/leads", leads.CreateLead)
	api.POST("/checkout/create-session", checkout.CreateSession)
}
