package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/models"
	"storefront-service/services"
)

// CheckoutService is the checkout surface used by the checkout endpoint.
type CheckoutService interface {
	CreateSession(ctx context.Context, req models.CheckoutRequest) (*services.CheckoutResult, error)
}

type CheckoutController struct {
	checkout CheckoutService
}

func NewCheckoutController(checkout CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// CreateSession runs the checkout workflow and returns either the provider's
// hosted checkout URL or the mock fallback URL with an explanatory note.
func (cc *CheckoutController) CreateSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := cc.checkout.CreateSession(c.Request.Context(), req)
	if err != nil {
		zap.L().Warn("Checkout rejected", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}

	resp := gin.H{
		"checkout_url": result.CheckoutURL,
		"order_id":     result.OrderID,
	}
	if result.Note != "" {
		resp["note"] = result.Note
	}
	c.JSON(http.StatusOK, resp)
}
