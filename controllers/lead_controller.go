package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/models"
)

// LeadService is the lead-intake surface used by the leads endpoint.
type LeadService interface {
	SubmitLead(ctx context.Context, req models.LeadRequest) (id string, sheetRange *string, err error)
}

type LeadController struct {
	leads LeadService
}

func NewLeadController(leads LeadService) *LeadController {
	return &LeadController{leads: leads}
}

// CreateLead validates and persists a lead. The spreadsheet mirror is best
// effort: google_range is null whenever it did not happen.
func (lc *LeadController) CreateLead(c *gin.Context) {
	var req models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, sheetRange, err := lc.leads.SubmitLead(c.Request.Context(), req)
	if err != nil {
		zap.L().Error("Error creating lead", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"id":           id,
		"google_range": sheetRange,
	})
}
