package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DiagnosticsService renders store connectivity for the /test endpoint.
type DiagnosticsService interface {
	CheckStore(ctx context.Context) gin.H
}

type DiagnosticsController struct {
	diagnostics DiagnosticsService
}

func NewDiagnosticsController(diagnostics DiagnosticsService) *DiagnosticsController {
	return &DiagnosticsController{diagnostics: diagnostics}
}

// Test reports store connectivity. Always 200; failures show up inside the
// report, never as a request failure.
func (dc *DiagnosticsController) Test(c *gin.Context) {
	c.JSON(http.StatusOK, dc.diagnostics.CheckStore(c.Request.Context()))
}
