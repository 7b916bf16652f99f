package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harukimoto/crm-dashboard-api/internal/pipedrive"
)

// IntegrationsHandler reports credential presence per integration for
// UI-level warnings. It carries no authorization semantics.
type IntegrationsHandler struct {
	crm pipedrive.API
}

// NewIntegrationsHandler creates a new IntegrationsHandler.
func NewIntegrationsHandler(crm pipedrive.API) *IntegrationsHandler {
	return &IntegrationsHandler{crm: crm}
}

// Status returns a configured/unconfigured flag per integration
func (h *IntegrationsHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pipedrive": h.crm.IsConfigured(),
	})
}
