package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/harukimoto/crm-dashboard-api/internal/errors"
	"github.com/harukimoto/crm-dashboard-api/internal/services"
)

// CRMHandler serves the aggregated CRM detail views. Routes using it sit
// behind the org guard; the path id refers to a CRM organization record,
// not a tenant.
type CRMHandler struct {
	service *services.AggregationService
}

// NewCRMHandler creates a new CRMHandler.
func NewCRMHandler(service *services.AggregationService) *CRMHandler {
	return &CRMHandler{service: service}
}

// parseOrgID validates the path id before any network activity happens.
func parseOrgID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		apierrors.Respond(c, apierrors.InvalidArgument("Invalid organization ID"))
		return 0, false
	}
	return id, true
}

// GetOrgOverview returns a CRM organization with its people and deals
func (h *CRMHandler) GetOrgOverview(c *gin.Context) {
	id, ok := parseOrgID(c)
	if !ok {
		return
	}

	view, err := h.service.OrgOverview(c.Request.Context(), id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetOrgActivity returns a CRM organization with its activities and deals
func (h *CRMHandler) GetOrgActivity(c *gin.Context) {
	id, ok := parseOrgID(c)
	if !ok {
		return
	}

	view, err := h.service.OrgActivity(c.Request.Context(), id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
