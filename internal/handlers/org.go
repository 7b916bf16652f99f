package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harukimoto/crm-dashboard-api/internal/dto"
	apierrors "github.com/harukimoto/crm-dashboard-api/internal/errors"
	"github.com/harukimoto/crm-dashboard-api/internal/middleware"
	"github.com/harukimoto/crm-dashboard-api/internal/repository"
	"github.com/harukimoto/crm-dashboard-api/internal/utils"
	"go.uber.org/zap"
)

// OrgHandler serves tenant-scoped organization endpoints. Everything here
// assumes the org guard already ran; the tenant comes from the resolved
// context, never from the request.
type OrgHandler struct {
	memberships repository.MembershipRepository
	log         *zap.Logger
}

// NewOrgHandler creates a new OrgHandler.
func NewOrgHandler(memberships repository.MembershipRepository, log *zap.Logger) *OrgHandler {
	return &OrgHandler{
		memberships: memberships,
		log:         log,
	}
}

// GetCurrentContext echoes the resolved tenant context for the caller
func (h *OrgHandler) GetCurrentContext(c *gin.Context) {
	octx, ok := middleware.GetOrgContext(c)
	if !ok {
		apierrors.Respond(c, apierrors.Internal("Missing organization context"))
		return
	}

	c.JSON(http.StatusOK, dto.ToOrgContextDTO(octx))
}

// ListMembers lists the members of the caller's organization
func (h *OrgHandler) ListMembers(c *gin.Context) {
	octx, ok := middleware.GetOrgContext(c)
	if !ok {
		apierrors.Respond(c, apierrors.Internal("Missing organization context"))
		return
	}

	params := utils.GetPaginationParams(c)
	members, total, err := h.memberships.ListMembers(octx.OrgID, params)
	if err != nil {
		h.log.Error("failed to list members", zap.String("org_id", octx.OrgID), zap.Error(err))
		apierrors.Respond(c, apierrors.Internal("Failed to list members"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": dto.ToOrgMemberDTOs(members),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}
