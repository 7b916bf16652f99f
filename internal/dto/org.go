package dto

import (
	"time"

	"github.com/harukimoto/crm-dashboard-api/internal/middleware"
	"github.com/harukimoto/crm-dashboard-api/internal/models"
)

// OrgContextDTO echoes the resolved tenant context back to the caller.
type OrgContextDTO struct {
	UserID     string  `json:"userId"`
	OrgID      string  `json:"orgId"`
	Role       string  `json:"role"`
	Department *string `json:"department"`
}

// ToOrgContextDTO converts a resolved org context to its DTO
func ToOrgContextDTO(octx middleware.OrgContext) OrgContextDTO {
	return OrgContextDTO{
		UserID:     octx.UserID,
		OrgID:      octx.OrgID,
		Role:       string(octx.Role),
		Department: octx.Department,
	}
}

// OrgMemberDTO represents a member in the caller's organization
type OrgMemberDTO struct {
	UserID     string                  `json:"user_id"`
	Role       models.MembershipRole   `json:"role"`
	Department *string                 `json:"department"`
	Status     models.MembershipStatus `json:"status"`
	JoinedAt   time.Time               `json:"joined_at"`
}

// ToOrgMemberDTOs converts memberships to member DTOs
func ToOrgMemberDTOs(members []models.Membership) []OrgMemberDTO {
	dtos := make([]OrgMemberDTO, len(members))
	for i, m := range members {
		dtos[i] = OrgMemberDTO{
			UserID:     m.UserID,
			Role:       m.Role,
			Department: m.Department,
			Status:     m.Status,
			JoinedAt:   m.CreatedAt,
		}
	}
	return dtos
}
