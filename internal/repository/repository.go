package repository

import (
	"github.com/harukimoto/crm-dashboard-api/internal/models"
	"github.com/harukimoto/crm-dashboard-api/internal/utils"
)

// DuplicateMembership reports a user holding more than one active
// membership.
type DuplicateMembership struct {
	UserID string `json:"user_id"`
	Count  int64  `json:"count"`
}

// MembershipRepository defines the interface for membership data access
type MembershipRepository interface {
	// FindAuthoritative returns the single authoritative active membership
	// for the user, or nil when the user has none. The result is
	// deterministic even when the store holds several active rows.
	FindAuthoritative(userID string) (*models.Membership, error)

	// ListMembers lists memberships of an organization with pagination
	ListMembers(orgID string, params utils.PaginationParams) ([]models.Membership, int64, error)

	// FindDuplicateActive reports users with more than one active membership
	FindDuplicateActive() ([]DuplicateMembership, error)
}
