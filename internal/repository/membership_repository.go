package repository

import (
	"errors"

	"github.com/harukimoto/crm-dashboard-api/internal/database"
	"github.com/harukimoto/crm-dashboard-api/internal/models"
	"github.com/harukimoto/crm-dashboard-api/internal/utils"
	"gorm.io/gorm"
)

// GormMembershipRepository is a GORM implementation of MembershipRepository
type GormMembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &GormMembershipRepository{db: db}
}

// FindAuthoritative picks the earliest-created active membership. The
// store does not guarantee a single active row per user, so uniqueness of
// the result comes from the ordering: created_at ascending, primary key
// ascending as the equal-timestamp tie-break. Non-active rows are
// invisible here; zero rows is a legitimate state reported as (nil, nil),
// not an error.
func (r *GormMembershipRepository) FindAuthoritative(userID string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.
		Where("user_id = ? AND status = ?", userID, models.MembershipActive).
		Order("created_at ASC, id ASC").
		First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListMembers lists all memberships of an organization, newest first
func (r *GormMembershipRepository) ListMembers(orgID string, params utils.PaginationParams) ([]models.Membership, int64, error) {
	var total int64
	if err := r.db.Model(&models.Membership{}).
		Where("org_id = ?", orgID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []models.Membership
	if err := r.db.
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// FindDuplicateActive reports users with more than one active membership
func (r *GormMembershipRepository) FindDuplicateActive() ([]DuplicateMembership, error) {
	var rows []DuplicateMembership
	err := r.db.Model(&models.Membership{}).
		Select("user_id, COUNT(*) AS count").
		Where("status = ?", models.MembershipActive).
		Group("user_id").
		Having("COUNT(*) > 1").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
