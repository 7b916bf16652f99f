package models

import "time"

type MembershipRole string

const (
	RoleOwner  MembershipRole = "owner"
	RoleAdmin  MembershipRole = "admin"
	RoleMember MembershipRole = "member"
)

type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipInvited   MembershipStatus = "invited"
	MembershipSuspended MembershipStatus = "suspended"
)

// Membership binds an identity to one organization. The store permits
// several rows per user; which one is authoritative is decided at the
// repository layer, not here. Department is genuinely optional and stays
// nil when absent.
type Membership struct {
	ID         uint64           `gorm:"primarykey" json:"id"`
	UserID     string           `gorm:"type:varchar(64);not null" json:"user_id"`
	OrgID      string           `gorm:"type:varchar(64);not null" json:"org_id"`
	Role       MembershipRole   `gorm:"type:varchar(20);not null" json:"role"`
	Department *string          `gorm:"type:varchar(100)" json:"department"`
	Status     MembershipStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrgID" json:"organization,omitempty"`
}
