package models

import "time"

// Organization is the unit of data isolation. Identity provider user ids
// and tenant ids are opaque strings issued elsewhere, so no autoincrement
// key here.
type Organization struct {
	ID        string    `gorm:"type:varchar(64);primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Members []Membership `gorm:"foreignKey:OrgID" json:"members,omitempty"`
}
