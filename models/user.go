package models

import (
	"gorm.io/gorm"
)

// User represents an admin account. Each user scopes one tenant: campaigns
// and workers hang off UserID. Credentials live with the external identity
// provider; this table only carries what token validation needs.
type User struct {
	gorm.Model

	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Name     *string `json:"name,omitempty"`
	Company  *string `json:"company,omitempty"`
	Timezone string  `gorm:"default:'UTC'" json:"timezone"`

	IsActive     bool `gorm:"default:true" json:"is_active"`
	IsAdmin      bool `gorm:"default:false" json:"is_admin"`
	TokenVersion int  `gorm:"default:0" json:"-"`

	// Relations
	Campaigns []Campaign `gorm:"foreignKey:UserID" json:"campaigns,omitempty"`
	Workers   []Worker   `gorm:"foreignKey:UserID" json:"workers,omitempty"`
}
