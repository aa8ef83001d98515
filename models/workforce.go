package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Worker is one member of the tenant workforce. Facet columns carry the
// opaque IDs the admin UI selects by; GroupIDs and JobOrderIDs are
// many-valued memberships.
type Worker struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:uk_workers_user_external" json:"user_id"`

	ExternalID string `gorm:"not null;uniqueIndex:uk_workers_user_external" json:"external_id"`
	FullName   string `json:"full_name"`

	RegionID     string `gorm:"index" json:"region_id"`
	DivisionID   string `gorm:"index" json:"division_id"`
	LocationID   string `gorm:"index" json:"location_id"`
	DepartmentID string `gorm:"index" json:"department_id"`

	GroupIDs    pq.StringArray `gorm:"type:text[]" json:"group_ids"`
	JobOrderIDs pq.StringArray `gorm:"type:text[]" json:"job_order_ids"`

	IsActive bool `gorm:"default:true" json:"is_active"`
}
