package utils

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"crewpulse/models"
)

// GormFacetLookup resolves facet membership from the workforce tables.
type GormFacetLookup struct {
	DB *gorm.DB
}

func NewGormFacetLookup(db *gorm.DB) *GormFacetLookup {
	return &GormFacetLookup{DB: db}
}

func (g *GormFacetLookup) WorkersByFacet(userID uint, facet FacetType, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := g.DB.Model(&models.Worker{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	switch facet {
	case FacetRegion:
		query = query.Where("region_id IN ?", ids)
	case FacetDivision:
		query = query.Where("division_id IN ?", ids)
	case FacetLocation:
		query = query.Where("location_id IN ?", ids)
	case FacetDepartment:
		query = query.Where("department_id IN ?", ids)
	case FacetUserGroup:
		query = query.Where("group_ids && ?", pqStringArray(ids))
	case FacetJobOrder:
		query = query.Where("job_order_ids && ?", pqStringArray(ids))
	default:
		return nil, fmt.Errorf("unknown facet type: %q", facet)
	}

	var workerIDs []string
	if err := query.Pluck("external_id", &workerIDs).Error; err != nil {
		return nil, err
	}
	return workerIDs, nil
}

// pqStringArray adapts an ID list for the postgres && overlap operator.
func pqStringArray(ids []string) pq.StringArray {
	return pq.StringArray(ids)
}

func (g *GormFacetLookup) AllWorkers(userID uint) ([]string, error) {
	var workerIDs []string
	err := g.DB.Model(&models.Worker{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Pluck("external_id", &workerIDs).Error
	if err != nil {
		return nil, err
	}
	return workerIDs, nil
}
