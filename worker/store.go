package worker

import (
	"gorm.io/gorm"

	"crewpulse/models"
)

// GormCampaignStore backs CampaignStore with the campaigns table.
type GormCampaignStore struct {
	DB *gorm.DB
}

func NewGormCampaignStore(db *gorm.DB) *GormCampaignStore {
	return &GormCampaignStore{DB: db}
}

func (s *GormCampaignStore) ListActive() ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := s.DB.Where("status = ?", models.StatusActive).Find(&campaigns).Error
	return campaigns, err
}

func (s *GormCampaignStore) Save(c *models.Campaign) error {
	return s.DB.Save(c).Error
}
