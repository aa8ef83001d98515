package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"crewpulse/models"
	"crewpulse/utils"
)

type CampaignController struct {
	DB     *gorm.DB
	Logger *log.Logger
	Lookup utils.FacetLookup
}

func NewCampaignController(db *gorm.DB, logger *log.Logger) *CampaignController {
	return &CampaignController{
		DB:     db,
		Logger: logger,
		Lookup: utils.NewGormFacetLookup(db),
	}
}

// fetchCampaign loads the campaign from the path ID, scoped to the
// authenticated tenant. A nil campaign means the response was already
// written.
func (cc *CampaignController) fetchCampaign(c *fiber.Ctx) (*models.Campaign, error) {
	user := c.Locals("user").(*models.User)

	var campaign models.Campaign
	err := cc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Campaign not found",
			})
		}
		cc.Logger.Printf("Failed to fetch campaign %s: %v", c.Params("id"), err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch campaign",
		})
	}
	return &campaign, nil
}

// activateForAutomation applies the automation side effect: a campaign with
// automation attached cannot sit in draft or paused, so it is forced active.
// Activation requirements apply, so a start date is mandatory. Reports
// whether the status actually changed.
func activateForAutomation(campaign *models.Campaign) (bool, error) {
	if campaign.Automation == nil || campaign.Status == models.StatusActive {
		return false, nil
	}
	if campaign.StartDate == nil {
		return false, errors.New("start_date is required to activate a campaign")
	}
	campaign.Status = models.StatusActive
	return true, nil
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
