package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"crewpulse/models"
	"crewpulse/utils"
)

// CampaignInput is the write payload shared by create and update.
type CampaignInput struct {
	Title            string                   `json:"title" validate:"required,max=200"`
	Objective        string                   `json:"objective" validate:"max=2000"`
	Category         models.CampaignCategory  `json:"category" validate:"required"`
	Tone             models.CampaignTone      `json:"tone" validate:"required"`
	EntireWorkforce  bool                     `json:"entire_workforce"`
	TargetAudience   models.FacetSelector     `json:"target_audience"`
	StartDate        *time.Time               `json:"start_date"`
	Frequency        models.CampaignFrequency `json:"frequency" validate:"required"`
	EndDate          *time.Time               `json:"end_date"`
	EndAfterCount    *int                     `json:"end_after_count"`
	FollowUpStrategy models.FollowUpStrategy  `json:"follow_up_strategy"`
	Automation       *models.AutomationConfig `json:"automation"`
}

// apply copies the payload onto a campaign. Invariants are checked by
// campaign.Validate afterwards, never silently corrected here.
func (in *CampaignInput) apply(campaign *models.Campaign) {
	campaign.Title = in.Title
	campaign.Objective = in.Objective
	campaign.Category = in.Category
	campaign.Tone = in.Tone
	campaign.EntireWorkforce = in.EntireWorkforce
	campaign.TargetAudience = in.TargetAudience
	campaign.StartDate = in.StartDate
	campaign.Frequency = in.Frequency
	campaign.EndDate = in.EndDate
	campaign.EndAfterCount = in.EndAfterCount
	campaign.FollowUpStrategy = in.FollowUpStrategy
	if campaign.FollowUpStrategy == "" {
		campaign.FollowUpStrategy = models.FollowUpNone
	}
	campaign.Automation = in.Automation
	if campaign.Automation != nil {
		campaign.Automation.ApplyDefaults()
	}
}

func (cc *CampaignController) CreateCampaign(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input CampaignInput
	if err := c.BodyParser(&input); err != nil {
		cc.Logger.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	if err := utils.ValidateStruct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	campaign := models.Campaign{
		UserID: user.ID,
		Status: models.StatusDraft,
	}
	input.apply(&campaign)

	if err := campaign.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Attaching automation at creation time activates the campaign, same
	// side effect as enabling it later.
	if _, err := activateForAutomation(&campaign); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := cc.DB.Create(&campaign).Error; err != nil {
		cc.Logger.Printf("Failed to create campaign: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create campaign",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Campaign created successfully",
		"campaign": campaign,
	})
}
