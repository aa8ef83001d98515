package controller

import (
	"github.com/gofiber/fiber/v2"

	"crewpulse/utils"
)

// DeleteCampaign removes the campaign entirely. This is the only
// destructive operation and is allowed from any state.
func (cc *CampaignController) DeleteCampaign(c *fiber.Ctx) error {
	campaign, err := cc.fetchCampaign(c)
	if campaign == nil {
		return err
	}

	if err := cc.DB.Delete(campaign).Error; err != nil {
		cc.Logger.Printf("Failed to delete campaign %d: %v", campaign.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete campaign",
		})
	}

	utils.LogEvent("campaign_deleted", map[string]interface{}{
		"campaign_id": campaign.ID,
		"status":      campaign.Status,
	})

	return c.JSON(fiber.Map{
		"message": "Campaign deleted successfully",
	})
}
