package controller

import (
	"github.com/gofiber/fiber/v2"

	"crewpulse/models"
	"crewpulse/utils"
)

// GetTenantStats rolls the tenant's campaign snapshots up into one
// aggregate: recipient and response sums, mean engagement over campaigns
// that have a snapshot, and per-trait delta sums.
func (cc *CampaignController) GetTenantStats(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var campaigns []models.Campaign
	if err := cc.DB.Where("user_id = ?", user.ID).Find(&campaigns).Error; err != nil {
		cc.Logger.Printf("Failed to fetch campaigns for stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch campaign stats",
		})
	}

	snapshots := make([]*models.AnalyticsSnapshot, len(campaigns))
	byStatus := map[models.CampaignStatus]int{}
	for i, campaign := range campaigns {
		snapshots[i] = campaign.Analytics
		byStatus[campaign.Status]++
	}

	aggregate := utils.AggregateSnapshots(snapshots)

	return c.JSON(fiber.Map{
		"aggregate": aggregate,
		"by_status": byStatus,
	})
}
