package controller

import (
	"github.com/gofiber/fiber/v2"

	"crewpulse/models"
	"crewpulse/utils"
)

func (cc *CampaignController) GetCampaigns(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := cc.DB.Model(&models.Campaign{}).Where("user_id = ?", user.ID)

	if status := c.Query("status"); status != "" {
		if !models.CampaignStatus(status).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid status filter",
			})
		}
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		if !models.CampaignCategory(category).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid category filter",
			})
		}
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		cc.Logger.Printf("Failed to count campaigns: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch campaigns",
		})
	}

	var campaigns []models.Campaign
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&campaigns).Error
	if err != nil {
		cc.Logger.Printf("Failed to fetch campaigns: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch campaigns",
		})
	}

	return c.JSON(fiber.Map{
		"campaigns": campaigns,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total_count": total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func (cc *CampaignController) GetCampaign(c *fiber.Ctx) error {
	campaign, err := cc.fetchCampaign(c)
	if campaign == nil {
		return err
	}
	return c.JSON(fiber.Map{"campaign": campaign})
}

// PreviewAudience resolves the campaign's current audience without firing
// anything, so admins can sanity-check targeting before activation.
func (cc *CampaignController) PreviewAudience(c *fiber.Ctx) error {
	campaign, err := cc.fetchCampaign(c)
	if campaign == nil {
		return err
	}

	audience, err := utils.ResolveAudience(campaign.UserID, campaign.TargetAudience, campaign.EntireWorkforce, cc.Lookup)
	if err != nil {
		utils.LogError("audience_preview_failed", err, map[string]interface{}{
			"campaign_id": campaign.ID,
		})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Audience resolution failed",
		})
	}

	return c.JSON(fiber.Map{
		"campaign_id": campaign.ID,
		"size":        len(audience),
		"worker_ids":  audience,
	})
}
