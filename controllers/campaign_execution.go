package controller

import (
	"github.com/gofiber/fiber/v2"

	"crewpulse/models"
	"crewpulse/utils"
)

// ActivateCampaign moves a draft campaign to active. The audience may
// resolve empty; that is allowed but surfaced as a warning.
func (cc *CampaignController) ActivateCampaign(c *fiber.Ctx) error {
	campaign, err := cc.fetchCampaign(c)
	if campaign == nil {
		return err
	}

	if !campaign.CanTransition(models.StatusActive) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Campaign cannot be activated from status: " + string(campaign.Status),
		})
	}
	if campaign.StartDate == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "start_date is required to activate a campaign",
		})
	}

	audience, err := utils.ResolveAudience(campaign.UserID, campaign.TargetAudience, campaign.EntireWorkforce, cc.Lookup)
	if err != nil {
		utils.LogError("activation_resolution_failed", err, map[string]interface{}{
			"campaign_id": campaign.ID,
		})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Audience resolution failed",
		})
	}

	var warnings []string
	if len(audience) == 0 {
		warnings = append(warnings, "resolved audience is empty")
		utils.LogEvent("campaign_activated_empty_audience", map[string]interface{}{
			"campaign_id": campaign.ID,
		})
	}

	campaign.Status = models.StatusActive
	if err := cc.DB.Save(campaign).Error; err != nil {
		cc.Logger.Printf("Failed to activate campaign %d: %v", campaign.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to activate campaign",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Campaign activated",
		"campaign": campaign,
		"audience": len(audience),
		"warnings": warnings,
	})
}

// PauseCampaign stops scheduling without losing occurrence counts.
func (cc *CampaignController) PauseCampaign(c *fiber.Ctx) error {
	campaign, err := cc.fetchCampaign(c)
	if campaign == nil {
		return err
	}

	if !campaign.CanTransition(models.StatusPaused) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Campaign cannot be paused from status: " + string(campaign.Status),
		})
	}

	campaign.Status = models.StatusPaused
	if err := cc.DB.Save(campaign).Error; err != nil {
		cc.Logger.Printf("Failed to pause campaign %d: %v", campaign.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to pause campaign",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Campaign paused",
		"campaign": campaign,
	})
}

// ResumeCampaign moves a paused campaign back to active. Occurrence counts
// are untouched.
func (cc *CampaignController) ResumeCampaign(c *fiber.Ctx) error {
	campaign, err := cc.fetchCampaign(c)
	if campaign == nil {
		return err
	}

	if campaign.Status != models.StatusPaused {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only paused campaigns can be resumed",
		})
	}

	campaign.Status = models.StatusActive
	if err := cc.DB.Save(campaign).Error; err != nil {
		cc.Logger.Printf("Failed to resume campaign %d: %v", campaign.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resume campaign",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Campaign resumed",
		"campaign": campaign,
	})
}

// SetAutomation attaches or replaces the automation config. Enabling
// automation on a draft or paused campaign forces it active.
func (cc *CampaignController) SetAutomation(c *fiber.Ctx) error {
	campaign, err := cc.fetchCampaign(c)
	if campaign == nil {
		return err
	}

	if campaign.Status == models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Completed campaigns cannot be automated",
		})
	}

	var input models.AutomationConfig
	if err := c.BodyParser(&input); err != nil {
		cc.Logger.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	input.ApplyDefaults()
	if err := input.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	campaign.Automation = &input

	forcedActive, err := activateForAutomation(campaign)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := cc.DB.Save(campaign).Error; err != nil {
		cc.Logger.Printf("Failed to set automation on campaign %d: %v", campaign.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update automation",
		})
	}

	if forcedActive {
		utils.LogEvent("campaign_activated_by_automation", map[string]interface{}{
			"campaign_id": campaign.ID,
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Automation updated",
		"campaign": campaign,
	})
}

// RemoveAutomation detaches automation; the campaign becomes manual and
// keeps its current status.
func (cc *CampaignController) RemoveAutomation(c *fiber.Ctx) error {
	campaign, err := cc.fetchCampaign(c)
	if campaign == nil {
		return err
	}

	campaign.Automation = nil
	if err := cc.DB.Save(campaign).Error; err != nil {
		cc.Logger.Printf("Failed to remove automation on campaign %d: %v", campaign.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update automation",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Automation removed",
		"campaign": campaign,
	})
}

// RecordAnalytics is the write-back endpoint the external sender calls
// after an occurrence: it replaces the campaign's latest snapshot.
func (cc *CampaignController) RecordAnalytics(c *fiber.Ctx) error {
	campaign, err := cc.fetchCampaign(c)
	if campaign == nil {
		return err
	}

	var input models.AnalyticsSnapshot
	if err := c.BodyParser(&input); err != nil {
		cc.Logger.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	if err := input.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	campaign.Analytics = &input
	if err := cc.DB.Save(campaign).Error; err != nil {
		cc.Logger.Printf("Failed to record analytics for campaign %d: %v", campaign.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record analytics",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Analytics recorded",
		"campaign": campaign,
	})
}
