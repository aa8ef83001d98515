package controller

import (
	"github.com/gofiber/fiber/v2"

	"crewpulse/models"
	"crewpulse/utils"
)

func (cc *CampaignController) UpdateCampaign(c *fiber.Ctx) error {
	campaign, err := cc.fetchCampaign(c)
	if campaign == nil {
		return err
	}

	if campaign.Status == models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Completed campaigns cannot be edited",
		})
	}

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

	// Schedule-shaping fields only move while the scheduler is not running
	// the campaign.
	if campaign.Status == models.StatusActive {
		scheduleChanged := input.Frequency != campaign.Frequency ||
			!equalTimePtr(input.StartDate, campaign.StartDate) ||
			!equalTimePtr(input.EndDate, campaign.EndDate) ||
			!equalIntPtr(input.EndAfterCount, campaign.EndAfterCount)
		if scheduleChanged {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Pause the campaign before changing its schedule",
			})
		}
	}

	wasAutomated := campaign.Automation != nil
	input.apply(campaign)

	if err := campaign.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Newly attached automation forces draft/paused campaigns active.
	if !wasAutomated {
		if _, err := activateForAutomation(campaign); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	if err := cc.DB.Save(campaign).Error; err != nil {
		cc.Logger.Printf("Failed to update campaign %d: %v", campaign.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update campaign",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Campaign updated successfully",
		"campaign": campaign,
	})
}
