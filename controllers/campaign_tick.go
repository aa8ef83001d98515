package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"crewpulse/models"
	"crewpulse/utils"
	"crewpulse/worker"
)

// TickController exposes the manual tick trigger. It runs the same code
// path as the background worker, so operators can advance scheduling and
// automation without waiting for the next interval.
type TickController struct {
	Worker *worker.CampaignWorker
}

func NewTickController(w *worker.CampaignWorker) *TickController {
	return &TickController{Worker: w}
}

func (tc *TickController) TriggerTick(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	now := time.Now()
	tc.Worker.RunTick(now)

	utils.LogEvent("manual_tick_triggered", map[string]interface{}{
		"user_id": user.ID,
		"at":      now,
	})

	return c.JSON(fiber.Map{
		"message": "Tick executed",
		"at":      now,
	})
}
