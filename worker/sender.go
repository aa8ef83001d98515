package worker

import (
	"crewpulse/models"
	"crewpulse/utils"
)

// LogSender is the default Sender wiring: it records the occurrence instead
// of delivering it. Deployments replace it with the real dispatch
// integration; the worker contract is the same either way.
type LogSender struct{}

func (LogSender) Send(c models.Campaign, audience []string) error {
	utils.LogEvent("campaign_dispatched", map[string]interface{}{
		"campaign_id": c.ID,
		"title":       c.Title,
		"tone":        c.Tone,
		"audience":    len(audience),
	})
	return nil
}
