package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"crewpulse/models"
	"crewpulse/utils"
)

// CampaignStore is the narrow persistence surface the tick driver needs.
type CampaignStore interface {
	ListActive() ([]models.Campaign, error)
	Save(c *models.Campaign) error
}

// Sender is the external execution trigger: it delivers one occurrence to
// the resolved audience and later writes an analytics snapshot back through
// the API. The worker only advances occurrence counts after Send confirms.
type Sender interface {
	Send(c models.Campaign, audience []string) error
}

// PeakHourSource supplies the tenant's observed peak-engagement hour, an
// external signal used by the smart-scheduling lever.
type PeakHourSource interface {
	PeakHour(userID uint) (int, bool)
}

// CampaignWorker drives scheduling and automation for active campaigns.
// Campaigns are processed independently; a failure in one only skips that
// campaign's tick.
type CampaignWorker struct {
	Store     CampaignStore
	Sender    Sender
	Locker    utils.TickLocker
	Lookup    utils.FacetLookup
	PeakHours PeakHourSource
	Logger    *log.Logger
	Interval  time.Duration

	mu        sync.Mutex
	peakHints map[uint]bool
}

func NewCampaignWorker(store CampaignStore, sender Sender, locker utils.TickLocker, lookup utils.FacetLookup, logger *log.Logger) *CampaignWorker {
	return &CampaignWorker{
		Store:     store,
		Sender:    sender,
		Locker:    locker,
		Lookup:    lookup,
		Logger:    logger,
		Interval:  time.Minute,
		peakHints: make(map[uint]bool),
	}
}

func (cw *CampaignWorker) Start(ctx context.Context) {
	cw.Logger.Println("Campaign worker started")

	ticker := time.NewTicker(cw.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cw.Logger.Println("Campaign worker shutting down...")
			return
		case <-ticker.C:
			cw.RunTick(time.Now())
		}
	}
}

// RunTick processes one tick for every active campaign.
func (cw *CampaignWorker) RunTick(now time.Time) {
	campaigns, err := cw.Store.ListActive()
	if err != nil {
		utils.LogError("tick_list_failed", err, nil)
		return
	}

	for i := range campaigns {
		cw.processCampaign(campaigns[i], now)
	}
}

func (cw *CampaignWorker) processCampaign(c models.Campaign, now time.Time) {
	acquired, err := cw.Locker.Acquire(c.ID, now)
	if err != nil {
		utils.LogError("tick_lock_failed", err, map[string]interface{}{"campaign_id": c.ID})
		return
	}
	if !acquired {
		// Another runner holds this campaign for the current tick window.
		utils.LogEvent("tick_skipped_already_running", map[string]interface{}{"campaign_id": c.ID})
		return
	}
	defer cw.Locker.Release(c.ID, now)

	// End condition may have been reached by the previous confirmed firing.
	if utils.HasEnded(&c, c.OccurrencesFired) {
		cw.complete(&c, now)
		return
	}

	fired := false
	if utils.Due(&c, now) && cw.readyForPeakHour(&c, now) {
		fired = cw.fire(&c, now)
	}

	evaluated := c
	var hints utils.TickHints
	if c.Status == models.StatusActive {
		evaluated, hints = utils.EvaluateAutomation(c, c.Analytics)
	}
	if hints.UsePeakHour {
		cw.mu.Lock()
		cw.peakHints[c.ID] = true
		cw.mu.Unlock()
	}

	if fired || evaluated.Frequency != c.Frequency || evaluated.Tone != c.Tone ||
		evaluated.NeedsReResolve != c.NeedsReResolve || evaluated.Status != c.Status {
		if err := cw.Store.Save(&evaluated); err != nil {
			utils.LogError("tick_save_failed", err, map[string]interface{}{"campaign_id": c.ID})
		}
	}
}

// fire resolves the audience and hands the occurrence to the sender.
// Occurrence accounting advances only on confirmed delivery; a resolution
// or send failure leaves the campaign exactly as it was.
func (cw *CampaignWorker) fire(c *models.Campaign, now time.Time) bool {
	audience, err := utils.ResolveAudience(c.UserID, c.TargetAudience, c.EntireWorkforce, cw.Lookup)
	if err != nil {
		utils.LogError("tick_resolution_failed", err, map[string]interface{}{"campaign_id": c.ID})
		return false
	}

	if err := cw.Sender.Send(*c, audience); err != nil {
		utils.LogError("tick_send_failed", err, map[string]interface{}{
			"campaign_id": c.ID,
			"audience":    len(audience),
		})
		return false
	}

	c.OccurrencesFired++
	c.LastFiredAt = &now
	c.NeedsReResolve = false

	cw.mu.Lock()
	delete(cw.peakHints, c.ID)
	cw.mu.Unlock()

	utils.LogEvent("campaign_fired", map[string]interface{}{
		"campaign_id": c.ID,
		"occurrence":  c.OccurrencesFired,
		"audience":    len(audience),
	})

	if utils.HasEnded(c, c.OccurrencesFired) {
		c.Status = models.StatusCompleted
		c.CompletedAt = &now
		utils.LogEvent("campaign_completed", map[string]interface{}{"campaign_id": c.ID})
	}
	return true
}

func (cw *CampaignWorker) complete(c *models.Campaign, now time.Time) {
	c.Status = models.StatusCompleted
	c.CompletedAt = &now
	if err := cw.Store.Save(c); err != nil {
		utils.LogError("tick_save_failed", err, map[string]interface{}{"campaign_id": c.ID})
		return
	}
	utils.LogEvent("campaign_completed", map[string]interface{}{"campaign_id": c.ID})
}

// readyForPeakHour honors a pending smart-scheduling hint: a due campaign
// with a hint waits within its due day until the tenant's peak hour. With
// no hint or no peak-hour source, campaigns fire as soon as they are due.
func (cw *CampaignWorker) readyForPeakHour(c *models.Campaign, now time.Time) bool {
	cw.mu.Lock()
	pending := cw.peakHints[c.ID]
	cw.mu.Unlock()

	if !pending || cw.PeakHours == nil {
		return true
	}

	hour, ok := cw.PeakHours.PeakHour(c.UserID)
	if !ok {
		return true
	}
	return now.Hour() >= hour
}
