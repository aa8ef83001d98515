package utils

import (
	"crewpulse/models"
)

// TickHints carries evaluation outcomes that are not campaign fields: the
// timing lever asks the next scheduler invocation to use the tenant's
// observed peak-engagement hour instead of the anchored time.
type TickHints struct {
	UsePeakHour bool
}

// denserFrequency steps a cadence one tier denser. Daily is the densest
// tier and maps to itself; one-time and custom cadences are never stepped.
var denserFrequency = map[models.CampaignFrequency]models.CampaignFrequency{
	models.FrequencyMonthly: models.FrequencyWeekly,
	models.FrequencyWeekly:  models.FrequencyDaily,
	models.FrequencyDaily:   models.FrequencyDaily,
}

// towardEmpathetic is the tone ladder: each entry is one step toward the
// tone most likely to lift engagement.
var towardEmpathetic = map[models.CampaignTone]models.CampaignTone{
	models.ToneDirective:    models.ToneCoaching,
	models.ToneCoaching:     models.ToneMotivational,
	models.ToneMotivational: models.ToneFeedbackSeek,
	models.ToneFeedbackSeek: models.ToneSurvey,
	models.ToneSurvey:       models.ToneEmpathetic,
	models.ToneEmpathetic:   models.ToneEmpathetic,
}

// EvaluateAutomation applies the campaign's automation policy against its
// latest snapshot and returns a possibly-adjusted copy. The input campaign
// is never mutated. Each enabled lever is applied at most once per call,
// and only when observed performance is below a threshold; healthy
// campaigns come back unchanged. A missing snapshot is a no-op, not an
// error.
func EvaluateAutomation(c models.Campaign, snapshot *models.AnalyticsSnapshot) (models.Campaign, TickHints) {
	hints := TickHints{}

	auto := c.Automation
	if auto == nil || !auto.AutoOptimize || snapshot == nil {
		return c, hints
	}

	belowEngagement := snapshot.AvgEngagementScore < auto.PerformanceThresholds.EngagementRate
	belowResponse := snapshot.ResponseRate() < auto.PerformanceThresholds.ResponseRate
	if !belowEngagement && !belowResponse {
		return c, hints
	}

	adjustments := map[string]interface{}{}

	if auto.OptimizationRules.FrequencyAdjustment {
		if denser, ok := denserFrequency[c.Frequency]; ok && denser != c.Frequency {
			adjustments["frequency"] = map[string]models.CampaignFrequency{"from": c.Frequency, "to": denser}
			c.Frequency = denser
		}
	}

	if auto.OptimizationRules.ToneAdjustment {
		if next, ok := towardEmpathetic[c.Tone]; ok && next != c.Tone {
			adjustments["tone"] = map[string]models.CampaignTone{"from": c.Tone, "to": next}
			c.Tone = next
		}
	}

	if auto.OptimizationRules.TargetingAdjustment && auto.AdaptiveTargeting && !c.NeedsReResolve {
		// Re-resolution itself is deferred to the resolver on the next tick.
		adjustments["targeting"] = "re-resolve"
		c.NeedsReResolve = true
	}

	if auto.OptimizationRules.TimingAdjustment && auto.SmartScheduling {
		// No campaign field changes; the worker passes the hint on.
		adjustments["timing"] = "peak-hour"
		hints.UsePeakHour = true
	}

	if len(adjustments) > 0 {
		LogEvent("campaign_automation_adjusted", map[string]interface{}{
			"campaign_id":      c.ID,
			"below_engagement": belowEngagement,
			"below_response":   belowResponse,
			"adjustments":      adjustments,
		})
	}

	return c, hints
}
