package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crewpulse/models"
)

func automatedCampaign() models.Campaign {
	return models.Campaign{
		Title:     "Quarterly morale check",
		Category:  models.CategoryMorale,
		Tone:      models.ToneDirective,
		Frequency: models.FrequencyMonthly,
		Status:    models.StatusActive,
		Automation: &models.AutomationConfig{
			AutoOptimize:      true,
			SmartScheduling:   true,
			AdaptiveTargeting: true,
			PerformanceThresholds: models.PerformanceThresholds{
				EngagementRate: 0.3,
				ResponseRate:   0.25,
			},
			OptimizationRules: models.OptimizationRules{
				FrequencyAdjustment: true,
				ToneAdjustment:      true,
				TargetingAdjustment: true,
				TimingAdjustment:    true,
			},
		},
	}
}

func lowSnapshot() *models.AnalyticsSnapshot {
	return &models.AnalyticsSnapshot{
		TotalRecipients:    100,
		ResponsesReceived:  10,
		AvgEngagementScore: 0.2,
	}
}

func TestEvaluateNoAutomationIsIdentity(t *testing.T) {
	c := automatedCampaign()
	c.Automation = nil

	got, hints := EvaluateAutomation(c, lowSnapshot())
	assert.Equal(t, c, got)
	assert.False(t, hints.UsePeakHour)
}

func TestEvaluateAutoOptimizeOffIsIdentity(t *testing.T) {
	c := automatedCampaign()
	c.Automation.AutoOptimize = false

	got, _ := EvaluateAutomation(c, lowSnapshot())
	assert.Equal(t, c, got)
}

func TestEvaluateMissingSnapshotIsNoop(t *testing.T) {
	c := automatedCampaign()

	got, hints := EvaluateAutomation(c, nil)
	assert.Equal(t, c, got)
	assert.False(t, hints.UsePeakHour)
}

func TestEvaluateHealthyCampaignUnchanged(t *testing.T) {
	c := automatedCampaign()
	snapshot := &models.AnalyticsSnapshot{
		TotalRecipients:    100,
		ResponsesReceived:  40, // 0.40 >= 0.25
		AvgEngagementScore: 0.5,
	}

	got, hints := EvaluateAutomation(c, snapshot)
	assert.Equal(t, c, got)
	assert.False(t, hints.UsePeakHour)
}

func TestEvaluateStepsFrequencyDenser(t *testing.T) {
	c := automatedCampaign()
	c.Automation.OptimizationRules = models.OptimizationRules{FrequencyAdjustment: true}

	got, _ := EvaluateAutomation(c, lowSnapshot())
	assert.Equal(t, models.FrequencyWeekly, got.Frequency)
	// Everything else untouched.
	assert.Equal(t, c.Tone, got.Tone)
	assert.Equal(t, c.Status, got.Status)
	assert.False(t, got.NeedsReResolve)

	got.Frequency = c.Frequency
	assert.Equal(t, c, got)
}

func TestEvaluateFrequencyLadderStops(t *testing.T) {
	c := automatedCampaign()
	c.Automation.OptimizationRules = models.OptimizationRules{FrequencyAdjustment: true}

	c.Frequency = models.FrequencyWeekly
	got, _ := EvaluateAutomation(c, lowSnapshot())
	assert.Equal(t, models.FrequencyDaily, got.Frequency)

	// Daily is the densest tier.
	got, _ = EvaluateAutomation(got, lowSnapshot())
	assert.Equal(t, models.FrequencyDaily, got.Frequency)

	// One-time campaigns are never stepped.
	c.Frequency = models.FrequencyOneTime
	got, _ = EvaluateAutomation(c, lowSnapshot())
	assert.Equal(t, models.FrequencyOneTime, got.Frequency)
}

func TestEvaluateShiftsToneTowardEmpathetic(t *testing.T) {
	c := automatedCampaign()
	c.Automation.OptimizationRules = models.OptimizationRules{ToneAdjustment: true}

	want := []models.CampaignTone{
		models.ToneCoaching,
		models.ToneMotivational,
		models.ToneFeedbackSeek,
		models.ToneSurvey,
		models.ToneEmpathetic,
		models.ToneEmpathetic, // already there, stays
	}
	for _, w := range want {
		c, _ = EvaluateAutomation(c, lowSnapshot())
		assert.Equal(t, w, c.Tone)
	}
}

func TestEvaluateTargetingRequiresAdaptive(t *testing.T) {
	c := automatedCampaign()
	c.Automation.OptimizationRules = models.OptimizationRules{TargetingAdjustment: true}

	c.Automation.AdaptiveTargeting = false
	got, _ := EvaluateAutomation(c, lowSnapshot())
	assert.False(t, got.NeedsReResolve)

	c.Automation.AdaptiveTargeting = true
	got, _ = EvaluateAutomation(c, lowSnapshot())
	assert.True(t, got.NeedsReResolve)
}

func TestEvaluateTimingRequiresSmartScheduling(t *testing.T) {
	c := automatedCampaign()
	c.Automation.OptimizationRules = models.OptimizationRules{TimingAdjustment: true}

	c.Automation.SmartScheduling = false
	got, hints := EvaluateAutomation(c, lowSnapshot())
	assert.False(t, hints.UsePeakHour)

	c.Automation.SmartScheduling = true
	got, hints = EvaluateAutomation(c, lowSnapshot())
	assert.True(t, hints.UsePeakHour)
	// Timing lever never changes campaign fields.
	assert.Equal(t, c, got)
}

func TestEvaluateZeroRecipientsCountsAsZeroResponseRate(t *testing.T) {
	c := automatedCampaign()
	c.Automation.OptimizationRules = models.OptimizationRules{FrequencyAdjustment: true}

	snapshot := &models.AnalyticsSnapshot{
		TotalRecipients:    0,
		ResponsesReceived:  0,
		AvgEngagementScore: 0.9, // engagement healthy, response rate 0 is below
	}
	got, _ := EvaluateAutomation(c, snapshot)
	assert.Equal(t, models.FrequencyWeekly, got.Frequency)
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	c := automatedCampaign()
	before := c

	_, _ = EvaluateAutomation(c, lowSnapshot())
	assert.Equal(t, before, c)
}
