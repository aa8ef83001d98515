package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCampaign() Campaign {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return Campaign{
		Title:            "Wellness pulse",
		Category:         CategoryWellness,
		Tone:             ToneEmpathetic,
		Frequency:        FrequencyWeekly,
		Status:           StatusDraft,
		FollowUpStrategy: FollowUpNone,
		StartDate:        &start,
	}
}

func TestValidateAcceptsWellFormedCampaign(t *testing.T) {
	c := validCampaign()
	require.NoError(t, c.Validate())
}

func TestValidateRejectsUnknownEnums(t *testing.T) {
	c := validCampaign()
	c.Category = "party"
	assert.Error(t, c.Validate())

	c = validCampaign()
	c.Tone = "sarcastic"
	assert.Error(t, c.Validate())

	c = validCampaign()
	c.Frequency = "hourly"
	assert.Error(t, c.Validate())

	c = validCampaign()
	c.FollowUpStrategy = "nag"
	assert.Error(t, c.Validate())
}

func TestValidateRejectsBothEndVariants(t *testing.T) {
	c := validCampaign()
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	count := 3
	c.EndDate = &end
	c.EndAfterCount = &count
	assert.Error(t, c.Validate())
}

func TestValidateRejectsNonPositiveEndCount(t *testing.T) {
	c := validCampaign()
	count := 0
	c.EndAfterCount = &count
	assert.Error(t, c.Validate())
}

func TestValidateRejectsWorkforceWithFacets(t *testing.T) {
	c := validCampaign()
	c.EntireWorkforce = true
	c.TargetAudience.Departments = []string{"sales"}
	assert.Error(t, c.Validate())

	c.TargetAudience = FacetSelector{}
	assert.NoError(t, c.Validate())
}

func TestValidateRejectsOutOfRangeThresholds(t *testing.T) {
	c := validCampaign()
	c.Automation = &AutomationConfig{
		PerformanceThresholds: PerformanceThresholds{EngagementRate: 1.2},
	}
	assert.Error(t, c.Validate())
}

func TestSnapshotValidate(t *testing.T) {
	s := AnalyticsSnapshot{TotalRecipients: 10, ResponsesReceived: 11, AvgEngagementScore: 0.5}
	assert.Error(t, s.Validate())

	s = AnalyticsSnapshot{TotalRecipients: 10, ResponsesReceived: 5, AvgEngagementScore: 1.5}
	assert.Error(t, s.Validate())

	s = AnalyticsSnapshot{TotalRecipients: 10, ResponsesReceived: 5, AvgEngagementScore: 0.5}
	assert.NoError(t, s.Validate())
}

func TestResponseRateZeroRecipients(t *testing.T) {
	s := AnalyticsSnapshot{}
	assert.Zero(t, s.ResponseRate())
}

func TestEndConditionTagging(t *testing.T) {
	c := validCampaign()
	assert.Equal(t, EndNone, c.EndCondition().Kind)

	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c.EndDate = &end
	ec := c.EndCondition()
	assert.Equal(t, EndByDate, ec.Kind)
	assert.True(t, ec.Date.Equal(end))

	c.EndDate = nil
	count := 4
	c.EndAfterCount = &count
	ec = c.EndCondition()
	assert.Equal(t, EndByCount, ec.Kind)
	assert.Equal(t, 4, ec.Count)
}

func TestStatusTransitions(t *testing.T) {
	c := validCampaign()

	assert.True(t, c.CanTransition(StatusActive))
	assert.False(t, c.CanTransition(StatusPaused))
	assert.False(t, c.CanTransition(StatusCompleted))

	c.Status = StatusActive
	assert.True(t, c.CanTransition(StatusPaused))
	assert.True(t, c.CanTransition(StatusCompleted))
	assert.False(t, c.CanTransition(StatusDraft))

	c.Status = StatusPaused
	assert.True(t, c.CanTransition(StatusActive))
	assert.False(t, c.CanTransition(StatusCompleted))

	c.Status = StatusCompleted
	assert.False(t, c.CanTransition(StatusActive))
	assert.False(t, c.CanTransition(StatusPaused))
}

func TestFacetSelectorIsEmpty(t *testing.T) {
	assert.True(t, FacetSelector{}.IsEmpty())
	assert.False(t, FacetSelector{JobOrders: []string{"jo-1"}}.IsEmpty())
	assert.False(t, FacetSelector{UserIDs: []string{"w1"}}.IsEmpty())
}

func TestAutomationApplyDefaults(t *testing.T) {
	a := AutomationConfig{AutoOptimize: true}
	a.ApplyDefaults()

	def := DefaultAutomationConfig()
	assert.Equal(t, def.PerformanceThresholds, a.PerformanceThresholds)
	assert.Equal(t, def.OptimizationRules, a.OptimizationRules)
	// Thresholds are non-zero, so the engine actually has floors to cross.
	assert.Greater(t, a.PerformanceThresholds.EngagementRate, 0.0)
}

func TestAutomationApplyDefaultsKeepsExplicitSettings(t *testing.T) {
	a := AutomationConfig{
		AutoOptimize:          true,
		PerformanceThresholds: PerformanceThresholds{EngagementRate: 0.9, ResponseRate: 0.8, SatisfactionScore: 0.7},
		OptimizationRules:     OptimizationRules{ToneAdjustment: true},
	}
	a.ApplyDefaults()

	assert.Equal(t, 0.9, a.PerformanceThresholds.EngagementRate)
	assert.True(t, a.OptimizationRules.ToneAdjustment)
	assert.False(t, a.OptimizationRules.FrequencyAdjustment)
}
