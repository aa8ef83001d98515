package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crewpulse/models"
)

func TestAggregateSnapshotsSumsAndMeans(t *testing.T) {
	snapshots := []*models.AnalyticsSnapshot{
		{TotalRecipients: 50, ResponsesReceived: 5, AvgEngagementScore: 0.4},
		{TotalRecipients: 30, ResponsesReceived: 9, AvgEngagementScore: 0.6},
	}

	agg := AggregateSnapshots(snapshots)
	assert.Equal(t, 80, agg.TotalRecipients)
	assert.Equal(t, 14, agg.ResponsesReceived)
	assert.InDelta(t, 0.5, agg.AvgEngagement, 1e-9)
	assert.Equal(t, 2, agg.SnapshotCount)
}

func TestAggregateSnapshotsMergesTraits(t *testing.T) {
	snapshots := []*models.AnalyticsSnapshot{
		{TraitChanges: map[string]float64{"optimism": 0.2, "stress": -0.1}},
		{TraitChanges: map[string]float64{"optimism": 0.3}},
		{TraitChanges: nil}, // missing traits contribute zero
	}

	agg := AggregateSnapshots(snapshots)
	assert.InDelta(t, 0.5, agg.TraitChanges["optimism"], 1e-9)
	assert.InDelta(t, -0.1, agg.TraitChanges["stress"], 1e-9)
}

func TestAggregateSnapshotsExcludesMissingFromMean(t *testing.T) {
	snapshots := []*models.AnalyticsSnapshot{
		{TotalRecipients: 10, ResponsesReceived: 2, AvgEngagementScore: 0.8},
		nil,
		nil,
	}

	agg := AggregateSnapshots(snapshots)
	assert.Equal(t, 3, agg.Campaigns)
	assert.Equal(t, 1, agg.SnapshotCount)
	assert.InDelta(t, 0.8, agg.AvgEngagement, 1e-9)
}

func TestAggregateEmptyInput(t *testing.T) {
	agg := AggregateSnapshots(nil)
	assert.Zero(t, agg.TotalRecipients)
	assert.Zero(t, agg.AvgEngagement)
	assert.Empty(t, agg.TraitChanges)
}

func TestMergeAggregatesMatchesDirectAggregation(t *testing.T) {
	a := []*models.AnalyticsSnapshot{
		{TotalRecipients: 50, ResponsesReceived: 5, AvgEngagementScore: 0.4,
			TraitChanges: map[string]float64{"optimism": 0.1}},
		{TotalRecipients: 20, ResponsesReceived: 4, AvgEngagementScore: 0.2},
	}
	b := []*models.AnalyticsSnapshot{
		{TotalRecipients: 30, ResponsesReceived: 9, AvgEngagementScore: 0.6,
			TraitChanges: map[string]float64{"optimism": 0.4, "stress": -0.2}},
	}

	direct := AggregateSnapshots(append(append([]*models.AnalyticsSnapshot{}, a...), b...))
	merged := MergeAggregates(AggregateSnapshots(a), AggregateSnapshots(b))

	assert.Equal(t, direct.TotalRecipients, merged.TotalRecipients)
	assert.Equal(t, direct.ResponsesReceived, merged.ResponsesReceived)
	assert.Equal(t, direct.SnapshotCount, merged.SnapshotCount)
	assert.InDelta(t, direct.AvgEngagement, merged.AvgEngagement, 1e-9)
	assert.InDelta(t, direct.TraitChanges["optimism"], merged.TraitChanges["optimism"], 1e-9)
	assert.InDelta(t, direct.TraitChanges["stress"], merged.TraitChanges["stress"], 1e-9)
}

func TestMergeAggregatesAssociative(t *testing.T) {
	parts := [][]*models.AnalyticsSnapshot{
		{{TotalRecipients: 10, ResponsesReceived: 1, AvgEngagementScore: 0.1}},
		{{TotalRecipients: 20, ResponsesReceived: 2, AvgEngagementScore: 0.5}},
		{{TotalRecipients: 30, ResponsesReceived: 3, AvgEngagementScore: 0.9}},
	}
	a := AggregateSnapshots(parts[0])
	b := AggregateSnapshots(parts[1])
	c := AggregateSnapshots(parts[2])

	left := MergeAggregates(MergeAggregates(a, b), c)
	right := MergeAggregates(a, MergeAggregates(b, c))

	assert.Equal(t, left.TotalRecipients, right.TotalRecipients)
	assert.Equal(t, left.ResponsesReceived, right.ResponsesReceived)
	assert.InDelta(t, left.AvgEngagement, right.AvgEngagement, 1e-9)
}
