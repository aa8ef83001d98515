package utils

import (
	"crewpulse/models"
)

// AggregateSnapshots folds per-campaign snapshots into a tenant rollup:
// recipient and response sums, the arithmetic mean of engagement over
// snapshots that exist, and per-trait delta sums. The merge is commutative
// and associative, so partial aggregates can themselves be combined.
func AggregateSnapshots(snapshots []*models.AnalyticsSnapshot) models.TenantAggregate {
	agg := models.TenantAggregate{
		TraitChanges: map[string]float64{},
	}

	var engagementSum float64
	for _, s := range snapshots {
		agg.Campaigns++
		if s == nil {
			// Campaigns without a snapshot count toward the campaign total
			// but are excluded from every numeric rollup.
			continue
		}
		agg.SnapshotCount++
		agg.TotalRecipients += s.TotalRecipients
		agg.ResponsesReceived += s.ResponsesReceived
		engagementSum += s.AvgEngagementScore
		for trait, delta := range s.TraitChanges {
			agg.TraitChanges[trait] += delta
		}
	}

	if agg.SnapshotCount > 0 {
		agg.AvgEngagement = engagementSum / float64(agg.SnapshotCount)
	}
	return agg
}

// MergeAggregates combines two partial rollups into one. The engagement
// mean is recomputed from the snapshot-weighted sums so that
// MergeAggregates(AggregateSnapshots(A), AggregateSnapshots(B)) equals
// AggregateSnapshots(A+B) for any partition.
func MergeAggregates(a, b models.TenantAggregate) models.TenantAggregate {
	out := models.TenantAggregate{
		Campaigns:         a.Campaigns + b.Campaigns,
		SnapshotCount:     a.SnapshotCount + b.SnapshotCount,
		TotalRecipients:   a.TotalRecipients + b.TotalRecipients,
		ResponsesReceived: a.ResponsesReceived + b.ResponsesReceived,
		TraitChanges:      map[string]float64{},
	}
	for trait, delta := range a.TraitChanges {
		out.TraitChanges[trait] += delta
	}
	for trait, delta := range b.TraitChanges {
		out.TraitChanges[trait] += delta
	}
	if out.SnapshotCount > 0 {
		weighted := a.AvgEngagement*float64(a.SnapshotCount) + b.AvgEngagement*float64(b.SnapshotCount)
		out.AvgEngagement = weighted / float64(out.SnapshotCount)
	}
	return out
}
