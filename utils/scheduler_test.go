package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewpulse/models"
)

func activeCampaign(freq models.CampaignFrequency, start time.Time) *models.Campaign {
	return &models.Campaign{
		Status:    models.StatusActive,
		Frequency: freq,
		StartDate: &start,
	}
}

func TestNextFireOneTime(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	c := activeCampaign(models.FrequencyOneTime, start)

	next := NextFire(c)
	require.NotNil(t, next)
	assert.True(t, next.Equal(start))

	assert.False(t, HasEnded(c, 0))

	c.OccurrencesFired = 1
	assert.True(t, HasEnded(c, 1))
	assert.Nil(t, NextFire(c))
}

func TestNextFireWeeklyNoDrift(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	c := activeCampaign(models.FrequencyWeekly, start)

	// However late each tick runs, occurrence n stays anchored at
	// start + 7n days.
	for n := 0; n < 5; n++ {
		c.OccurrencesFired = n
		next := NextFire(c)
		require.NotNil(t, next)
		assert.True(t, next.Equal(start.AddDate(0, 0, 7*n)), "occurrence %d", n)
	}
}

func TestNextFireMonthlySequence(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	c := activeCampaign(models.FrequencyMonthly, start)

	want := []time.Time{
		time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
	}
	for i, w := range want {
		c.OccurrencesFired = i + 1
		next := NextFire(c)
		require.NotNil(t, next)
		assert.True(t, next.Equal(w), "tick %d: got %s", i, next)
	}
}

func TestCustomFrequencyFallsBackToDaily(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := activeCampaign(models.FrequencyCustom, start)
	c.OccurrencesFired = 3

	next := NextFire(c)
	require.NotNil(t, next)
	assert.True(t, next.Equal(start.AddDate(0, 0, 3)))
}

func TestHasEndedByCount(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := activeCampaign(models.FrequencyDaily, start)
	count := 2
	c.EndAfterCount = &count

	assert.False(t, HasEnded(c, 0))
	assert.False(t, HasEnded(c, 1))
	assert.True(t, HasEnded(c, 2))
	assert.True(t, HasEnded(c, 3))

	c.OccurrencesFired = 2
	assert.Nil(t, NextFire(c))
}

func TestHasEndedByDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	c := activeCampaign(models.FrequencyWeekly, start)
	c.EndDate = &end

	// Occurrences at Jan 1 and Jan 8 fit; Jan 15 exceeds the end date.
	assert.False(t, HasEnded(c, 0))
	assert.False(t, HasEnded(c, 1))
	assert.True(t, HasEnded(c, 2))
}

func TestHasEndedOneTimePastEndDate(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := activeCampaign(models.FrequencyOneTime, start)
	c.EndDate = &end

	// The single occurrence lands after the end date, so the campaign is
	// over without ever firing instead of being rescanned forever.
	assert.Nil(t, NextFire(c))
	assert.True(t, HasEnded(c, 0))
}

func TestUnboundedNeverEnds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := activeCampaign(models.FrequencyDaily, start)

	assert.False(t, HasEnded(c, 10000))
}

func TestNonActiveNeverSchedulable(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, status := range []models.CampaignStatus{models.StatusDraft, models.StatusPaused, models.StatusCompleted} {
		c := activeCampaign(models.FrequencyDaily, start)
		c.Status = status
		assert.Nil(t, NextFire(c), "status %s", status)
	}
}

func TestDue(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	c := activeCampaign(models.FrequencyDaily, start)

	assert.False(t, Due(c, start.Add(-time.Minute)))
	assert.True(t, Due(c, start))
	assert.True(t, Due(c, start.Add(3*time.Hour)))
}
