package utils

import (
	"time"

	"crewpulse/models"
)

// NextFire computes when the campaign's next occurrence is due, or nil when
// the campaign is not schedulable (not active, no start date, or its end
// condition has been reached).
//
// Occurrences are anchored on StartDate: occurrence n fires at StartDate
// advanced by n calendar steps, regardless of how late earlier ticks ran,
// so delayed runs never accumulate drift.
func NextFire(c *models.Campaign) *time.Time {
	if c.Status != models.StatusActive || c.StartDate == nil {
		return nil
	}
	if HasEnded(c, c.OccurrencesFired) {
		return nil
	}

	next := occurrenceTime(*c.StartDate, c.Frequency, c.OccurrencesFired)
	if next == nil {
		return nil
	}
	if ec := c.EndCondition(); ec.Kind == models.EndByDate && next.After(ec.Date) {
		return nil
	}
	return next
}

// HasEnded reports whether the campaign's end condition is satisfied after
// the given number of confirmed occurrences.
func HasEnded(c *models.Campaign, occurrencesFired int) bool {
	if c.Frequency == models.FrequencyOneTime && occurrencesFired >= 1 {
		return true
	}

	switch ec := c.EndCondition(); ec.Kind {
	case models.EndByCount:
		return occurrencesFired >= ec.Count
	case models.EndByDate:
		if c.StartDate == nil {
			return false
		}
		next := occurrenceTime(*c.StartDate, c.Frequency, occurrencesFired)
		return next == nil || next.After(ec.Date)
	}
	return false
}

// occurrenceTime returns when the n-th occurrence (zero-based) fires.
func occurrenceTime(start time.Time, freq models.CampaignFrequency, n int) *time.Time {
	var t time.Time
	switch freq {
	case models.FrequencyOneTime:
		if n > 0 {
			return nil
		}
		t = start
	case models.FrequencyDaily:
		t = start.AddDate(0, 0, n)
	case models.FrequencyWeekly:
		t = start.AddDate(0, 0, 7*n)
	case models.FrequencyMonthly:
		t = start.AddDate(0, n, 0)
	case models.FrequencyCustom:
		// Custom cadence falls back to daily until per-campaign intervals
		// are supported.
		t = start.AddDate(0, 0, n)
	default:
		return nil
	}
	return &t
}

// Due reports whether the campaign's next occurrence is at or before now.
func Due(c *models.Campaign, now time.Time) bool {
	next := NextFire(c)
	return next != nil && !next.After(now)
}
