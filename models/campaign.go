package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// CampaignCategory classifies what a campaign is trying to achieve.
type CampaignCategory string

const (
	CategoryMorale   CampaignCategory = "morale"
	CategoryFeedback CampaignCategory = "feedback"
	CategorySales    CampaignCategory = "sales"
	CategoryPolicy   CampaignCategory = "policy"
	CategorySupport  CampaignCategory = "support"
	CategoryWellness CampaignCategory = "wellness"
)

func (c CampaignCategory) Valid() bool {
	switch c {
	case CategoryMorale, CategoryFeedback, CategorySales, CategoryPolicy, CategorySupport, CategoryWellness:
		return true
	}
	return false
}

// CampaignTone is the voice messages are generated in.
type CampaignTone string

const (
	ToneMotivational CampaignTone = "motivational"
	ToneSurvey       CampaignTone = "survey"
	ToneCoaching     CampaignTone = "coaching"
	ToneFeedbackSeek CampaignTone = "feedback-seeking"
	ToneEmpathetic   CampaignTone = "empathetic"
	ToneDirective    CampaignTone = "directive"
)

func (t CampaignTone) Valid() bool {
	switch t {
	case ToneMotivational, ToneSurvey, ToneCoaching, ToneFeedbackSeek, ToneEmpathetic, ToneDirective:
		return true
	}
	return false
}

// CampaignFrequency is the recurrence cadence.
type CampaignFrequency string

const (
	FrequencyOneTime CampaignFrequency = "one-time"
	FrequencyDaily   CampaignFrequency = "daily"
	FrequencyWeekly  CampaignFrequency = "weekly"
	FrequencyMonthly CampaignFrequency = "monthly"
	FrequencyCustom  CampaignFrequency = "custom"
)

func (f CampaignFrequency) Valid() bool {
	switch f {
	case FrequencyOneTime, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom:
		return true
	}
	return false
}

// CampaignStatus is the lifecycle state.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// FollowUpStrategy controls how non-responders are chased.
type FollowUpStrategy string

const (
	FollowUpNone       FollowUpStrategy = "none"
	FollowUpSingle     FollowUpStrategy = "1_followup"
	FollowUpContinuous FollowUpStrategy = "continuous"
	FollowUpAIPaced    FollowUpStrategy = "ai_paced"
)

func (f FollowUpStrategy) Valid() bool {
	switch f {
	case FollowUpNone, FollowUpSingle, FollowUpContinuous, FollowUpAIPaced:
		return true
	}
	return false
}

// FacetSelector names the workforce slices a campaign targets. Each list is
// a set of opaque IDs; order carries no meaning and duplicates are ignored.
type FacetSelector struct {
	Regions     []string `json:"regions"`
	Divisions   []string `json:"divisions"`
	Locations   []string `json:"locations"`
	Departments []string `json:"departments"`
	UserIDs     []string `json:"user_ids"`
	UserGroups  []string `json:"user_groups"`
	JobOrders   []string `json:"job_orders"`
}

// IsEmpty reports whether no facet list has any entries.
func (fs FacetSelector) IsEmpty() bool {
	return len(fs.Regions) == 0 &&
		len(fs.Divisions) == 0 &&
		len(fs.Locations) == 0 &&
		len(fs.Departments) == 0 &&
		len(fs.UserIDs) == 0 &&
		len(fs.UserGroups) == 0 &&
		len(fs.JobOrders) == 0
}

// PerformanceThresholds are the floors automation compares observed
// performance against. All values are rates in [0,1].
type PerformanceThresholds struct {
	EngagementRate    float64 `json:"engagement_rate"`
	ResponseRate      float64 `json:"response_rate"`
	SatisfactionScore float64 `json:"satisfaction_score"`
}

// OptimizationRules are the levers automation is permitted to pull.
type OptimizationRules struct {
	FrequencyAdjustment bool `json:"frequency_adjustment"`
	ToneAdjustment      bool `json:"tone_adjustment"`
	TargetingAdjustment bool `json:"targeting_adjustment"`
	TimingAdjustment    bool `json:"timing_adjustment"`
}

// AutomationConfig gates what the policy engine may touch on a campaign.
type AutomationConfig struct {
	AutoOptimize          bool                  `json:"auto_optimize"`
	SmartScheduling       bool                  `json:"smart_scheduling"`
	AdaptiveTargeting     bool                  `json:"adaptive_targeting"`
	PerformanceThresholds PerformanceThresholds `json:"performance_thresholds"`
	OptimizationRules     OptimizationRules     `json:"optimization_rules"`
}

// AnalyticsSnapshot is the latest observed result for a campaign, written
// back by the external sender after an occurrence completes.
type AnalyticsSnapshot struct {
	TotalRecipients    int                `json:"total_recipients"`
	ResponsesReceived  int                `json:"responses_received"`
	AvgEngagementScore float64            `json:"avg_engagement_score"`
	TraitChanges       map[string]float64 `json:"trait_changes"`
}

// ResponseRate is responses over recipients, zero when nothing was sent.
func (s AnalyticsSnapshot) ResponseRate() float64 {
	if s.TotalRecipients == 0 {
		return 0
	}
	return float64(s.ResponsesReceived) / float64(s.TotalRecipients)
}

// Campaign represents an engagement campaign
type Campaign struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`

	// Campaign details
	Title     string           `gorm:"not null" json:"title"`
	Objective string           `json:"objective"`
	Category  CampaignCategory `gorm:"not null" json:"category"`
	Tone      CampaignTone     `gorm:"not null" json:"tone"`

	// Targeting
	EntireWorkforce bool          `gorm:"default:false" json:"entire_workforce"`
	TargetAudience  FacetSelector `gorm:"type:jsonb;serializer:json" json:"target_audience"`
	// Set by the targeting lever; cleared once the audience is re-resolved.
	NeedsReResolve bool `gorm:"default:false" json:"needs_re_resolve"`

	// Scheduling
	Status        CampaignStatus    `gorm:"default:'draft'" json:"status"`
	StartDate     *time.Time        `json:"start_date"`
	Frequency     CampaignFrequency `gorm:"default:'one-time'" json:"frequency"`
	EndDate       *time.Time        `json:"end_date"`
	EndAfterCount *int              `json:"end_after_count"`

	FollowUpStrategy FollowUpStrategy `gorm:"default:'none'" json:"follow_up_strategy"`

	// Automation and results
	Automation *AutomationConfig  `gorm:"type:jsonb;serializer:json" json:"automation,omitempty"`
	Analytics  *AnalyticsSnapshot `gorm:"type:jsonb;serializer:json" json:"analytics,omitempty"`

	// Execution accounting (advanced only on confirmed sends)
	OccurrencesFired int        `gorm:"default:0" json:"occurrences_fired"`
	LastFiredAt      *time.Time `json:"last_fired_at"`
	CompletedAt      *time.Time `json:"completed_at"`
}

// EndConditionKind tags the campaign's end condition variant.
type EndConditionKind int

const (
	EndNone EndConditionKind = iota
	EndByDate
	EndByCount
)

// EndCondition is the single populated end-condition variant.
type EndCondition struct {
	Kind  EndConditionKind
	Date  time.Time
	Count int
}

// EndCondition returns the campaign's end condition as a tagged value.
// Validate guarantees at most one of the underlying columns is set.
func (c *Campaign) EndCondition() EndCondition {
	if c.EndDate != nil {
		return EndCondition{Kind: EndByDate, Date: *c.EndDate}
	}
	if c.EndAfterCount != nil {
		return EndCondition{Kind: EndByCount, Count: *c.EndAfterCount}
	}
	return EndCondition{Kind: EndNone}
}

// Validate checks the cross-field invariants a campaign must satisfy before
// it is accepted into the store. Violations are reported, never corrected.
func (c *Campaign) Validate() error {
	if !c.Category.Valid() {
		return fmt.Errorf("invalid category: %q", c.Category)
	}
	if !c.Tone.Valid() {
		return fmt.Errorf("invalid tone: %q", c.Tone)
	}
	if !c.Frequency.Valid() {
		return fmt.Errorf("invalid frequency: %q", c.Frequency)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("invalid status: %q", c.Status)
	}
	if !c.FollowUpStrategy.Valid() {
		return fmt.Errorf("invalid follow-up strategy: %q", c.FollowUpStrategy)
	}
	if c.EndDate != nil && c.EndAfterCount != nil {
		return fmt.Errorf("end_date and end_after_count are mutually exclusive")
	}
	if c.EndAfterCount != nil && *c.EndAfterCount < 1 {
		return fmt.Errorf("end_after_count must be positive")
	}
	if c.EntireWorkforce && !c.TargetAudience.IsEmpty() {
		return fmt.Errorf("entire_workforce campaigns must not list facet IDs")
	}
	if c.Automation != nil {
		if err := c.Automation.Validate(); err != nil {
			return err
		}
	}
	if c.Analytics != nil {
		if err := c.Analytics.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CanTransition reports whether moving to the given status is a legal
// lifecycle step. Completed is terminal.
func (c *Campaign) CanTransition(to CampaignStatus) bool {
	switch c.Status {
	case StatusDraft:
		return to == StatusActive
	case StatusActive:
		return to == StatusPaused || to == StatusCompleted
	case StatusPaused:
		return to == StatusActive
	case StatusCompleted:
		return false
	}
	return false
}

// Validate checks threshold ranges.
func (a *AutomationConfig) Validate() error {
	for name, v := range map[string]float64{
		"engagement_rate":    a.PerformanceThresholds.EngagementRate,
		"response_rate":      a.PerformanceThresholds.ResponseRate,
		"satisfaction_score": a.PerformanceThresholds.SatisfactionScore,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("threshold %s must be in [0,1], got %v", name, v)
		}
	}
	return nil
}

// Validate checks counter and score invariants.
func (s *AnalyticsSnapshot) Validate() error {
	if s.TotalRecipients < 0 || s.ResponsesReceived < 0 {
		return fmt.Errorf("recipient and response counts must be non-negative")
	}
	if s.ResponsesReceived > s.TotalRecipients {
		return fmt.Errorf("responses_received (%d) exceeds total_recipients (%d)",
			s.ResponsesReceived, s.TotalRecipients)
	}
	if s.AvgEngagementScore < 0 || s.AvgEngagementScore > 1 {
		return fmt.Errorf("avg_engagement_score must be in [0,1], got %v", s.AvgEngagementScore)
	}
	return nil
}

// TenantAggregate is the tenant-level rollup across campaign snapshots.
// Derived for reporting, never stored on a campaign.
type TenantAggregate struct {
	Campaigns         int                `json:"campaigns"`
	SnapshotCount     int                `json:"snapshot_count"`
	TotalRecipients   int                `json:"total_recipients"`
	ResponsesReceived int                `json:"responses_received"`
	AvgEngagement     float64            `json:"avg_engagement"`
	TraitChanges      map[string]float64 `json:"trait_changes"`
}
