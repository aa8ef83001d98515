package models

import "gorm.io/gorm"

// Migrate runs schema migration for all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Campaign{},
		&Worker{},
	)
}

// ApplyDefaults fills unset thresholds and optimization rules from
// DefaultAutomationConfig. Without this, automation enabled with a sparse
// payload would compare against all-zero floors and never adjust anything.
func (a *AutomationConfig) ApplyDefaults() {
	def := DefaultAutomationConfig()
	if a.PerformanceThresholds == (PerformanceThresholds{}) {
		a.PerformanceThresholds = def.PerformanceThresholds
	}
	if a.OptimizationRules == (OptimizationRules{}) {
		a.OptimizationRules = def.OptimizationRules
	}
}

// DefaultAutomationConfig returns the automation settings new campaigns get
// when automation is enabled without explicit thresholds.
func DefaultAutomationConfig() AutomationConfig {
	return AutomationConfig{
		AutoOptimize:      true,
		SmartScheduling:   true,
		AdaptiveTargeting: false,
		PerformanceThresholds: PerformanceThresholds{
			EngagementRate:    0.30,
			ResponseRate:      0.25,
			SatisfactionScore: 0.60,
		},
		OptimizationRules: OptimizationRules{
			FrequencyAdjustment: true,
			ToneAdjustment:      true,
			TargetingAdjustment: false,
			TimingAdjustment:    true,
		},
	}
}
