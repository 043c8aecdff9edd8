package attainment

import "github.com/shopspring/decimal"

// Config carries the policy constants used across the attainment pipeline.
// Defaults match the accreditation guidelines the department works with;
// passing a Config in keeps policy changes out of the calculation code.
type Config struct {
	// DefaultTarget is used when an outcome has no target of its own.
	DefaultTarget decimal.Decimal

	// WeightTolerance is the allowed deviation from 100 for a weight set sum.
	WeightTolerance decimal.Decimal

	// HighPriorityBelow marks an outcome as high priority when its
	// attainment falls below this value.
	HighPriorityBelow decimal.Decimal

	// Difficulty cutoffs for the question-level average attainment.
	DifficultyEasyMin   decimal.Decimal
	DifficultyMediumMin decimal.Decimal

	// StrengthMin and ImprovementBelow classify individual questions as
	// strength or improvement areas.
	StrengthMin      decimal.Decimal
	ImprovementBelow decimal.Decimal

	// Dependency ratio cutoffs for a PO's reliance on its top COs.
	DependencyHighAbove   decimal.Decimal
	DependencyMediumAbove decimal.Decimal

	// Indirect blend weights and the assumed score for survey question
	// types that have no numeric rating.
	SurveyWeight      decimal.Decimal
	ExitExamWeight    decimal.Decimal
	NonRatingEstimate decimal.Decimal
	MaxSurveyRating   decimal.Decimal
}

// DefaultConfig returns the standard policy constants.
func DefaultConfig() Config {
	return Config{
		DefaultTarget:         decimal.NewFromInt(70),
		WeightTolerance:       decimal.NewFromFloat(0.01),
		HighPriorityBelow:     decimal.NewFromInt(50),
		DifficultyEasyMin:     decimal.NewFromInt(80),
		DifficultyMediumMin:   decimal.NewFromInt(60),
		StrengthMin:           decimal.NewFromInt(80),
		ImprovementBelow:      decimal.NewFromInt(60),
		DependencyHighAbove:   decimal.NewFromFloat(0.8),
		DependencyMediumAbove: decimal.NewFromFloat(0.6),
		SurveyWeight:          decimal.NewFromFloat(0.6),
		ExitExamWeight:        decimal.NewFromFloat(0.4),
		NonRatingEstimate:     decimal.NewFromInt(70),
		MaxSurveyRating:       decimal.NewFromInt(5),
	}
}
