package domain

import "math"

// StatusTier buckets a component (or composite) by how much of its
// possible score it earned. Bands are inclusive on the lower bound
// and cover the whole 0-100 range with no gaps.
type StatusTier string

const (
	TierExcellent StatusTier = "excellent"
	TierGood      StatusTier = "good"
	TierFair      StatusTier = "fair"
	TierNeedsWork StatusTier = "needs_work"

	tierExcellentMin = 80
	tierGoodMin      = 60
	tierFairMin      = 40
)

// TierForValue maps a 0-100 value to its status tier. 80 is the first
// excellent value, 79 the last good-or-below one.
func TierForValue(value int) StatusTier {
	switch {
	case value >= tierExcellentMin:
		return TierExcellent
	case value >= tierGoodMin:
		return TierGood
	case value >= tierFairMin:
		return TierFair
	default:
		return TierNeedsWork
	}
}

// LetterGrade is the presentation-facing grade for a composite score,
// one letter per status tier.
func LetterGrade(value int) string {
	switch TierForValue(value) {
	case TierExcellent:
		return "A"
	case TierGood:
		return "B"
	case TierFair:
		return "C"
	default:
		return "D"
	}
}

// HealthComponent is one weighted dimension of financial health
// (savings rate, debt load, budget adherence, ...). Score must not
// exceed MaxScore.
type HealthComponent struct {
	Name     string
	Score    float64
	MaxScore float64
}

// Tier rates the component on its own score/maxScore ratio, scaled
// to the same 0-100 bands the composite uses.
func (c HealthComponent) Tier() StatusTier {
	if c.MaxScore <= 0 {
		return TierNeedsWork
	}
	return TierForValue(int(math.Round(100 * c.Score / c.MaxScore)))
}

// HealthScore is the composite over all components.
type HealthScore struct {
	Value      int
	Grade      string
	Tier       StatusTier
	Components []HealthComponent
}
