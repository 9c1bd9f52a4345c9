package domain

import (
	"github.com/shopspring/decimal"
)

// Candidate is a scoreable item from the product catalog - a card,
// merchant, or health dimension. Sourced from config and never
// mutated by the engine.
type Candidate struct {
	CandidateID string
	Name        string
	// RewardRates maps category -> reward percent, e.g. Dining -> 4
	// means 4% back on dining spend.
	RewardRates map[Category]decimal.Decimal
	AnnualFee   decimal.Decimal
	SignupBonus decimal.Decimal
}

// ScoredCandidate is a Candidate after one scoring pass. Fields are
// computed once and never mutated; a negative EstimatedAnnualValue is
// meaningful (net-negative product) and must not be clamped away.
type ScoredCandidate struct {
	Candidate            Candidate
	MatchScore           int
	EstimatedAnnualValue decimal.Decimal
	Justification        string
}

// Less defines the canonical recommendation ordering: match score
// descending, then estimated annual value descending, then candidate
// ID ascending so the full ordering is deterministic.
func (s ScoredCandidate) Less(other ScoredCandidate) bool {
	if s.MatchScore != other.MatchScore {
		return s.MatchScore > other.MatchScore
	}
	if !s.EstimatedAnnualValue.Equal(other.EstimatedAnnualValue) {
		return s.EstimatedAnnualValue.GreaterThan(other.EstimatedAnnualValue)
	}
	return s.Candidate.CandidateID < other.Candidate.CandidateID
}
