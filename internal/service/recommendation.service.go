package service

import (
	"fmt"
	"sort"

	"finsight/internal/domain"

	"github.com/shopspring/decimal"
)

// ScoringPolicy holds the tunable scoring constants. The defaults are
// product policy, not derived values - change them here, not inline.
type ScoringPolicy struct {
	// BaseScore is the neutral prior every candidate starts from.
	BaseScore int
	// CategoryMatchBonus is added once per top spend category the
	// candidate rewards.
	CategoryMatchBonus int
	// TopCategoryCount is how many of the profile's highest-spend
	// categories participate in matching.
	TopCategoryCount int
	// NoFeeBonus is added when the candidate carries no fixed cost.
	NoFeeBonus int
}

func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		BaseScore:          50,
		CategoryMatchBonus: 10,
		TopCategoryCount:   3,
		NoFeeBonus:         5,
	}
}

type RecommendationService interface {
	Score(candidate domain.Candidate, profile domain.SpendProfile) domain.ScoredCandidate
	Rank(scored []domain.ScoredCandidate, limit int) []domain.ScoredCandidate
	Recommend(candidates []domain.Candidate, profile domain.SpendProfile, limit int) []domain.ScoredCandidate
}

func NewRecommendationService(policy ScoringPolicy) RecommendationService {
	return recommendationServiceHandler{
		Policy: policy,
	}
}

type recommendationServiceHandler struct {
	Policy ScoringPolicy
}

var (
	monthsPerYear = decimal.NewFromInt(12)
	oneHundred    = decimal.NewFromInt(100)
)

// Score rates one candidate against the profile. Total function: an
// empty profile or a candidate with no overlapping categories still
// produces a well-formed result, just with zero match contributions.
func (h recommendationServiceHandler) Score(candidate domain.Candidate, profile domain.SpendProfile) domain.ScoredCandidate {
	topCategories := profile.TopCategories(h.Policy.TopCategoryCount)

	score := h.Policy.BaseScore
	for _, spend := range topCategories {
		if _, ok := candidate.RewardRates[spend.Category]; ok {
			score += h.Policy.CategoryMatchBonus
		}
	}
	if candidate.AnnualFee.IsZero() {
		score += h.Policy.NoFeeBonus
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	// Annual value projects the single highest-spend category at the
	// candidate's rate for it, plus signup bonus, minus the fee. A
	// negative result is preserved - it flags a net-negative product.
	annualValue := candidate.SignupBonus.Sub(candidate.AnnualFee)
	if len(topCategories) > 0 {
		topSpend := topCategories[0]
		if rate, ok := candidate.RewardRates[topSpend.Category]; ok {
			annualValue = annualValue.Add(
				topSpend.Amount.Mul(rate).Div(oneHundred).Mul(monthsPerYear),
			)
		}
	}

	return domain.ScoredCandidate{
		Candidate:            candidate,
		MatchScore:           score,
		EstimatedAnnualValue: annualValue.Round(2),
		Justification:        h.justification(candidate, topCategories),
	}
}

// justification names the highest-spend category the candidate
// rewards, with its monthly amount, so the presentation layer can
// explain the pick.
func (h recommendationServiceHandler) justification(candidate domain.Candidate, topCategories []domain.CategorySpend) string {
	for _, spend := range topCategories {
		rate, ok := candidate.RewardRates[spend.Category]
		if !ok {
			continue
		}
		return fmt.Sprintf(
			"Earns %s%% back on %s, where you spend $%s/mo",
			rate.String(),
			spend.Category,
			spend.Amount.StringFixed(2),
		)
	}
	if candidate.AnnualFee.IsZero() {
		return "No annual fee, but no bonus categories match your top spending"
	}
	return "No bonus categories match your top spending"
}

// Rank orders scored candidates by match score descending, breaking
// ties on estimated annual value then candidate ID, dedupes by ID and
// truncates to limit. The input slice is left untouched.
func (h recommendationServiceHandler) Rank(scored []domain.ScoredCandidate, limit int) []domain.ScoredCandidate {
	ranked := make([]domain.ScoredCandidate, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Less(ranked[j])
	})

	seen := map[string]bool{}
	deduped := make([]domain.ScoredCandidate, 0, len(ranked))
	for _, candidate := range ranked {
		if seen[candidate.Candidate.CandidateID] {
			continue
		}
		seen[candidate.Candidate.CandidateID] = true
		deduped = append(deduped, candidate)
	}

	if limit < 0 {
		limit = 0
	}
	if limit > len(deduped) {
		limit = len(deduped)
	}
	return deduped[:limit]
}

// Recommend is the full pipeline: score everything, rank, truncate.
func (h recommendationServiceHandler) Recommend(candidates []domain.Candidate, profile domain.SpendProfile, limit int) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, h.Score(candidate, profile))
	}
	return h.Rank(scored, limit)
}
