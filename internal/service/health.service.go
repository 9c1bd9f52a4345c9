package service

import (
	"math"

	"finsight/internal/domain"
)

type HealthService interface {
	Aggregate(components []domain.HealthComponent) domain.HealthScore
}

func NewHealthService() HealthService {
	return healthServiceHandler{}
}

type healthServiceHandler struct{}

// Aggregate folds component scores into one 0-100 composite:
// round(100 * sum(score) / sum(maxScore)). An empty component list or
// all-zero maxScores yields a zero score, not a division error.
func (h healthServiceHandler) Aggregate(components []domain.HealthComponent) domain.HealthScore {
	var earned, possible float64
	for _, component := range components {
		earned += component.Score
		possible += component.MaxScore
	}

	value := 0
	if possible > 0 {
		value = int(math.Round(100 * earned / possible))
	}
	if value > 100 {
		value = 100
	}
	if value < 0 {
		value = 0
	}

	return domain.HealthScore{
		Value:      value,
		Grade:      domain.LetterGrade(value),
		Tier:       domain.TierForValue(value),
		Components: components,
	}
}
