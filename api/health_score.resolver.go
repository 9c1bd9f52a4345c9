package api

import (
	"fmt"

	"finsight/internal/domain"

	"github.com/gin-gonic/gin"
)

type HealthScoreRequest struct {
	Components []struct {
		Name     string  `json:"name"`
		Score    float64 `json:"score"`
		MaxScore float64 `json:"maxScore"`
	} `json:"components"`
}

type HealthScoreResponse struct {
	Score      int                        `json:"score"`
	Grade      string                     `json:"grade"`
	Tier       string                     `json:"tier"`
	Components []HealthComponentBreakdown `json:"components"`
}

type HealthComponentBreakdown struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
	Tier     string  `json:"tier"`
}

func (m ApiHandler) healthScore(c *gin.Context) {
	var requestBody HealthScoreRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	components := make([]domain.HealthComponent, 0, len(requestBody.Components))
	for _, component := range requestBody.Components {
		if component.Score > component.MaxScore {
			returnErrorJsonCode(
				fmt.Errorf("component %s score %.2f exceeds max %.2f", component.Name, component.Score, component.MaxScore),
				c, 400,
			)
			return
		}
		components = append(components, domain.HealthComponent{
			Name:     component.Name,
			Score:    component.Score,
			MaxScore: component.MaxScore,
		})
	}

	healthScore := m.HealthService.Aggregate(components)

	breakdown := make([]HealthComponentBreakdown, 0, len(healthScore.Components))
	for _, component := range healthScore.Components {
		breakdown = append(breakdown, HealthComponentBreakdown{
			Name:     component.Name,
			Score:    component.Score,
			MaxScore: component.MaxScore,
			Tier:     string(component.Tier()),
		})
	}

	c.JSON(200, HealthScoreResponse{
		Score:      healthScore.Value,
		Grade:      healthScore.Grade,
		Tier:       string(healthScore.Tier),
		Components: breakdown,
	})
}
