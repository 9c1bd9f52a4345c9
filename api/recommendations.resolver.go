package api

import (
	"fmt"

	"finsight/internal/categories"
	"finsight/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const defaultRecommendationLimit = 5

type RecommendationsRequest struct {
	// SpendProfile maps canonical category names to monthly spend.
	// Either this or Transactions must be set; if both are present
	// the profile wins.
	SpendProfile map[string]decimal.Decimal `json:"spendProfile"`
	Transactions []struct {
		Merchant string          `json:"merchant"`
		Category string          `json:"category"`
		Amount   decimal.Decimal `json:"amount"`
	} `json:"transactions"`
	Limit *int `json:"limit"`
}

type RecommendationResponseItem struct {
	CandidateID          string          `json:"candidateID"`
	Name                 string          `json:"name"`
	MatchScore           int             `json:"matchScore"`
	EstimatedAnnualValue decimal.Decimal `json:"estimatedAnnualValue"`
	Justification        string          `json:"justification"`
}

type RecommendationsResponse struct {
	Recommendations []RecommendationResponseItem `json:"recommendations"`
	TopCategories   []TopCategoryResponseItem    `json:"topCategories"`
}

type TopCategoryResponseItem struct {
	Category     string          `json:"category"`
	MonthlySpend decimal.Decimal `json:"monthlySpend"`
}

func (m ApiHandler) recommendations(c *gin.Context) {
	var requestBody RecommendationsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	profile := domain.SpendProfile{}
	if len(requestBody.SpendProfile) > 0 {
		for category, amount := range requestBody.SpendProfile {
			if amount.IsNegative() {
				returnErrorJsonCode(fmt.Errorf("spend profile amount for %s cannot be negative", category), c, 400)
				return
			}
			profile[domain.Category(category)] = amount
		}
	} else {
		txns := make([]domain.Transaction, 0, len(requestBody.Transactions))
		for _, txn := range requestBody.Transactions {
			txns = append(txns, domain.Transaction{
				Merchant:    txn.Merchant,
				RawCategory: txn.Category,
				Amount:      txn.Amount,
			})
		}
		profile = categories.BuildSpendProfile(txns)
	}

	limit := defaultRecommendationLimit
	if requestBody.Limit != nil {
		limit = *requestBody.Limit
	}

	candidates, err := m.CatalogRepository.List()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to load catalog: %w", err), c)
		return
	}

	ranked := m.RecommendationService.Recommend(candidates, profile, limit)

	responseItems := make([]RecommendationResponseItem, 0, len(ranked))
	for _, scored := range ranked {
		responseItems = append(responseItems, RecommendationResponseItem{
			CandidateID:          scored.Candidate.CandidateID,
			Name:                 scored.Candidate.Name,
			MatchScore:           scored.MatchScore,
			EstimatedAnnualValue: scored.EstimatedAnnualValue,
			Justification:        scored.Justification,
		})
	}

	topCategories := []TopCategoryResponseItem{}
	for _, spend := range profile.TopCategories(3) {
		topCategories = append(topCategories, TopCategoryResponseItem{
			Category:     string(spend.Category),
			MonthlySpend: spend.Amount,
		})
	}

	c.JSON(200, RecommendationsResponse{
		Recommendations: responseItems,
		TopCategories:   topCategories,
	})
}
