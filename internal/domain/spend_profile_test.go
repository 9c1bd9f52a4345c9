package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_TopCategories(t *testing.T) {
	profile := SpendProfile{
		CategoryDining:    decimal.NewFromInt(600),
		CategoryTravel:    decimal.NewFromInt(300),
		CategoryGroceries: decimal.NewFromInt(300),
		CategoryGas:       decimal.NewFromInt(50),
	}

	t.Run("orders by amount, name breaks ties", func(t *testing.T) {
		top := profile.TopCategories(3)
		require.Len(t, top, 3)
		require.Equal(t, CategoryDining, top[0].Category)
		// Groceries and Travel tie at 300; name ascending wins
		require.Equal(t, CategoryGroceries, top[1].Category)
		require.Equal(t, CategoryTravel, top[2].Category)
	})

	t.Run("n larger than the profile returns everything", func(t *testing.T) {
		require.Len(t, profile.TopCategories(10), 4)
	})

	t.Run("empty profile returns nothing", func(t *testing.T) {
		require.Empty(t, SpendProfile{}.TopCategories(3))
	})
}

func Test_ScoredCandidateLess(t *testing.T) {
	a := ScoredCandidate{Candidate: Candidate{CandidateID: "a"}, MatchScore: 70, EstimatedAnnualValue: decimal.NewFromInt(100)}
	b := ScoredCandidate{Candidate: Candidate{CandidateID: "b"}, MatchScore: 70, EstimatedAnnualValue: decimal.NewFromInt(100)}
	c := ScoredCandidate{Candidate: Candidate{CandidateID: "c"}, MatchScore: 70, EstimatedAnnualValue: decimal.NewFromInt(200)}
	d := ScoredCandidate{Candidate: Candidate{CandidateID: "d"}, MatchScore: 90, EstimatedAnnualValue: decimal.Zero}

	require.True(t, d.Less(a), "higher score sorts first")
	require.True(t, c.Less(a), "higher value breaks score ties")
	require.True(t, a.Less(b), "id breaks full ties")
	require.False(t, b.Less(a))
}
