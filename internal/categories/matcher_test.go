package categories

import (
	"testing"

	"finsight/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Match(t *testing.T) {
	tests := []struct {
		merchant string
		rawLabel string
		want     domain.Category
	}{
		{"STARBUCKS #1234", "", domain.CategoryDining},
		{"Trader Joe's", "", domain.CategoryGroceries},
		{"DELTA AIR LINES", "", domain.CategoryTravel},
		{"Shell Oil 57442", "", domain.CategoryGas},
		{"NETFLIX.COM", "", domain.CategoryStreaming},
		{"CVS/PHARMACY", "", domain.CategoryHealth},
		// aggregator label wins over merchant keywords
		{"SQ *SOMETHING", "Food and Drink", domain.CategoryDining},
		{"ACME CORP PAYROLL", "rideshare", domain.CategoryTransit},
		// unmapped input always lands in Other, never errors
		{"TOTALLY UNKNOWN LLC", "", domain.CategoryOther},
		{"", "", domain.CategoryOther},
		{"", "mystery label", domain.CategoryOther},
	}

	for _, tc := range tests {
		got := Match(tc.merchant, tc.rawLabel)
		require.Equal(t, tc.want, got, "merchant=%q rawLabel=%q", tc.merchant, tc.rawLabel)
	}
}

func Test_BuildSpendProfile(t *testing.T) {
	txns := []domain.Transaction{
		{Merchant: "STARBUCKS", Amount: decimal.NewFromInt(25)},
		{Merchant: "Chipotle 100", Amount: decimal.NewFromInt(35)},
		{Merchant: "NETFLIX.COM", Amount: decimal.NewFromInt(15)},
		{Merchant: "Mystery Shop", Amount: decimal.NewFromInt(40)},
		// refunds don't reduce the profile
		{Merchant: "STARBUCKS", Amount: decimal.NewFromInt(-10)},
	}

	profile := BuildSpendProfile(txns)

	require.True(t, profile[domain.CategoryDining].Equal(decimal.NewFromInt(60)))
	require.True(t, profile[domain.CategoryStreaming].Equal(decimal.NewFromInt(15)))
	require.True(t, profile[domain.CategoryOther].Equal(decimal.NewFromInt(40)))
	require.Len(t, profile, 3)
}
