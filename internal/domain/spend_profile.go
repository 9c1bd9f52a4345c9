package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a raw spend record as handed to us by the
// aggregation collaborator. Amount is positive for spend; refunds
// come through negative.
type Transaction struct {
	Merchant    string
	RawCategory string
	Amount      decimal.Decimal
	Date        time.Time
}

// SpendProfile maps canonical categories to aggregated monthly spend.
// Built once per scoring pass and treated as immutable afterwards.
type SpendProfile map[Category]decimal.Decimal

type CategorySpend struct {
	Category Category
	Amount   decimal.Decimal
}

// TopCategories returns the n highest-spend categories, largest first.
// Ties break on category name so repeated calls order identically.
func (p SpendProfile) TopCategories(n int) []CategorySpend {
	ranked := make([]CategorySpend, 0, len(p))
	for category, amount := range p {
		ranked = append(ranked, CategorySpend{Category: category, Amount: amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Amount.Equal(ranked[j].Amount) {
			return ranked[i].Amount.GreaterThan(ranked[j].Amount)
		}
		return ranked[i].Category < ranked[j].Category
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	return ranked[:n]
}

func (p SpendProfile) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range p {
		total = total.Add(amount)
	}
	return total
}
