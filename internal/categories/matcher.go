// Package categories folds raw merchant strings and aggregator labels
// into the canonical category set used by the scoring engine.
package categories

import (
	"strings"

	"finsight/internal/domain"
)

// keywordRules maps each canonical category to substrings matched
// against the lowercased merchant name. First match wins in the order
// of AllCategories, so more specific categories should not share
// keywords with broader ones.
var keywordRules = map[domain.Category][]string{
	domain.CategoryDining: {
		"restaurant", "cafe", "coffee", "pizza", "grill", "chipotle",
		"mcdonald", "starbucks", "doordash", "ubereats", "uber eats", "grubhub",
		"taco", "sushi", "bakery", "diner", "bar & ",
	},
	domain.CategoryGroceries: {
		"grocery", "market", "kroger", "safeway", "whole foods",
		"trader joe", "aldi", "costco", "wegmans", "publix", "food lion",
	},
	domain.CategoryTravel: {
		"airline", "airways", "hotel", "airbnb", "delta", "united",
		"marriott", "hilton", "expedia", "hertz", "flight",
	},
	domain.CategoryGas: {
		"gas", "fuel", "shell", "chevron", "exxon", "mobil", "bp ",
	},
	domain.CategoryTransit: {
		"uber", "lyft", "transit", "metro", "parking", "toll", "mta",
	},
	domain.CategoryEntertainment: {
		"cinema", "theater", "theatre", "ticketmaster", "concert",
		"steam", "playstation", "nintendo",
	},
	domain.CategoryShopping: {
		"amazon", "target", "walmart", "best buy", "nordstrom",
		"macys", "ebay", "etsy", "nike",
	},
	domain.CategoryStreaming: {
		"netflix", "spotify", "hulu", "disney+", "youtube premium",
		"max.com", "apple tv", "paramount",
	},
	domain.CategoryUtilities: {
		"electric", "water", "internet", "comcast", "verizon",
		"t-mobile", "at&t", "utility", "power co",
	},
	domain.CategoryHealth: {
		"pharmacy", "cvs", "walgreens", "clinic", "dental", "medical",
		"gym", "fitness",
	},
}

// labelAliases maps normalized aggregator category labels straight to
// canonical categories, for feeds that already categorize.
var labelAliases = map[string]domain.Category{
	"food and drink":   domain.CategoryDining,
	"restaurants":      domain.CategoryDining,
	"dining":           domain.CategoryDining,
	"groceries":        domain.CategoryGroceries,
	"supermarkets":     domain.CategoryGroceries,
	"travel":           domain.CategoryTravel,
	"airlines":         domain.CategoryTravel,
	"lodging":          domain.CategoryTravel,
	"gas":              domain.CategoryGas,
	"gas stations":     domain.CategoryGas,
	"transportation":   domain.CategoryTransit,
	"rideshare":        domain.CategoryTransit,
	"entertainment":    domain.CategoryEntertainment,
	"recreation":       domain.CategoryEntertainment,
	"shops":            domain.CategoryShopping,
	"shopping":         domain.CategoryShopping,
	"merchandise":      domain.CategoryShopping,
	"streaming":        domain.CategoryStreaming,
	"subscription":     domain.CategoryStreaming,
	"utilities":        domain.CategoryUtilities,
	"bills":            domain.CategoryUtilities,
	"healthcare":       domain.CategoryHealth,
	"medical":          domain.CategoryHealth,
	"health & fitness": domain.CategoryHealth,
}

// Match resolves a raw transaction to a canonical category. The raw
// label is consulted first since aggregator labels are cleaner than
// merchant strings; anything unmapped resolves to CategoryOther.
// Total function - no input is rejected.
func Match(merchant string, rawLabel string) domain.Category {
	if category, ok := labelAliases[normalize(rawLabel)]; ok {
		return category
	}

	m := normalize(merchant)
	if m != "" {
		for _, category := range domain.AllCategories() {
			for _, keyword := range keywordRules[category] {
				if strings.Contains(m, keyword) {
					return category
				}
			}
		}
	}

	return domain.CategoryOther
}

// BuildSpendProfile aggregates raw transactions into monthly spend by
// canonical category. Refunds (negative amounts) are skipped so a
// profile amount is never negative.
func BuildSpendProfile(txns []domain.Transaction) domain.SpendProfile {
	profile := domain.SpendProfile{}
	for _, txn := range txns {
		if txn.Amount.IsNegative() {
			continue
		}
		category := Match(txn.Merchant, txn.RawCategory)
		profile[category] = profile[category].Add(txn.Amount)
	}
	return profile
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
