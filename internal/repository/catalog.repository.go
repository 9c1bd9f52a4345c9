package repository

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"finsight/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// CatalogRepository serves the candidate catalog (cards, merchants).
// The catalog is config, not state - the engine only ever reads it.
type CatalogRepository interface {
	List() ([]domain.Candidate, error)
	Get(candidateID string) (*domain.Candidate, error)
}

func NewCatalogRepository(path string) CatalogRepository {
	return &catalogRepositoryHandler{
		path:      path,
		readMutex: &sync.RWMutex{},
	}
}

type catalogRepositoryHandler struct {
	path      string
	cache     []domain.Candidate
	readMutex *sync.RWMutex
}

type candidateRow struct {
	CandidateID string          `csv:"candidate_id"`
	Name        string          `csv:"name"`
	AnnualFee   decimal.Decimal `csv:"annual_fee"`
	SignupBonus decimal.Decimal `csv:"signup_bonus"`
	// RewardRates holds "Category:rate" pairs joined by "|",
	// e.g. "Dining:4|Travel:2".
	RewardRates string `csv:"reward_rates"`
}

func (h *catalogRepositoryHandler) List() ([]domain.Candidate, error) {
	h.readMutex.RLock()
	cached := h.cache
	h.readMutex.RUnlock()
	if cached != nil {
		return cached, nil
	}

	f, err := os.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", h.path, err)
	}
	defer f.Close()

	rows := []candidateRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", h.path, err)
	}

	candidates := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		rates, err := parseRewardRates(row.RewardRates)
		if err != nil {
			return nil, fmt.Errorf("invalid reward rates for %s: %w", row.CandidateID, err)
		}
		candidates = append(candidates, domain.Candidate{
			CandidateID: row.CandidateID,
			Name:        row.Name,
			RewardRates: rates,
			AnnualFee:   row.AnnualFee,
			SignupBonus: row.SignupBonus,
		})
	}

	h.readMutex.Lock()
	h.cache = candidates
	h.readMutex.Unlock()

	return candidates, nil
}

func (h *catalogRepositoryHandler) Get(candidateID string) (*domain.Candidate, error) {
	candidates, err := h.List()
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].CandidateID == candidateID {
			return &candidates[i], nil
		}
	}
	return nil, fmt.Errorf("candidate %s not found in catalog", candidateID)
}

func parseRewardRates(raw string) (map[domain.Category]decimal.Decimal, error) {
	rates := map[domain.Category]decimal.Decimal{}
	if strings.TrimSpace(raw) == "" {
		return rates, nil
	}
	for _, pair := range strings.Split(raw, "|") {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed pair %q", pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("malformed rate in pair %q: %w", pair, err)
		}
		rates[domain.Category(strings.TrimSpace(parts[0]))] = rate
	}
	return rates, nil
}
