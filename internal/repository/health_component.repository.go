package repository

import (
	"fmt"
	"os"

	"finsight/internal/domain"

	"github.com/gocarina/gocsv"
)

// HealthComponentRepository supplies the per-dimension health scores
// computed upstream (savings rate, debt load, budget adherence, ...).
type HealthComponentRepository interface {
	List() ([]domain.HealthComponent, error)
}

func NewHealthComponentRepository(path string) HealthComponentRepository {
	return healthComponentRepositoryHandler{path: path}
}

type healthComponentRepositoryHandler struct {
	path string
}

type healthComponentRow struct {
	Name     string  `csv:"name"`
	Score    float64 `csv:"score"`
	MaxScore float64 `csv:"max_score"`
}

func (h healthComponentRepositoryHandler) List() ([]domain.HealthComponent, error) {
	f, err := os.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open health components %s: %w", h.path, err)
	}
	defer f.Close()

	rows := []healthComponentRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse health components %s: %w", h.path, err)
	}

	components := make([]domain.HealthComponent, 0, len(rows))
	for _, row := range rows {
		if row.Score > row.MaxScore {
			return nil, fmt.Errorf("component %s score %.2f exceeds max %.2f", row.Name, row.Score, row.MaxScore)
		}
		components = append(components, domain.HealthComponent{
			Name:     row.Name,
			Score:    row.Score,
			MaxScore: row.MaxScore,
		})
	}

	return components, nil
}
