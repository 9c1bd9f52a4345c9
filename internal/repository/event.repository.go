package repository

import (
	"fmt"
	"os"
	"sort"
	"time"

	"finsight/internal/domain"

	"github.com/gocarina/gocsv"
)

// EventRepository supplies historical recurring-event series (paydays,
// bill due dates) recorded by the income/bill-tracking collaborator.
type EventRepository interface {
	List() ([]domain.RecurringEvent, error)
	Get(name string) (*domain.RecurringEvent, error)
}

func NewEventRepository(path string) EventRepository {
	return eventRepositoryHandler{path: path}
}

type eventRepositoryHandler struct {
	path string
}

type eventRow struct {
	Name string `csv:"name"`
	Date string `csv:"date"`
}

func (h eventRepositoryHandler) List() ([]domain.RecurringEvent, error) {
	f, err := os.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open events %s: %w", h.path, err)
	}
	defer f.Close()

	rows := []eventRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse events %s: %w", h.path, err)
	}

	datesByName := map[string][]time.Time{}
	for _, row := range rows {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid event date %q for %s: %w", row.Date, row.Name, err)
		}
		datesByName[row.Name] = append(datesByName[row.Name], date)
	}

	names := make([]string, 0, len(datesByName))
	for name := range datesByName {
		names = append(names, name)
	}
	sort.Strings(names)

	events := make([]domain.RecurringEvent, 0, len(names))
	for _, name := range names {
		dates := datesByName[name]
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		event := domain.RecurringEvent{Name: name, Dates: dates}
		if err := event.Validate(); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func (h eventRepositoryHandler) Get(name string) (*domain.RecurringEvent, error) {
	events, err := h.List()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].Name == name {
			return &events[i], nil
		}
	}
	return nil, fmt.Errorf("recurring event %q not found", name)
}
