package service

import (
	"errors"
	"fmt"
	"time"

	"finsight/internal/calculator"
	"finsight/internal/domain"
)

// ErrInsufficientHistory marks a series too short to predict from.
// It is a distinct outcome, not a failure - callers branch on it with
// errors.Is and render an "insufficient data" state rather than a
// zero or default date.
var ErrInsufficientHistory = errors.New("insufficient history: need at least 2 occurrences")

const minOccurrences = 2

type ScheduleService interface {
	PredictNext(event domain.RecurringEvent, now time.Time) (*domain.Prediction, error)
}

func NewScheduleService() ScheduleService {
	return scheduleServiceHandler{}
}

type scheduleServiceHandler struct{}

// PredictNext estimates the next occurrence of a recurring event from
// its historical cadence. The clock is injected via now - nothing here
// reads global time, so identical inputs always give identical output.
func (h scheduleServiceHandler) PredictNext(event domain.RecurringEvent, now time.Time) (*domain.Prediction, error) {
	if len(event.Dates) < minOccurrences {
		return nil, fmt.Errorf("cannot predict %q: %w", event.Name, ErrInsufficientHistory)
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	intervalStats, err := calculator.CalculateIntervalStats(event.Dates)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate intervals for %q: %w", event.Name, err)
	}

	step := daysToDuration(intervalStats.MedianDays)
	if step <= 0 {
		return nil, fmt.Errorf("cannot predict %q: median interval is zero", event.Name)
	}
	next := event.Dates[len(event.Dates)-1].Add(step)
	// never hand back a date in the past; roll forward by whole
	// median intervals until we clear "now"
	for !next.After(now) {
		next = next.Add(step)
	}

	confidence := 1.0
	if intervalStats.MeanDays > 0 {
		confidence = 1.0 - intervalStats.StdevDays/intervalStats.MeanDays
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &domain.Prediction{
		EventName:          event.Name,
		NextDate:           next,
		Confidence:         confidence,
		MedianIntervalDays: intervalStats.MedianDays,
	}, nil
}

func daysToDuration(days float64) time.Duration {
	return time.Duration(days * float64(24) * float64(time.Hour))
}
