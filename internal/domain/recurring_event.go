package domain

import (
	"fmt"
	"time"
)

// RecurringEvent is a named series of historical occurrence dates for
// one recurring source - a payday, a bill due date. Input only; the
// engine never appends to it.
type RecurringEvent struct {
	Name  string
	Dates []time.Time
}

// Validate enforces the strictly-increasing invariant on the series.
func (e RecurringEvent) Validate() error {
	for i := 1; i < len(e.Dates); i++ {
		if !e.Dates[i].After(e.Dates[i-1]) {
			return fmt.Errorf(
				"recurring event %q dates must be strictly increasing: %s is not after %s",
				e.Name,
				e.Dates[i].Format(time.DateOnly),
				e.Dates[i-1].Format(time.DateOnly),
			)
		}
	}
	return nil
}

// Prediction is the scheduler's output for one recurring event.
// Confidence decreases as the historical cadence gets noisier.
type Prediction struct {
	EventName          string
	NextDate           time.Time
	Confidence         float64
	MedianIntervalDays float64
}
