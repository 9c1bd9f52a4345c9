package calculator

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
)

const hoursPerDay = 24

type IntervalStatsResult struct {
	MedianDays float64
	MeanDays   float64
	StdevDays  float64
	Count      int
}

// CalculateIntervalStats computes cadence statistics over the gaps
// between consecutive occurrence dates. Median is used downstream for
// the next-date estimate because it resists one-off outliers (holiday
// shifts); stddev/mean feeds the confidence measure. Requires at
// least 2 dates, i.e. one interval.
func CalculateIntervalStats(dates []time.Time) (*IntervalStatsResult, error) {
	if len(dates) < 2 {
		return nil, fmt.Errorf("cannot calculate interval stats on < 2 dates")
	}

	intervals := make([]float64, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		intervals = append(intervals, dates[i].Sub(dates[i-1]).Hours()/hoursPerDay)
	}

	median, err := stats.Median(intervals)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate median interval: %w", err)
	}
	mean, err := stats.Mean(intervals)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean interval: %w", err)
	}
	// population stddev so a single interval yields 0 spread rather
	// than an error
	stdev, err := stats.StandardDeviationPopulation(intervals)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate interval stdev: %w", err)
	}

	return &IntervalStatsResult{
		MedianDays: median,
		MeanDays:   mean,
		StdevDays:  stdev,
		Count:      len(intervals),
	}, nil
}
