package service

import (
	"testing"
	"time"

	"finsight/internal/domain"
	"finsight/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_PredictNext(t *testing.T) {
	handler := NewScheduleService()

	t.Run("perfectly regular biweekly payday", func(t *testing.T) {
		event := domain.RecurringEvent{
			Name: "payroll",
			Dates: []time.Time{
				util.NewDate(2023, 1, 6),
				util.NewDate(2023, 1, 20),
				util.NewDate(2023, 2, 3),
				util.NewDate(2023, 2, 17),
				util.NewDate(2023, 3, 3),
			},
		}

		prediction, err := handler.PredictNext(event, util.NewDate(2023, 3, 10))
		require.NoError(t, err)

		require.Equal(t, util.NewDate(2023, 3, 17), prediction.NextDate)
		require.Equal(t, 1.0, prediction.Confidence)
		require.Equal(t, 14.0, prediction.MedianIntervalDays)
		require.Equal(t, "payroll", prediction.EventName)
	})

	t.Run("fewer than 2 dates is a distinct insufficient-history outcome", func(t *testing.T) {
		event := domain.RecurringEvent{
			Name:  "new gig",
			Dates: []time.Time{util.NewDate(2023, 1, 6)},
		}

		prediction, err := handler.PredictNext(event, util.NewDate(2023, 3, 10))
		require.ErrorIs(t, err, ErrInsufficientHistory)
		require.Nil(t, prediction)
	})

	t.Run("empty history is also insufficient", func(t *testing.T) {
		_, err := handler.PredictNext(domain.RecurringEvent{Name: "nothing"}, util.NewDate(2023, 3, 10))
		require.ErrorIs(t, err, ErrInsufficientHistory)
	})

	t.Run("stale history rolls forward past now", func(t *testing.T) {
		event := domain.RecurringEvent{
			Name: "payroll",
			Dates: []time.Time{
				util.NewDate(2023, 1, 6),
				util.NewDate(2023, 1, 20),
				util.NewDate(2023, 2, 3),
			},
		}

		// two median intervals after the last date have already passed
		prediction, err := handler.PredictNext(event, util.NewDate(2023, 3, 1))
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2023, 3, 3), prediction.NextDate)
		require.True(t, prediction.NextDate.After(util.NewDate(2023, 3, 1)))
	})

	t.Run("median resists a one-off outlier", func(t *testing.T) {
		event := domain.RecurringEvent{
			Name: "payroll",
			Dates: []time.Time{
				util.NewDate(2023, 1, 6),
				util.NewDate(2023, 1, 20),
				// holiday shift: 17 days instead of 14
				util.NewDate(2023, 2, 6),
				util.NewDate(2023, 2, 17),
				util.NewDate(2023, 3, 3),
			},
		}

		prediction, err := handler.PredictNext(event, util.NewDate(2023, 3, 4))
		require.NoError(t, err)

		// median of {14, 17, 11, 14} stays at 14
		require.Equal(t, 14.0, prediction.MedianIntervalDays)
		require.Equal(t, util.NewDate(2023, 3, 17), prediction.NextDate)
		require.Greater(t, prediction.Confidence, 0.0)
		require.Less(t, prediction.Confidence, 1.0)
	})

	t.Run("confidence shrinks as cadence gets noisier", func(t *testing.T) {
		steady := domain.RecurringEvent{
			Name: "steady",
			Dates: []time.Time{
				util.NewDate(2023, 1, 1),
				util.NewDate(2023, 1, 15),
				util.NewDate(2023, 1, 29),
				util.NewDate(2023, 2, 13), // one day late once
			},
		}
		erratic := domain.RecurringEvent{
			Name: "erratic",
			Dates: []time.Time{
				util.NewDate(2023, 1, 1),
				util.NewDate(2023, 1, 4),
				util.NewDate(2023, 2, 1),
				util.NewDate(2023, 2, 10),
			},
		}

		now := util.NewDate(2023, 2, 14)
		steadyPrediction, err := handler.PredictNext(steady, now)
		require.NoError(t, err)
		erraticPrediction, err := handler.PredictNext(erratic, now)
		require.NoError(t, err)

		require.Greater(t, steadyPrediction.Confidence, erraticPrediction.Confidence)
	})

	t.Run("out-of-order dates are rejected", func(t *testing.T) {
		event := domain.RecurringEvent{
			Name: "scrambled",
			Dates: []time.Time{
				util.NewDate(2023, 2, 3),
				util.NewDate(2023, 1, 20),
			},
		}

		_, err := handler.PredictNext(event, util.NewDate(2023, 3, 10))
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInsufficientHistory)
	})

	t.Run("identical inputs give identical predictions", func(t *testing.T) {
		event := domain.RecurringEvent{
			Name: "rent",
			Dates: []time.Time{
				util.NewDate(2023, 1, 1),
				util.NewDate(2023, 2, 1),
				util.NewDate(2023, 3, 1),
			},
		}
		now := util.NewDate(2023, 3, 15)

		first, err := handler.PredictNext(event, now)
		require.NoError(t, err)
		second, err := handler.PredictNext(event, now)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}
