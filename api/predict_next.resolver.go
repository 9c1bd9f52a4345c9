package api

import (
	"errors"
	"fmt"
	"time"

	"finsight/internal/domain"
	"finsight/internal/service"

	"github.com/gin-gonic/gin"
)

type PredictNextRequest struct {
	EventName string   `json:"eventName"`
	Dates     []string `json:"dates"`
	// Now anchors "has this date already passed" checks. Optional;
	// defaults to the server clock for interactive callers.
	Now *string `json:"now"`
}

type PredictNextResponse struct {
	EventName          string  `json:"eventName"`
	NextDate           string  `json:"nextDate"`
	Confidence         float64 `json:"confidence"`
	MedianIntervalDays float64 `json:"medianIntervalDays"`
}

func (m ApiHandler) predictNext(c *gin.Context) {
	var requestBody PredictNextRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	dates := make([]time.Time, 0, len(requestBody.Dates))
	for _, raw := range requestBody.Dates {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid date %q: %w", raw, err), c, 400)
			return
		}
		dates = append(dates, date)
	}

	now := time.Now().UTC()
	if requestBody.Now != nil {
		parsed, err := time.Parse("2006-01-02", *requestBody.Now)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid now %q: %w", *requestBody.Now, err), c, 400)
			return
		}
		now = parsed
	}

	event := domain.RecurringEvent{
		Name:  requestBody.EventName,
		Dates: dates,
	}

	prediction, err := m.ScheduleService.PredictNext(event, now)
	if errors.Is(err, service.ErrInsufficientHistory) {
		// distinct outcome, not a server fault - the caller renders
		// an "insufficient data" state
		c.JSON(422, gin.H{
			"insufficientHistory": true,
			"error":               err.Error(),
		})
		return
	}
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, PredictNextResponse{
		EventName:          prediction.EventName,
		NextDate:           prediction.NextDate.Format("2006-01-02"),
		Confidence:         prediction.Confidence,
		MedianIntervalDays: prediction.MedianIntervalDays,
	})
}
