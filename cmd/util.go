package cmd

import (
	"os"

	"finsight/api"
	"finsight/internal/logger"
	"finsight/internal/repository"
	"finsight/internal/service"
)

const (
	defaultCatalogPath      = "data/catalog.csv"
	defaultTransactionsPath = "data/transactions.csv"
	defaultEventsPath       = "data/events.csv"
)

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func CatalogPath() string {
	return envOrDefault("FINSIGHT_CATALOG_PATH", defaultCatalogPath)
}

func TransactionsPath() string {
	return envOrDefault("FINSIGHT_TRANSACTIONS_PATH", defaultTransactionsPath)
}

func EventsPath() string {
	return envOrDefault("FINSIGHT_EVENTS_PATH", defaultEventsPath)
}

func InitializeDependencies() (*api.ApiHandler, error) {
	log := logger.New()

	catalogRepository := repository.NewCatalogRepository(CatalogPath())
	eventRepository := repository.NewEventRepository(EventsPath())

	recommendationService := service.NewRecommendationService(service.DefaultScoringPolicy())
	scheduleService := service.NewScheduleService()
	healthService := service.NewHealthService()

	return &api.ApiHandler{
		Logger:                log,
		CatalogRepository:     catalogRepository,
		EventRepository:       eventRepository,
		RecommendationService: recommendationService,
		ScheduleService:       scheduleService,
		HealthService:         healthService,
	}, nil
}
