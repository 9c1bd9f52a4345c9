package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"finsight/cmd"
	"finsight/internal/categories"
	"finsight/internal/repository"
	"finsight/internal/service"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finsight",
		Short: "Score cards, predict paydays and grade financial health from CSV exports",
	}

	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newPredictCmd())
	rootCmd.AddCommand(newHealthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRecommendCmd() *cobra.Command {
	var (
		catalogPath      string
		transactionsPath string
		limit            int
	)

	c := &cobra.Command{
		Use:   "recommend",
		Short: "Rank catalog candidates against a spend profile built from transactions",
		RunE: func(_ *cobra.Command, _ []string) error {
			catalogRepository := repository.NewCatalogRepository(catalogPath)
			transactionRepository := repository.NewTransactionRepository(transactionsPath)

			candidates, err := catalogRepository.List()
			if err != nil {
				return err
			}
			txns, err := transactionRepository.List()
			if err != nil {
				return err
			}

			profile := categories.BuildSpendProfile(txns)
			recommendationService := service.NewRecommendationService(service.DefaultScoringPolicy())
			ranked := recommendationService.Recommend(candidates, profile, limit)

			return printJson(ranked)
		},
	}

	c.Flags().StringVar(&catalogPath, "catalog", cmd.CatalogPath(), "path to candidate catalog csv")
	c.Flags().StringVar(&transactionsPath, "transactions", cmd.TransactionsPath(), "path to transactions csv")
	c.Flags().IntVar(&limit, "limit", 5, "max recommendations to return")

	return c
}

func newPredictCmd() *cobra.Command {
	var (
		eventsPath string
		eventName  string
		nowStr     string
	)

	c := &cobra.Command{
		Use:   "predict",
		Short: "Predict the next occurrence of a recurring event",
		RunE: func(_ *cobra.Command, _ []string) error {
			eventRepository := repository.NewEventRepository(eventsPath)
			event, err := eventRepository.Get(eventName)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if nowStr != "" {
				now, err = time.Parse("2006-01-02", nowStr)
				if err != nil {
					return fmt.Errorf("invalid --now %q: %w", nowStr, err)
				}
			}

			scheduleService := service.NewScheduleService()
			prediction, err := scheduleService.PredictNext(*event, now)
			if err != nil {
				return err
			}

			return printJson(prediction)
		},
	}

	c.Flags().StringVar(&eventsPath, "events", cmd.EventsPath(), "path to recurring events csv")
	c.Flags().StringVar(&eventName, "event", "", "name of the event series to predict")
	c.Flags().StringVar(&nowStr, "now", "", "override the current date (YYYY-MM-DD)")
	c.MarkFlagRequired("event")

	return c
}

func newHealthCmd() *cobra.Command {
	var componentsPath string

	c := &cobra.Command{
		Use:   "health",
		Short: "Aggregate health components into a composite score and grade",
		RunE: func(_ *cobra.Command, _ []string) error {
			components, err := repository.NewHealthComponentRepository(componentsPath).List()
			if err != nil {
				return err
			}

			healthService := service.NewHealthService()
			return printJson(healthService.Aggregate(components))
		},
	}

	c.Flags().StringVar(&componentsPath, "components", "data/health_components.csv", "path to health components csv")

	return c
}

func printJson(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
