package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/logger"
	"github.com/MohammadCZeidan/Server-Homelife/routes"
	"github.com/MohammadCZeidan/Server-Homelife/services"
	"github.com/MohammadCZeidan/Server-Homelife/utils"
)

func main() {
	task := flag.String("task", "", "run a scheduled task instead of the server: expiry-alerts | meal-plan-draft")
	days := flag.Int("days", 3, "expiry-alerts: alert on items expiring within this many days")
	weekStart := flag.String("week-start", "", "meal-plan-draft: week start date (YYYY-MM-DD), defaults to next week")
	flag.Parse()

	logger.Init(os.Getenv("APP_DEBUG") == "true")
	defer logger.Sync()

	config.InitDB()

	if *task != "" {
		if err := runTask(*task, *days, *weekStart); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	r := routes.SetupRouter()
	r.Run(":" + config.GetEnv("PORT", "8080"))
}

// runTask dispatches the cron entry points. Both are run by n8n on a
// schedule, outside the server process.
func runTask(name string, days int, weekStart string) error {
	svc := services.NewTaskService(config.DB, services.NewAIService(config.DB), services.NewWebhookService())

	switch name {
	case "expiry-alerts":
		households, items, err := svc.SendExpiryAlerts(days)
		if err != nil {
			return fmt.Errorf("expiry alerts: %w", err)
		}
		fmt.Printf("alerted %d households about %d expiring items\n", households, items)
		return nil

	case "meal-plan-draft":
		start := utils.StartOfWeek(time.Now()).AddDate(0, 0, 7)
		if weekStart != "" {
			parsed, err := time.Parse("2006-01-02", weekStart)
			if err != nil {
				return fmt.Errorf("invalid week-start %q, want YYYY-MM-DD", weekStart)
			}
			start = parsed
		}
		drafts, err := svc.GenerateMealPlanDrafts(start)
		if err != nil {
			return fmt.Errorf("meal plan drafts: %w", err)
		}
		fmt.Printf("generated %d meal plan drafts\n", len(drafts))
		return nil

	default:
		return fmt.Errorf("unknown task %q, want expiry-alerts or meal-plan-draft", name)
	}
}
