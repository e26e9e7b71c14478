package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mobility-rental-backend/internal/clock"
	"mobility-rental-backend/internal/config"
	"mobility-rental-backend/internal/jobs"
	"mobility-rental-backend/internal/logger"
	"mobility-rental-backend/internal/repository"
	"mobility-rental-backend/internal/scheduler"
	"mobility-rental-backend/internal/service"
	"mobility-rental-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'prune-history', 'report-overdue', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Mobility Rental Cronjob Runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize Storage
	kv, closeStore, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err, "type", cfg.Storage.Type)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	state, err := service.OpenState(ctx, repository.NewJSONStateStore(kv, cfg.Catalogue()))
	if err != nil {
		logger.Error("Failed to load state", "error", err)
		log.Fatalf("Failed to load state: %v", err)
	}

	// Initialize Services
	rentalService := service.NewRentalService(
		state,
		clock.NewRealClock(cfg.Location()),
		service.UUIDGenerator{},
		service.RentalPolicy{
			StandardLoanMonths: cfg.Policy.StandardLoanMonths,
			PriorityLoanMonths: cfg.Policy.PriorityLoanMonths,
			RetentionWindow:    cfg.RetentionWindow(),
		},
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(rentalService, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "prune-history":
		jobRunner.PruneReturnedHistory()
	case "report-overdue":
		jobRunner.ReportOverdueRentals()
	case "all":
		jobRunner.RunAllJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - prune-history\n")
		fmt.Printf("  - report-overdue\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
