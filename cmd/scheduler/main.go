package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/premiafi/finance-terms/internal/config"
	"github.com/premiafi/finance-terms/internal/repository"
)

// Out-of-band maintenance for the FinanceTerms table. The API process does
// no background work; anything periodic lives here.
func main() {
	log.Println("Starting finance-terms maintenance scheduler...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	termRepo := repository.NewFinanceTermRepository(db)

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer schemaCancel()
	if err := termRepo.EnsureSchema(schemaCtx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds())

	setupCronJobs(c, cfg, termRepo)

	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	<-c.Stop().Done()
	log.Println("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, termRepo repository.FinanceTermRepository) {
	// Periodic snapshot of row counts per status. A spec that passed
	// config validation must register; refuse to run without the job.
	_, err := c.AddFunc(cfg.Maintenance.SnapshotSpec, func() {
		snapshotStatusCounts(termRepo)
	})
	if err != nil {
		log.Fatalf("Failed to schedule status snapshot job: %v", err)
	}

	// Table clear job, off by default. Test and staging tooling only.
	if cfg.Maintenance.ClearEnabled {
		_, err = c.AddFunc(cfg.Maintenance.ClearSpec, func() {
			clearFinanceTerms(termRepo)
		})
		if err != nil {
			log.Fatalf("Failed to schedule table clear job: %v", err)
		}
	}

	log.Println("Cron jobs scheduled successfully")
}

func snapshotStatusCounts(termRepo repository.FinanceTermRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := termRepo.CountByStatus(ctx)
	if err != nil {
		log.Printf("Status snapshot failed: %v", err)
		return
	}

	log.Printf("FinanceTerms snapshot: pending=%d agreed=%d", counts["pending"], counts["agreed"])
}

func clearFinanceTerms(termRepo repository.FinanceTermRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := termRepo.Clear(ctx); err != nil {
		log.Printf("Table clear failed: %v", err)
		return
	}

	log.Println("Cleared FinanceTerms table")
}
