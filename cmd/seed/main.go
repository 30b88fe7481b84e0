package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/vivwell/api/config"
	"github.com/vivwell/api/pkg/attribution"
	"github.com/vivwell/api/pkg/cache"
	"github.com/vivwell/api/pkg/database"
	"github.com/vivwell/api/pkg/submissions"
	"github.com/vivwell/api/pkg/testdata"
)

// Seeds the dev database with fake leads pushed through the real submission
// pipeline, so attribution, scores and statuses look like production data.
func main() {
	count := flag.Int("count", 50, "number of leads to seed")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	cacheClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer cacheClient.Close()

	store := cache.NewStore(cacheClient)
	extractor := attribution.NewExtractor(store, cfg.AttributionWindow, nil)
	gate := submissions.NewGate(store, cfg.SubmissionWindow, nil)
	service := submissions.NewService(db.Ent, extractor, gate)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Printf("🌱 Seeding database with %d sample leads...", *count)

	inserted, err := testdata.SeedLeads(ctx, service, *count)
	if err != nil {
		log.Fatalf("Failed to seed leads: %v", err)
	}

	total, err := db.Ent.Lead.Query().Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count leads: %v", err)
	}

	log.Printf("🎉 Seeding complete! Inserted %d leads (total in database: %d)", inserted, total)
}
