package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vivwell/api/ent"
	entlead "github.com/vivwell/api/ent/lead"
	"github.com/vivwell/api/pkg/notify"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron   *cron.Cron
	db     *ent.Client
	chats  []notify.ChatClient
	logger *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, chats []notify.ChatClient, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:   cron.New(),
		db:     db,
		chats:  chats,
		logger: logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 8 AM: post the previous day's lead digest to sales chat
	_, err := cm.cron.AddFunc("0 8 * * *", func() {
		cm.logger.Println("🕐 Running daily lead digest job...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := cm.runDailyDigest(ctx); err != nil {
			cm.logger.Printf("❌ Daily digest failed: %v", err)
			return
		}

		cm.logger.Println("✅ Daily lead digest job completed")
	})
	if err != nil {
		return err
	}

	// Daily at 9 AM: nag about leads sitting in "new" for over 48 hours
	_, err = cm.cron.AddFunc("0 9 * * *", func() {
		cm.logger.Println("🕐 Running stale lead check...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := cm.runStaleLeadCheck(ctx); err != nil {
			cm.logger.Printf("❌ Stale lead check failed: %v", err)
			return
		}

		cm.logger.Println("✅ Stale lead check completed")
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured")
	return nil
}

func (cm *CronManager) runDailyDigest(ctx context.Context) error {
	since := time.Now().Add(-24 * time.Hour)

	leads, err := cm.db.Lead.Query().
		Where(entlead.CreatedAtGTE(since)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query leads: %w", err)
	}

	if len(leads) == 0 {
		cm.broadcast(ctx, "📊 Daily digest: no new leads in the last 24 hours.")
		return nil
	}

	var totalScore, hotCount int
	var totalValue float64
	sources := make(map[string]int)
	for _, l := range leads {
		totalScore += l.LeadScore
		totalValue += l.ConversionValue
		if l.LeadScore >= 60 {
			hotCount++
		}
		src := l.UtmSource
		if src == "" {
			src = "direct"
		}
		sources[src]++
	}

	topSource := "direct"
	topCount := 0
	for src, n := range sources {
		if n > topCount {
			topSource, topCount = src, n
		}
	}

	text := fmt.Sprintf(
		"📊 Daily digest: %d new leads, avg score %d, %d hot (60+), est. pipeline $%.0f. Top source: %s (%d).",
		len(leads), totalScore/len(leads), hotCount, totalValue, topSource, topCount)

	cm.broadcast(ctx, text)
	return nil
}

func (cm *CronManager) runStaleLeadCheck(ctx context.Context) error {
	cutoff := time.Now().Add(-48 * time.Hour)

	count, err := cm.db.Lead.Query().
		Where(
			entlead.StatusEQ(entlead.StatusNew),
			entlead.CreatedAtLT(cutoff),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count stale leads: %w", err)
	}

	if count == 0 {
		return nil
	}

	cm.broadcast(ctx, fmt.Sprintf("⏰ %d leads have been waiting in \"new\" for over 48 hours.", count))
	return nil
}

func (cm *CronManager) broadcast(ctx context.Context, text string) {
	for _, chat := range cm.chats {
		if err := chat.SendMessage(ctx, text); err != nil {
			cm.logger.Printf("⚠️ Failed to post digest to %s: %v", chat.Name(), err)
		}
	}
}

// Start begins executing scheduled jobs
func (cm *CronManager) Start() {
	cm.logger.Println("Starting cron scheduler...")
	cm.cron.Start()
}

// Stop halts the scheduler, waiting for running jobs to finish
func (cm *CronManager) Stop() {
	cm.logger.Println("Stopping cron scheduler...")
	ctx := cm.cron.Stop()
	<-ctx.Done()
}
