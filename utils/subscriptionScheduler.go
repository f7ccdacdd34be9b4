package utils

import (
	"log"
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/database"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"

	"github.com/robfig/cron/v3"
)

// InitializeSubscriptionScheduler sets up the subscription expiry scheduler
func InitializeSubscriptionScheduler() {
	log.Println("[SUBSCRIPTION-SCHEDULER] Initializing subscription scheduler...")

	c := cron.New()

	// Run daily at 9 AM to notify expiring and lapsed subscriptions
	c.AddFunc("0 9 * * *", func() {
		log.Println("[SUBSCRIPTION-SCHEDULER] Running daily subscription check...")
		ProcessExpiringSubscriptions()
		NotifyLapsedSubscriptions()
	})

	c.Start()
	log.Println("[SUBSCRIPTION-SCHEDULER] Subscription scheduler started - runs daily at 9 AM")
}

// ProcessExpiringSubscriptions sends reminder emails for subscriptions
// expiring within 2 days. The stored subscription_type is never touched:
// lapse is computed at read time by the access evaluator, so renewal simply
// restores the old tier.
func ProcessExpiringSubscriptions() {
	db := database.Database.Db
	now := time.Now()
	twoDaysFromNow := now.AddDate(0, 0, 2)

	var expiringUsers []models.User
	if err := db.
		Where("subscription_type <> ? AND is_deleted = false AND expiry_reminder_sent = false", models.TierFreemium).
		Where("subscription_expires_at BETWEEN ? AND ?", now, twoDaysFromNow).
		Find(&expiringUsers).Error; err != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching expiring subscriptions: %v", err)
		return
	}

	log.Printf("[SUBSCRIPTION-SCHEDULER] Found %d subscriptions expiring soon", len(expiringUsers))

	for _, user := range expiringUsers {
		SendSubscriptionExpiryReminder(user.Email, user.Name, string(user.SubscriptionType), user.SubscriptionExpiresAt)

		db.Model(&user).Update("expiry_reminder_sent", true)
		log.Printf("[SUBSCRIPTION-SCHEDULER] Sent expiry reminder to %s", user.Email)
	}
}

// NotifyLapsedSubscriptions emails users whose subscription expired within
// the last day.
func NotifyLapsedSubscriptions() {
	db := database.Database.Db
	now := time.Now()

	var lapsedUsers []models.User
	if err := db.
		Where("subscription_type <> ? AND is_deleted = false", models.TierFreemium).
		Where("subscription_expires_at BETWEEN ? AND ?", now.AddDate(0, 0, -1), now).
		Find(&lapsedUsers).Error; err != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching lapsed subscriptions: %v", err)
		return
	}

	for _, user := range lapsedUsers {
		SendSubscriptionLapsedEmail(user.Email, user.Name, string(user.SubscriptionType))
		log.Printf("[SUBSCRIPTION-SCHEDULER] Sent lapse notification to %s", user.Email)
	}
}
