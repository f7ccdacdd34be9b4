package subscriptionController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/config"
	"github.com/smartcoindev389/ana-rey-video-sub000/database"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"
	subscriptionRoutes "github.com/smartcoindev389/ana-rey-video-sub000/routers/subscriptionRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	// Tests run without a gateway; payment references pass unverified.
	config.AppConfig.PaymentGatewayURL = ""

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.SubscriptionTransaction{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	subscriptionRoutes.SetupSubscriptionRoutes(app)
	return app
}

func createUser(t *testing.T, tier models.Tier, expiresAt *time.Time) (*models.User, string) {
	t.Helper()
	user := models.User{
		Name:                  "Sub Tester",
		Email:                 fmt.Sprintf("%s@test.com", t.Name()),
		Password:              "x",
		SubscriptionType:      tier,
		SubscriptionExpiresAt: expiresAt,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return &user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, json.RawMessage) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed.Data
}

func TestGetSubscriptionReportsEffectiveTier(t *testing.T) {
	app := setupApp(t)
	past := time.Now().Add(-time.Hour)
	_, token := createUser(t, models.TierPremium, &past)

	code, data := doJSON(t, app, http.MethodGet, "/subscription/", token, nil)
	require.Equal(t, http.StatusOK, code)

	var payload struct {
		SubscriptionType models.Tier `json:"subscription_type"`
		EffectiveTier    models.Tier `json:"effective_tier"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, models.TierPremium, payload.SubscriptionType, "stored tier survives lapse")
	assert.Equal(t, models.TierFreemium, payload.EffectiveTier, "effective tier reflects lapse")
}

func TestUpgradeSubscription(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, models.TierFreemium, nil)

	code, _ := doJSON(t, app, http.MethodPost, "/subscription/upgrade", token, fiber.Map{
		"tier":       "premium",
		"period":     "YEARLY",
		"payment_id": "pay_12345",
	})
	require.Equal(t, http.StatusOK, code)

	var updated models.User
	require.NoError(t, database.Database.Db.First(&updated, user.ID).Error)
	assert.Equal(t, models.TierPremium, updated.SubscriptionType)
	require.NotNil(t, updated.SubscriptionExpiresAt)
	assert.True(t, updated.SubscriptionExpiresAt.After(time.Now().AddDate(0, 11, 0)))

	var transaction models.SubscriptionTransaction
	require.NoError(t, database.Database.Db.Where("user_id = ?", user.ID).First(&transaction).Error)
	assert.Equal(t, models.TierPremium, transaction.Tier)
	assert.Equal(t, "pay_12345", transaction.PaymentID)
	assert.NotEmpty(t, transaction.Reference)
}

func TestUpgradeRenewalRestoresLapsedTier(t *testing.T) {
	app := setupApp(t)
	past := time.Now().Add(-time.Hour)
	user, token := createUser(t, models.TierBasic, &past)

	code, _ := doJSON(t, app, http.MethodPost, "/subscription/upgrade", token, fiber.Map{
		"tier":       "basic",
		"payment_id": "pay_renewal",
	})
	require.Equal(t, http.StatusOK, code)

	var updated models.User
	require.NoError(t, database.Database.Db.First(&updated, user.ID).Error)
	assert.Equal(t, models.TierBasic, updated.EffectiveTier(time.Now()))
	assert.False(t, updated.ExpiryReminderSent, "renewal re-arms the expiry reminder")
}

func TestUpgradeValidation(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, models.TierFreemium, nil)

	// Cannot "upgrade" to freemium.
	code, _ := doJSON(t, app, http.MethodPost, "/subscription/upgrade", token, fiber.Map{
		"tier":       "freemium",
		"payment_id": "pay_1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	// Unknown tier.
	code, _ = doJSON(t, app, http.MethodPost, "/subscription/upgrade", token, fiber.Map{
		"tier":       "platinum",
		"payment_id": "pay_1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	// Missing payment reference.
	code, _ = doJSON(t, app, http.MethodPost, "/subscription/upgrade", token, fiber.Map{
		"tier": "basic",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}
