package accessController_test

import (
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
	catalogRoutes "github.com/smartcoindev389/ana-rey-video-sub000/routers/catalogRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type accessResult struct {
	Accessible       bool        `json:"accessible"`
	Visibility       models.Tier `json:"visibility"`
	UserSubscription models.Tier `json:"user_subscription"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Series{}, &models.Video{}, &models.VideoProgress{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	catalogRoutes.SetupCatalogRoutes(app)
	return app
}

func checkAccess(t *testing.T, app *fiber.App, contentType string, id uint, token string) (int, accessResult) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/access-check/%s/%d", contentType, id), nil)
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

	var result accessResult
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(parsed.Data, &result))
	}
	return resp.StatusCode, result
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

func TestAnonymousDeniedBasicVideo(t *testing.T) {
	app := setupApp(t)
	video := models.Video{InstructorID: 9, Visibility: models.TierBasic, Status: models.StatusPublished}
	require.NoError(t, database.Database.Db.Create(&video).Error)

	code, result := checkAccess(t, app, "video", video.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, result.Accessible)
	assert.Equal(t, models.TierBasic, result.Visibility)
	assert.Equal(t, models.TierFreemium, result.UserSubscription)
}

func TestAnonymousAllowedFreemiumSeries(t *testing.T) {
	app := setupApp(t)
	series := models.Series{InstructorID: 9, Visibility: models.TierFreemium, Status: models.StatusPublished}
	require.NoError(t, database.Database.Db.Create(&series).Error)

	code, result := checkAccess(t, app, "series", series.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, result.Accessible)
}

func TestStatusGateBeatsTier(t *testing.T) {
	app := setupApp(t)

	// Premium user with non-expiring subscription, draft video they neither
	// own nor administer: the tier passes but the status gate does not.
	user := models.User{Email: "premium@test.com", Password: "x", SubscriptionType: models.TierPremium}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	video := models.Video{InstructorID: 9, Visibility: models.TierPremium, Status: models.StatusDraft}
	require.NoError(t, database.Database.Db.Create(&video).Error)

	code, result := checkAccess(t, app, "video", video.ID, tokenFor(t, &user))
	require.Equal(t, http.StatusOK, code)
	assert.False(t, result.Accessible)
	assert.Equal(t, models.TierPremium, result.UserSubscription)
}

func TestLapsedSubscriptionEvaluatesAsFreemium(t *testing.T) {
	app := setupApp(t)

	past := time.Now().Add(-time.Hour)
	user := models.User{Email: "lapsed@test.com", Password: "x", SubscriptionType: models.TierPremium, SubscriptionExpiresAt: &past}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	video := models.Video{InstructorID: 9, Visibility: models.TierBasic, Status: models.StatusPublished}
	require.NoError(t, database.Database.Db.Create(&video).Error)

	code, result := checkAccess(t, app, "video", video.ID, tokenFor(t, &user))
	require.Equal(t, http.StatusOK, code)
	assert.False(t, result.Accessible)
	assert.Equal(t, models.TierFreemium, result.UserSubscription, "lapsed premium evaluates as freemium")

	// The stored tier is untouched by evaluation.
	var stored models.User
	require.NoError(t, database.Database.Db.First(&stored, user.ID).Error)
	assert.Equal(t, models.TierPremium, stored.SubscriptionType)
}

func TestAdminSeesDraftContent(t *testing.T) {
	app := setupApp(t)

	admin := models.User{Email: "admin@test.com", Password: "x", Role: "ADMIN", SubscriptionType: models.TierFreemium}
	require.NoError(t, database.Database.Db.Create(&admin).Error)
	video := models.Video{InstructorID: 9, Visibility: models.TierPremium, Status: models.StatusDraft}
	require.NoError(t, database.Database.Db.Create(&video).Error)

	code, result := checkAccess(t, app, "video", video.ID, tokenFor(t, &admin))
	require.Equal(t, http.StatusOK, code)
	assert.True(t, result.Accessible)
}

func TestOwnerSeesOwnDraft(t *testing.T) {
	app := setupApp(t)

	instructor := models.User{Email: "instructor@test.com", Password: "x", SubscriptionType: models.TierFreemium}
	require.NoError(t, database.Database.Db.Create(&instructor).Error)
	video := models.Video{InstructorID: instructor.ID, Visibility: models.TierPremium, Status: models.StatusDraft}
	require.NoError(t, database.Database.Db.Create(&video).Error)

	code, result := checkAccess(t, app, "video", video.ID, tokenFor(t, &instructor))
	require.Equal(t, http.StatusOK, code)
	assert.True(t, result.Accessible)
}

func TestMissingContentIs404NotDenial(t *testing.T) {
	app := setupApp(t)

	code, _ := checkAccess(t, app, "video", 99999, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = checkAccess(t, app, "series", 99999, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUnknownContentTypeRejected(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/access-check/playlist/1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
