package catalogController_test

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

func seedSeries(t *testing.T, title string, visibility models.Tier, status string) *models.Series {
	t.Helper()
	series := models.Series{Title: title, InstructorID: 9, Visibility: visibility, Status: status}
	require.NoError(t, database.Database.Db.Create(&series).Error)
	return &series
}

func get(t *testing.T, app *fiber.App, path, token string) (int, json.RawMessage) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
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

func listSeries(t *testing.T, app *fiber.App, token string) []models.Series {
	t.Helper()

	code, data := get(t, app, "/series/list?page=1&limit=50", token)
	require.Equal(t, http.StatusOK, code)

	var payload struct {
		Series []models.Series `json:"series"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	return payload.Series
}

// The list filter and the single-item check are the same predicate; a list
// must never contain an item whose detail view would be denied, and must
// not omit one that would be allowed.
func TestListFilterAgreesWithSingleItemCheck(t *testing.T) {
	app := setupApp(t)

	seedSeries(t, "free published", models.TierFreemium, models.StatusPublished)
	seedSeries(t, "basic published", models.TierBasic, models.StatusPublished)
	seedSeries(t, "premium published", models.TierPremium, models.StatusPublished)
	seedSeries(t, "basic draft", models.TierBasic, models.StatusDraft)
	seedSeries(t, "free archived", models.TierFreemium, models.StatusArchived)

	expiry := time.Now().Add(24 * time.Hour)
	user := models.User{Email: "basic@test.com", Password: "x", SubscriptionType: models.TierBasic, SubscriptionExpiresAt: &expiry}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	listed := listSeries(t, app, token)

	titles := make([]string, len(listed))
	for i, s := range listed {
		titles[i] = s.Title
	}
	assert.ElementsMatch(t, []string{"free published", "basic published"}, titles)

	now := time.Now()
	for _, s := range listed {
		assert.True(t, models.IsAccessible(&user, s, now), "listed series %q must pass the single-item check", s.Title)

		code, _ := get(t, app, fmt.Sprintf("/series/%d", s.ID), token)
		assert.Equal(t, http.StatusOK, code)
	}

	// Every seeded series missing from the list must fail the single check.
	var all []models.Series
	require.NoError(t, database.Database.Db.Find(&all).Error)
	for _, s := range all {
		inList := false
		for _, l := range listed {
			if l.ID == s.ID {
				inList = true
			}
		}
		if !inList {
			assert.False(t, models.IsAccessible(&user, s, now), "omitted series %q must fail the single-item check", s.Title)
		}
	}
}

func TestAnonymousListSeesOnlyFreemiumPublished(t *testing.T) {
	app := setupApp(t)

	seedSeries(t, "free published", models.TierFreemium, models.StatusPublished)
	seedSeries(t, "basic published", models.TierBasic, models.StatusPublished)
	seedSeries(t, "free draft", models.TierFreemium, models.StatusDraft)

	listed := listSeries(t, app, "")
	require.Len(t, listed, 1)
	assert.Equal(t, "free published", listed[0].Title)
}

func TestInstructorSeesOwnUnpublishedInList(t *testing.T) {
	app := setupApp(t)

	instructor := models.User{Email: "instructor@test.com", Password: "x", SubscriptionType: models.TierFreemium}
	require.NoError(t, database.Database.Db.Create(&instructor).Error)

	own := models.Series{Title: "own draft", InstructorID: instructor.ID, Visibility: models.TierPremium, Status: models.StatusDraft}
	require.NoError(t, database.Database.Db.Create(&own).Error)
	seedSeries(t, "foreign draft", models.TierFreemium, models.StatusDraft)

	token, err := middleware.GenerateJWT(instructor.ID, instructor.Name, instructor.Role, instructor.Email)
	require.NoError(t, err)

	listed := listSeries(t, app, token)
	require.Len(t, listed, 1)
	assert.Equal(t, "own draft", listed[0].Title)
}

func TestSeriesDetailDeniedWithRequiredTier(t *testing.T) {
	app := setupApp(t)
	series := seedSeries(t, "premium published", models.TierPremium, models.StatusPublished)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/series/%d", series.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var parsed struct {
		Data struct {
			RequiredTier     models.Tier `json:"required_tier"`
			UserSubscription models.Tier `json:"user_subscription"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, models.TierPremium, parsed.Data.RequiredTier)
	assert.Equal(t, models.TierFreemium, parsed.Data.UserSubscription)
}

func TestSeriesDetailFiltersVideosByTier(t *testing.T) {
	app := setupApp(t)
	series := seedSeries(t, "mixed series", models.TierFreemium, models.StatusPublished)

	for _, v := range []models.Video{
		{SeriesID: &series.ID, InstructorID: 9, Title: "free video", Visibility: models.TierFreemium, Status: models.StatusPublished},
		{SeriesID: &series.ID, InstructorID: 9, Title: "premium video", Visibility: models.TierPremium, Status: models.StatusPublished},
		{SeriesID: &series.ID, InstructorID: 9, Title: "draft video", Visibility: models.TierFreemium, Status: models.StatusDraft},
	} {
		video := v
		require.NoError(t, database.Database.Db.Create(&video).Error)
	}

	code, data := get(t, app, fmt.Sprintf("/series/%d", series.ID), "")
	require.Equal(t, http.StatusOK, code)

	var payload struct {
		Videos []models.Video `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	require.Len(t, payload.Videos, 1)
	assert.Equal(t, "free video", payload.Videos[0].Title)
}

func TestSeriesDetailNotFound(t *testing.T) {
	app := setupApp(t)

	code, _ := get(t, app, "/series/99999", "")
	assert.Equal(t, http.StatusNotFound, code)
}
