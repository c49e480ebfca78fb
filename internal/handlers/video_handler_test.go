package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cliptube/cliptube-backend/internal/config"
	"github.com/cliptube/cliptube-backend/internal/middleware"
	"github.com/cliptube/cliptube-backend/internal/services"
	"github.com/cliptube/cliptube-backend/internal/token"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:  "access-secret",
		JWTRefreshSecret: "refresh-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

// videoApp mounts the public video read routes the way the route table
// does: behind the optional guard, not the strict one.
func videoApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	handler := NewVideoHandler(services.NewVideoService(db, nil))

	app := fiber.New()
	identify := middleware.OptionalAuth(testConfig())
	app.Get("/videos/:id", identify, handler.Get)
	return app, mock
}

func unpublishedVideoRows(id, ownerID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "title", "is_published"}).
		AddRow(id.String(), ownerID.String(), "draft", false)
}

// The owner's access token must carry through the public route so their
// own unpublished video resolves instead of reading as absent.
func TestGetOwnUnpublishedVideoWithToken(t *testing.T) {
	app, mock := videoApp(t)
	ownerID, videoID := uuid.New(), uuid.New()

	pair, err := token.NewManager(testConfig()).Issue(token.Identity{
		UserID: ownerID, Username: "alice",
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "videos"`).
		WillReturnRows(unpublishedVideoRows(videoID, ownerID))
	mock.ExpectExec(`UPDATE "videos" SET "views"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodGet, "/videos/"+videoID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUnpublishedVideoAnonymous(t *testing.T) {
	app, mock := videoApp(t)
	videoID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "videos"`).
		WillReturnRows(unpublishedVideoRows(videoID, uuid.New()))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videos/"+videoID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// A bad token on a public route degrades to anonymous instead of 401.
func TestGetVideoBadTokenDegradesToAnonymous(t *testing.T) {
	app, mock := videoApp(t)
	videoID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "videos"`).
		WillReturnRows(unpublishedVideoRows(videoID, uuid.New()))

	req := httptest.NewRequest(http.MethodGet, "/videos/"+videoID.String(), nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
