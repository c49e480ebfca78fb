package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliptube/cliptube-backend/internal/apperr"
	"github.com/cliptube/cliptube-backend/internal/models"
)

func idRows(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"}).AddRow(id.String())
}

func TestToggleLikeCreates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEngagementService(db)
	userID, videoID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "videos"`).WillReturnRows(idRows(videoID))
	mock.ExpectExec(`DELETE FROM "likes"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "likes"`).WillReturnRows(idRows(uuid.New()))

	status, err := svc.ToggleLike(context.Background(), userID, videoID, models.LikeTargetVideo)
	require.NoError(t, err)
	assert.Equal(t, ToggleCreated, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeDeletes(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEngagementService(db)
	userID, videoID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "videos"`).WillReturnRows(idRows(videoID))
	mock.ExpectExec(`DELETE FROM "likes"`).WillReturnResult(sqlmock.NewResult(0, 1))

	status, err := svc.ToggleLike(context.Background(), userID, videoID, models.LikeTargetVideo)
	require.NoError(t, err)
	assert.Equal(t, ToggleDeleted, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A concurrent toggle slips its insert in between our delete and insert.
// The unique index rejects ours, and the caller still sees "created": the
// row they asked for exists.
func TestToggleLikeConcurrentInsert(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEngagementService(db)
	userID, tweetID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "tweets"`).WillReturnRows(idRows(tweetID))
	mock.ExpectExec(`DELETE FROM "likes"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "likes"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	status, err := svc.ToggleLike(context.Background(), userID, tweetID, models.LikeTargetTweet)
	require.NoError(t, err)
	assert.Equal(t, ToggleCreated, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeUnknownTargetType(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewEngagementService(db)

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New(), "playlist")
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestToggleLikeMissingTarget(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEngagementService(db)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New(), models.LikeTargetComment)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestToggleSubscriptionCreates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEngagementService(db)
	subscriberID, channelID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(idRows(channelID))
	mock.ExpectExec(`DELETE FROM "subscriptions"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "subscriptions"`).WillReturnRows(idRows(uuid.New()))

	status, err := svc.ToggleSubscription(context.Background(), subscriberID, channelID)
	require.NoError(t, err)
	assert.Equal(t, ToggleCreated, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleSubscriptionDeletes(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEngagementService(db)
	subscriberID, channelID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(idRows(channelID))
	mock.ExpectExec(`DELETE FROM "subscriptions"`).WillReturnResult(sqlmock.NewResult(0, 1))

	status, err := svc.ToggleSubscription(context.Background(), subscriberID, channelID)
	require.NoError(t, err)
	assert.Equal(t, ToggleDeleted, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleSubscriptionSelf(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewEngagementService(db)
	id := uuid.New()

	_, err := svc.ToggleSubscription(context.Background(), id, id)
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestToggleSubscriptionMissingChannel(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEngagementService(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.ToggleSubscription(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetChannelSubscribersNotOwner(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewEngagementService(db)

	_, _, err := svc.GetChannelSubscribers(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}
