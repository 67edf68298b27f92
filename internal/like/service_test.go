package like

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	return db, mock
}

func TestLike(t *testing.T) {
	db, mock := setupMockDB(t)
	service := NewService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "post_likes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	l, err := service.Like(context.Background(), "post1", "user1")

	assert.NoError(t, err)
	assert.Equal(t, "post1", l.PostID)
	assert.Equal(t, "user1", l.UserID)
	assert.NotEmpty(t, l.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeDuplicatePair(t *testing.T) {
	db, mock := setupMockDB(t)
	service := NewService(db)

	// La contrainte unique (post_id, user_id) de la base refuse la
	// deuxième ligne : violation 23505 => ErrAlreadyLiked
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "post_likes"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := service.Like(context.Background(), "post1", "user1")

	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlike(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
	}{
		{
			name:         "Existing like is removed",
			rowsAffected: 1,
		},
		{
			name:         "Missing like is a no-op success",
			rowsAffected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			service := NewService(db)

			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "post_likes"`).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			mock.ExpectCommit()

			err := service.Unlike(context.Background(), "post1", "user1")

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
