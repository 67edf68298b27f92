package post

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCreateComment(t *testing.T) {
	db, mock := setupMockDB(t)
	comments := NewComments(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "comments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, err := comments.Create(context.Background(), "post1", "user1", "très beau post")

	assert.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, "post1", c.PostID)
	assert.Equal(t, "user1", c.UserID)
	assert.Equal(t, "très beau post", c.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentBlankText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "Empty text",
			text: "",
		},
		{
			name: "Whitespace only",
			text: "   \n\t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			comments := NewComments(db)

			// Aucune attente sqlmock : la garde refuse le texte vide avant
			// tout appel au stockage
			c, err := comments.Create(context.Background(), "post1", "user1", tt.text)

			assert.ErrorIs(t, err, ErrEmptyComment)
			assert.Nil(t, c)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteComment(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
	}{
		{
			name:         "Existing comment is deleted",
			rowsAffected: 1,
		},
		{
			name:         "Missing comment is a no-op success",
			rowsAffected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			comments := NewComments(db)

			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "comments"`).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			mock.ExpectCommit()

			err := comments.Delete(context.Background(), "comment1")

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
