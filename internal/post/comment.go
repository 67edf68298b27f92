package post

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrEmptyComment : texte vide ou blanc, refusé avant tout appel au
// stockage. Garde purement côté client.
var ErrEmptyComment = errors.New("commentaire vide")

// Comments crée et supprime les commentaires d'un post.
type Comments struct {
	db *gorm.DB
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{db: db}
}

// Create insère le commentaire et retourne la ligne complète (id et
// horodatage générés).
func (s *Comments) Create(ctx context.Context, postID, userID, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	c := Comment{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		PostID:    postID,
		UserID:    userID,
		Text:      text,
	}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("ajout du commentaire: %w", err)
	}
	return &c, nil
}

// Delete supprime définitivement le commentaire. Un id inconnu est un
// succès, comme pour Unlike.
func (s *Comments) Delete(ctx context.Context, commentID string) error {
	err := s.db.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&Comment{}).Error
	if err != nil {
		return fmt.Errorf("suppression du commentaire: %w", err)
	}
	return nil
}
