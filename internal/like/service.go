package like

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAlreadyLiked : la paire (post, utilisateur) existe déjà. L'appelant
// est censé vérifier son état local avant d'appeler Like ; ce cas ne doit
// arriver qu'en course avec un autre appareil.
var ErrAlreadyLiked = errors.New("post déjà liké")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Like insère la ligne et la retourne. Un doublon remonte en
// ErrAlreadyLiked, jamais en deuxième ligne.
func (s *Service) Like(ctx context.Context, postID, userID string) (*Like, error) {
	l := Like{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		PostID:    postID,
		UserID:    userID,
	}
	if err := s.db.WithContext(ctx).Create(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, fmt.Errorf("ajout du like: %w", err)
	}
	return &l, nil
}

// Unlike supprime la paire. Supprimer un like absent n'est pas une erreur.
func (s *Service) Unlike(ctx context.Context, postID, userID string) error {
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&Like{}).Error
	if err != nil {
		return fmt.Errorf("suppression du like: %w", err)
	}
	return nil
}
