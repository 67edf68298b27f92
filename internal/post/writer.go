package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nehalpradhan23/SocialApp-Back/internal/media"
)

var ErrNotFound = errors.New("post introuvable")

// Uploader : contrat minimal de l'upload de médias, satisfait par
// *media.Uploader.
type Uploader interface {
	Upload(ctx context.Context, folder string, file media.LocalFile) (media.RemoteKey, error)
}

// Writer crée et met à jour les posts. Tout média local passe d'abord par
// l'upload : l'ordre upload-puis-persistance garantit qu'une ligne post ne
// contient jamais de référence locale.
type Writer struct {
	db       *gorm.DB
	uploader Uploader
}

func NewWriter(db *gorm.DB, uploader Uploader) *Writer {
	return &Writer{db: db, uploader: uploader}
}

// Save uploade le média local éventuel puis upsert le post par id, et
// relit la ligne stockée avec son auteur. Si l'upload échoue, tout
// s'arrête : aucune écriture en base. Si la persistance échoue après un
// upload réussi, l'objet uploadé reste orphelin dans le stockage (fuite
// connue, aucune compensation ici).
func (w *Writer) Save(ctx context.Context, draft Draft) (*Post, error) {
	fileKey := ""

	switch m := draft.Media.(type) {
	case media.LocalFile:
		folder := media.FolderPostVideos
		if m.Kind() == media.KindImage {
			folder = media.FolderPostImages
		}
		remote, err := w.uploader.Upload(ctx, folder, m)
		if err != nil {
			return nil, err
		}
		fileKey = remote.Key
	case media.RemoteKey:
		fileKey = m.Key
	}

	row := Post{
		ID:        draft.ID,
		CreatedAt: time.Now(),
		UserID:    draft.UserID,
		Body:      draft.Body,
		File:      fileKey,
	}
	if row.ID == "" {
		row.ID = uuid.New().String()
	}

	err := w.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "file"}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("enregistrement du post: %w", err)
	}

	var stored Post
	err = w.db.WithContext(ctx).
		Preload("User").
		First(&stored, "id = ?", row.ID).Error
	if err != nil {
		return nil, fmt.Errorf("relecture du post: %w", err)
	}
	return &stored, nil
}

// Delete supprime le post s'il appartient à l'utilisateur. L'objet média
// stocké n'est pas supprimé (fuite acceptée, hors périmètre).
func (w *Writer) Delete(ctx context.Context, postID, userID string) error {
	res := w.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", postID, userID).
		Delete(&Post{})
	if res.Error != nil {
		return fmt.Errorf("suppression du post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
