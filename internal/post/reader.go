package post

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// FeedReader assemble la page d'accueil : posts du plus récent au plus
// ancien, chacun avec son auteur, l'ensemble complet de ses likes et le
// nombre de commentaires. Lectures "dernier état gagnant", sans isolation
// de snapshot sur la page entière.
type FeedReader struct {
	db *gorm.DB
}

func NewFeedReader(db *gorm.DB) *FeedReader {
	return &FeedReader{db: db}
}

func (r *FeedReader) Fetch(ctx context.Context, limit int) ([]Post, error) {
	var posts []Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Likes").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("récupération du fil: %w", err)
	}
	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	var counts []struct {
		PostID string
		Count  int64
	}
	err = r.db.WithContext(ctx).
		Model(&Comment{}).
		Select("post_id, count(*) as count").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("comptage des commentaires: %w", err)
	}

	byPost := make(map[string]int64, len(counts))
	for _, c := range counts {
		byPost[c.PostID] = c.Count
	}
	for i := range posts {
		posts[i].CommentCount = byPost[posts[i].ID]
	}
	return posts, nil
}

// DetailReader charge un post avec son auteur, ses likes et le fil complet
// de commentaires (chaque commentaire avec son auteur), du plus ancien au
// plus récent — l'inverse du fil, le détail se lit comme une conversation.
type DetailReader struct {
	db *gorm.DB
}

func NewDetailReader(db *gorm.DB) *DetailReader {
	return &DetailReader{db: db}
}

func (r *DetailReader) Fetch(ctx context.Context, postID string) (*Post, error) {
	var p Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Likes").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		First(&p, "id = ?", postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("récupération du post: %w", err)
	}
	p.CommentCount = int64(len(p.Comments))
	return &p, nil
}
