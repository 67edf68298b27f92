package post

import (
	"time"

	"github.com/nehalpradhan23/SocialApp-Back/internal/like"
	"github.com/nehalpradhan23/SocialApp-Back/internal/media"
	"github.com/nehalpradhan23/SocialApp-Back/internal/user"
)

// Post tel que stocké. File est la clé de stockage du média ("" = pas de
// média) : un post persisté ne référence jamais un fichier local.
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id" gorm:"index"`
	User      user.User `json:"user" gorm:"foreignKey:UserID"`
	Body      string    `json:"body"` // contenu riche, blob opaque pour ce sous-système
	File      string    `json:"file"`

	Likes    []like.Like `json:"post_likes" gorm:"foreignKey:PostID"`
	Comments []Comment   `json:"comments,omitempty" gorm:"foreignKey:PostID"`

	// Rempli par FeedReader, jamais persisté
	CommentCount int64 `json:"comment_count" gorm:"-"`
}

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	PostID    string    `json:"post_id" gorm:"index"`
	UserID    string    `json:"user_id"`
	User      user.User `json:"user" gorm:"foreignKey:UserID"`
	Text      string    `json:"text"`
}

// Media reconstruit la référence du média stocké ; nil quand le post n'en
// a pas.
func (p *Post) Media() media.Ref {
	if p.File == "" {
		return nil
	}
	return media.RemoteKey{Key: p.File}
}

// Draft : post soumis par la couche de composition. Media peut être une
// media.LocalFile (à uploader) ou une media.RemoteKey (déjà durable).
// Un ID vide demande une création, un ID existant un remplacement.
type Draft struct {
	ID     string
	UserID string
	Body   string
	Media  media.Ref
}
