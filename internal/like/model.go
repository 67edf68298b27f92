package like

import (
	"time"
)

// Like : un utilisateur aime un post. La paire (post_id, user_id) est
// unique — c'est la base qui fait respecter la contrainte, pour que deux
// likes concurrents ne produisent jamais deux lignes.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	PostID    string    `json:"post_id" gorm:"not null;uniqueIndex:idx_post_user"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex:idx_post_user"`
}

func (Like) TableName() string {
	return "post_likes"
}
