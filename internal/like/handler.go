package like

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nehalpradhan23/SocialApp-Back/internal/logs"
)

type Handler struct {
	Likes *Service
}

// LikePost POST /api/posts/:id/like
func (h *Handler) LikePost(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id")

	l, err := h.Likes.Like(c.Request.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, ErrAlreadyLiked) {
			c.JSON(http.StatusConflict, gin.H{"error": "Post déjà liké"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'ajout du like"})
		logs.LogJSON("ERROR", "Error when liking", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"like": l})
}

// UnlikePost DELETE /api/posts/:id/like — idempotent
func (h *Handler) UnlikePost(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.Likes.Unlike(c.Request.Context(), postID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression du like"})
		logs.LogJSON("ERROR", "Error when unliking", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Like supprimé"})
}
