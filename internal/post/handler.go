package post

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nehalpradhan23/SocialApp-Back/internal/logs"
	"github.com/nehalpradhan23/SocialApp-Back/internal/media"
)

type Handler struct {
	Writer   *Writer
	Feed     *FeedReader
	Detail   *DetailReader
	Comments *Comments
	Resolver media.Resolver
}

// CreatePost POST /api/posts — création ou mise à jour (champ post_id)
// d'un post, avec média optionnel en multipart.
func (h *Handler) CreatePost(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	draft := Draft{
		ID:     c.PostForm("post_id"),
		UserID: userID,
		Body:   c.PostForm("body"),
	}

	// Média optionnel : enregistré en fichier temporaire puis passé comme
	// référence locale, l'upload durable est fait par le Writer
	file, header, err := c.Request.FormFile("media")
	if err == nil {
		_ = file.Close()

		kind := media.KindVideo
		if strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
			kind = media.KindImage
		}

		tmpPath, err := media.SaveTemp(header)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de lecture du média"})
			return
		}
		defer os.Remove(tmpPath)

		draft.Media = media.LocalFile{Path: tmpPath, FileKind: kind}
	}

	stored, err := h.Writer.Save(c.Request.Context(), draft)
	if err != nil {
		var uploadErr *media.UploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Échec de l'upload du média"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du post"})
		}
		logs.LogJSON("ERROR", "Post save failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": h.postJSON(stored, userID)})
}

// GetFeed GET /api/posts?limit=10
func (h *Handler) GetFeed(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id") // peut être vide si non connecté

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	posts, err := h.Feed.Fetch(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
		logs.LogJSON("ERROR", "Feed fetch failed", map[string]interface{}{
			"error": err.Error(),
			"route": route,
		})
		return
	}

	out := make([]gin.H, 0, len(posts))
	for i := range posts {
		out = append(out, h.postJSON(&posts[i], userID))
	}
	c.JSON(http.StatusOK, gin.H{"posts": out})
}

// GetPostByID GET /api/posts/:id — post complet avec fil de commentaires
func (h *Handler) GetPostByID(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id")

	p, err := h.Detail.Fetch(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération du post"})
		logs.LogJSON("ERROR", "Post detail fetch failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"postID": postID,
		})
		return
	}

	body := h.postJSON(p, userID)
	comments := make([]gin.H, 0, len(p.Comments))
	for _, cm := range p.Comments {
		comments = append(comments, gin.H{
			"id":         cm.ID,
			"created_at": cm.CreatedAt,
			"post_id":    cm.PostID,
			"text":       cm.Text,
			"user": gin.H{
				"id":    cm.User.ID,
				"name":  cm.User.Name,
				"image": h.Resolver.URI(media.RemoteKey{Key: cm.User.Image}),
			},
		})
	}
	body["comments"] = comments

	c.JSON(http.StatusOK, gin.H{"post": body})
}

// DeletePost DELETE /api/posts/:id
func (h *Handler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.Writer.Delete(c.Request.Context(), postID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé ou vous n'êtes pas autorisé à le supprimer"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression du post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post supprimé avec succès"})
}

// CreateComment POST /api/posts/:id/comments
func (h *Handler) CreateComment(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.Comments.Create(c.Request.Context(), postID, userID, input.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyComment) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le commentaire ne peut pas être vide"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du commentaire"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment DELETE /api/comments/:id
func (h *Handler) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")

	if err := h.Comments.Delete(c.Request.Context(), commentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression du commentaire"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Commentaire supprimé avec succès"})
}

// postJSON construit la projection envoyée au front : compteurs dérivés
// du jeu de likes et URI de média résolue.
func (h *Handler) postJSON(p *Post, viewerID string) gin.H {
	isLiked := false
	for _, l := range p.Likes {
		if l.UserID == viewerID && viewerID != "" {
			isLiked = true
			break
		}
	}

	return gin.H{
		"id":            p.ID,
		"created_at":    p.CreatedAt,
		"body":          p.Body,
		"file":          p.File,
		"media_url":     h.Resolver.URI(p.Media()),
		"like_count":    len(p.Likes),
		"is_liked":      isLiked,
		"comment_count": p.CommentCount,
		"user": gin.H{
			"id":    p.User.ID,
			"name":  p.User.Name,
			"image": h.Resolver.URI(media.RemoteKey{Key: p.User.Image}),
		},
	}
}
