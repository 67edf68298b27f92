package user

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nehalpradhan23/SocialApp-Back/internal/logs"
	"github.com/nehalpradhan23/SocialApp-Back/internal/media"
)

type Handler struct {
	DB       *gorm.DB
	Uploader *media.Uploader
	Resolver media.Resolver
}

// GetMe GET /api/users/me
func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var u User
	if err := h.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		logs.LogJSON("WARN", "User not found", map[string]interface{}{
			"route":  c.FullPath(),
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": h.userJSON(&u)})
}

// UpdateMe PUT /api/users/me — champs texte + avatar optionnel
func (h *Handler) UpdateMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var u User
	if err := h.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		return
	}

	if name := c.PostForm("name"); name != "" {
		u.Name = name
	}
	if bio := c.PostForm("bio"); bio != "" {
		u.Bio = bio
	}
	if address := c.PostForm("address"); address != "" {
		u.Address = address
	}
	if phone := c.PostForm("phoneNumber"); phone != "" {
		u.PhoneNumber = phone
	}

	// Remplacement de l'avatar : l'ancien objet n'est pas supprimé
	file, header, err := c.Request.FormFile("image")
	if err == nil {
		_ = file.Close()

		if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "L'avatar doit être une image"})
			return
		}

		tmpPath, err := media.SaveTemp(header)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de lecture de l'image"})
			return
		}
		defer os.Remove(tmpPath)

		remote, err := h.Uploader.Upload(c.Request.Context(),
			media.FolderProfiles,
			media.LocalFile{Path: tmpPath, FileKind: media.KindImage})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur upload avatar"})
			logs.LogJSON("ERROR", "Avatar upload failed", map[string]interface{}{
				"error":  err.Error(),
				"route":  c.FullPath(),
				"userID": userID,
			})
			return
		}
		u.Image = remote.Key
	}

	if err := h.DB.Save(&u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour utilisateur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profil mis à jour", "user": h.userJSON(&u)})
}

func (h *Handler) userJSON(u *User) gin.H {
	return gin.H{
		"id":          u.ID,
		"created_at":  u.CreatedAt,
		"name":        u.Name,
		"email":       u.Email,
		"image":       h.Resolver.URI(media.RemoteKey{Key: u.Image}),
		"bio":         u.Bio,
		"address":     u.Address,
		"phoneNumber": u.PhoneNumber,
	}
}
