package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"

	"github.com/nehalpradhan23/SocialApp-Back/internal/logs"
	"github.com/nehalpradhan23/SocialApp-Back/internal/user"
)

// Handler délègue l'authentification à Supabase Auth (GoTrue) et tient la
// ligne users locale synchronisée à l'inscription.
type Handler struct {
	DB      *gorm.DB
	BaseURL string
	AnonKey string
	client  *resty.Client
}

func NewHandler(db *gorm.DB, baseURL, anonKey string) *Handler {
	return &Handler{
		DB:      db,
		BaseURL: baseURL,
		AnonKey: anonKey,
		client:  resty.New().SetTimeout(10 * time.Second),
	}
}

type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// Signup POST /api/signup
func (h *Handler) Signup(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}
	if input.Email == "" || input.Password == "" || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champs requis manquants"})
		return
	}

	// Étape 1 – création du compte côté Supabase Auth
	var authResp authResponse
	resp, err := h.client.R().
		SetHeader("apikey", h.AnonKey).
		SetBody(map[string]string{"email": input.Email, "password": input.Password}).
		SetResult(&authResp).
		Post(h.BaseURL + "/auth/v1/signup")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur Supabase Auth"})
		logs.LogJSON("ERROR", "Supabase signup error", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		return
	}
	if resp.IsError() {
		c.JSON(resp.StatusCode(), gin.H{"error": "Erreur Auth", "details": resp.String()})
		return
	}

	// Étape 2 – ligne users locale (id repris de auth.users)
	newUser := user.User{
		ID:        authResp.User.ID,
		CreatedAt: time.Now(),
		Name:      input.Name,
		Email:     input.Email,
	}
	if err := h.DB.Create(&newUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création de l'utilisateur"})
		logs.LogJSON("ERROR", "User row creation failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": authResp.User.ID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":          newUser,
		"access_token":  authResp.AccessToken,
		"refresh_token": authResp.RefreshToken,
	})
}

// Login POST /api/login
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	var authResp authResponse
	resp, err := h.client.R().
		SetHeader("apikey", h.AnonKey).
		SetBody(map[string]string{"email": input.Email, "password": input.Password}).
		SetResult(&authResp).
		Post(h.BaseURL + "/auth/v1/token?grant_type=password")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur Supabase Auth"})
		return
	}
	if resp.IsError() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  authResp.AccessToken,
		"refresh_token": authResp.RefreshToken,
		"user_id":       authResp.User.ID,
	})
}

// Refresh POST /api/refresh — échange un refresh token contre une
// nouvelle paire de jetons
func (h *Handler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BindJSON(&input); err != nil || input.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token requis"})
		return
	}

	var authResp authResponse
	resp, err := h.client.R().
		SetHeader("apikey", h.AnonKey).
		SetBody(map[string]string{"refresh_token": input.RefreshToken}).
		SetResult(&authResp).
		Post(h.BaseURL + "/auth/v1/token?grant_type=refresh_token")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur Supabase Auth"})
		logs.LogJSON("ERROR", "Supabase token refresh error", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		return
	}
	if resp.IsError() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token invalide"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  authResp.AccessToken,
		"refresh_token": authResp.RefreshToken,
		"user_id":       authResp.User.ID,
	})
}
