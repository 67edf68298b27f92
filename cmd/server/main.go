package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nehalpradhan23/SocialApp-Back/internal/auth"
	"github.com/nehalpradhan23/SocialApp-Back/internal/config"
	"github.com/nehalpradhan23/SocialApp-Back/internal/database"
	"github.com/nehalpradhan23/SocialApp-Back/internal/like"
	"github.com/nehalpradhan23/SocialApp-Back/internal/logs"
	"github.com/nehalpradhan23/SocialApp-Back/internal/media"
	"github.com/nehalpradhan23/SocialApp-Back/internal/middleware"
	"github.com/nehalpradhan23/SocialApp-Back/internal/post"
	"github.com/nehalpradhan23/SocialApp-Back/internal/storage"
	"github.com/nehalpradhan23/SocialApp-Back/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		panic("SUPABASE_DB_URL manquant")
	}

	db, err := database.Connect(cfg.DBUrl)
	if err != nil {
		logs.LogJSON("FATAL", "Database connection failed", map[string]interface{}{"error": err.Error()})
		panic(err)
	}

	store, err := storage.NewS3Store(context.Background(), storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.Bucket,
	})
	if err != nil {
		logs.LogJSON("FATAL", "Object storage init failed", map[string]interface{}{"error": err.Error()})
		panic(err)
	}

	uploader := media.NewUploader(store)
	resolver := media.Resolver{BaseURL: cfg.SupabaseURL, Bucket: cfg.Bucket}

	postHandler := &post.Handler{
		Writer:   post.NewWriter(db, uploader),
		Feed:     post.NewFeedReader(db),
		Detail:   post.NewDetailReader(db),
		Comments: post.NewComments(db),
		Resolver: resolver,
	}
	likeHandler := &like.Handler{Likes: like.NewService(db)}
	userHandler := &user.Handler{DB: db, Uploader: uploader, Resolver: resolver}
	authHandler := auth.NewHandler(db, cfg.SupabaseURL, cfg.AnonKey)

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Inscription & Connexion
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.POST("/refresh", authHandler.Refresh)

	// Lecture du fil, accessible sans compte
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	public.GET("/posts", postHandler.GetFeed)
	public.GET("/posts/:id", postHandler.GetPostByID)

	// Écritures, compte requis
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	authed.POST("/posts", postHandler.CreatePost)
	authed.DELETE("/posts/:id", postHandler.DeletePost)
	authed.POST("/posts/:id/like", likeHandler.LikePost)
	authed.DELETE("/posts/:id/like", likeHandler.UnlikePost)
	authed.POST("/posts/:id/comments", postHandler.CreateComment)
	authed.DELETE("/comments/:id", postHandler.DeleteComment)
	authed.GET("/users/me", userHandler.GetMe)
	authed.PUT("/users/me", userHandler.UpdateMe)

	if err := r.Run(":" + cfg.Port); err != nil {
		logs.LogJSON("FATAL", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
