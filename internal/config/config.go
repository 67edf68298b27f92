package config

import (
	"os"
)

type Config struct {
	DBUrl       string
	JWTSecret   string
	SupabaseURL string
	AnonKey     string
	Bucket      string
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	Port        string
}

func LoadConfig() *Config {
	cfg := &Config{
		DBUrl:       os.Getenv("SUPABASE_DB_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		AnonKey:     os.Getenv("SUPABASE_ANON_KEY"),
		Bucket:      os.Getenv("SUPABASE_BUCKET"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    os.Getenv("S3_REGION"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "uploads" // bucket public Supabase par défaut
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}
