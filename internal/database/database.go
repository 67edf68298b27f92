package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect ouvre la connexion GORM vers le Postgres Supabase.
// TranslateError est activé pour que les violations d'unicité remontent
// en gorm.ErrDuplicatedKey (détection des doubles likes).
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connexion à Supabase: %w", err)
	}
	return db, nil
}
