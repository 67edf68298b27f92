package user

import "time"

type User struct {
	ID          string    `json:"id" gorm:"primaryKey"` // UUID venant de auth.users
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Image       string    `json:"image"` // clé de stockage de l'avatar, pas une URL
	Bio         string    `json:"bio"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber" gorm:"column:phone_number"`
	Email       string    `json:"email"`
}
