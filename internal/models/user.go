package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account that can sign in. Only RoleAdmin may mutate content.
type User struct {
	Base
	Nickname     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`
}
