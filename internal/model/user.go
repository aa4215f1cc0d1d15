package model

import "time"

// User is an identity record. Nickname is the login handle; Name and Fullname
// are display strings. The password itself is never stored, only the bcrypt
// hash.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:25;not null"`
	Fullname     string    `json:"fullname" gorm:"size:25;not null"`
	Nickname     string    `json:"nickname" gorm:"uniqueIndex;size:15;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"size:120;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	// Relations
	Publicities []Publicity `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
