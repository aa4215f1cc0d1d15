package model

import "time"

// Publicity is an advertisement posting. Every posting belongs to exactly one
// user, set at creation and immutable afterwards.
type Publicity struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Publication string    `json:"publication" gorm:"size:140;not null"`
	CompanyName string    `json:"company_name" gorm:"size:45"`
	Contact     string    `json:"contact" gorm:"size:45"`
	UserID      uint      `json:"-" gorm:"index;not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
