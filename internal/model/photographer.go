package model

import "time"

type Photographer struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Email            string     `json:"email" gorm:"unique;not null;size:255"`
	BusinessName     string     `json:"businessName" gorm:"not null"`
	PasswordHash     string     `json:"-" gorm:"not null"`
	ResetToken       *string    `json:"-" gorm:"index"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"createdAt"`
	Galleries        []Gallery  `json:"-"`
}
