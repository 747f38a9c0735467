package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered identity. The password digest never leaves the service layer.
type User struct {
	UserID         uuid.UUID `json:"userId" gorm:"column:user_id;type:uuid;primaryKey"`
	FirstName      string    `json:"firstName" gorm:"not null;size:100"`
	LastName       string    `json:"lastName" gorm:"not null;size:100"`
	Email          string    `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255"`
	PasswordDigest string    `json:"-" gorm:"column:password_digest;not null"`
	Phone          *string   `json:"phone" gorm:"size:32"`
	Timestamps

	// Relationships
	Memberships []Membership `json:"-" gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate sets the UUID if not already set
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
