package models

import (
	"time"
)

// Timestamps provides creation and update times for all models
type Timestamps struct {
	CreatedAt time.Time `json:"-" gorm:"not null;index"`
	UpdatedAt time.Time `json:"-" gorm:"not null"`
}
