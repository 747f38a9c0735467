package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership records that a user belongs to an organisation.
// The composite primary key keeps each (user, organisation) pair unique.
type Membership struct {
	UserID    uuid.UUID `json:"userId" gorm:"column:user_id;type:uuid;primaryKey"`
	OrgID     uuid.UUID `json:"orgId" gorm:"column:org_id;type:uuid;primaryKey;index"`
	CreatedAt time.Time `json:"-" gorm:"not null"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
