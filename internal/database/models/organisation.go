package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organisation is a named tenant boundary owned by exactly one user
type Organisation struct {
	OrgID       uuid.UUID `json:"orgId" gorm:"column:org_id;type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:80;uniqueIndex:idx_organisations_owner_name,priority:2"`
	Description *string   `json:"description" gorm:"size:200"`
	OwnerID     uuid.UUID `json:"-" gorm:"column:owner_id;type:uuid;not null;index;uniqueIndex:idx_organisations_owner_name,priority:1"`
	Timestamps

	// Relationships
	Owner       *User        `json:"-" gorm:"foreignKey:OwnerID;references:UserID"`
	Memberships []Membership `json:"-" gorm:"foreignKey:OrgID;references:OrgID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organisation
func (Organisation) TableName() string {
	return "organisations"
}

// BeforeCreate sets the UUID if not already set
func (o *Organisation) BeforeCreate(tx *gorm.DB) error {
	if o.OrgID == uuid.Nil {
		o.OrgID = uuid.New()
	}
	return nil
}
