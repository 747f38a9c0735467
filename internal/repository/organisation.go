package repository

import (
	"context"

	"identity-org-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganisationRepository handles database operations for organisations
type OrganisationRepository struct {
	db *gorm.DB
}

// NewOrganisationRepository creates a new organisation repository
func NewOrganisationRepository(db *gorm.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

// Create creates a new organisation
func (r *OrganisationRepository) Create(ctx context.Context, org *models.Organisation) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// GetByID retrieves an organisation by ID
func (r *OrganisationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	err := r.db.WithContext(ctx).First(&org, "org_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByOwnerAndName retrieves the organisation an owner holds under an exact name
func (r *OrganisationRepository) GetByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Organisation, error) {
	var org models.Organisation
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// ListForUser returns every organisation the user owns or is a member of.
// Each organisation appears once, ordered by creation time then id.
func (r *OrganisationRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Organisation, error) {
	var orgs []models.Organisation

	memberOf := r.db.Model(&models.Membership{}).Select("org_id").Where("user_id = ?", userID)
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Or("org_id IN (?)", memberOf).
		Order("created_at ASC").
		Order("org_id ASC").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// IsOwner reports whether the user owns the organisation
func (r *OrganisationRepository) IsOwner(ctx context.Context, orgID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Organisation{}).
		Where("org_id = ? AND owner_id = ?", orgID, userID).
		Count(&count).Error
	return count > 0, err
}
