package repository

import (
	"context"

	"identity-org-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CredentialStoreInterface defines the persistence operations for users, organisations and memberships.
// Lookups return typed not-found errors from internal/errors; uniqueness violations return the
// matching already-exists sentinel.
type CredentialStoreInterface interface {
	CreateUser(ctx context.Context, user *models.User) error
	CreateOrganisation(ctx context.Context, org *models.Organisation) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindOrganisationByID(ctx context.Context, id uuid.UUID) (*models.Organisation, error)
	FindOrganisationByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Organisation, error)
	AddMember(ctx context.Context, orgID, userID uuid.UUID) error
	OrganisationsFor(ctx context.Context, userID uuid.UUID) ([]models.Organisation, error)
	IsMember(ctx context.Context, orgID, userID uuid.UUID) (bool, error)
	IsOwner(ctx context.Context, orgID, userID uuid.UUID) (bool, error)
	// Transaction runs fn against a store bound to one database transaction.
	// A non-nil error from fn rolls every write back and is returned unchanged.
	Transaction(ctx context.Context, fn func(store CredentialStoreInterface) error) error
}
