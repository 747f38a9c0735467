package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"identity-org-backend/internal/database/models"
	apperrors "identity-org-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialStore owns every user, organisation and membership record.
// It translates driver errors into the typed errors of internal/errors.
type CredentialStore struct {
	db            *gorm.DB
	users         *UserRepository
	organisations *OrganisationRepository
	memberships   *MembershipRepository
}

// NewCredentialStore creates a store over the given connection or transaction
func NewCredentialStore(db *gorm.DB) *CredentialStore {
	return &CredentialStore{
		db:            db,
		users:         NewUserRepository(db),
		organisations: NewOrganisationRepository(db),
		memberships:   NewMembershipRepository(db),
	}
}

var _ CredentialStoreInterface = (*CredentialStore)(nil)

func (s *CredentialStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *CredentialStore) CreateOrganisation(ctx context.Context, org *models.Organisation) error {
	if err := s.organisations.Create(ctx, org); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrOrganisationNameExists
		}
		return fmt.Errorf("create organisation: %w", err)
	}
	return nil
}

func (s *CredentialStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func (s *CredentialStore) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}

func (s *CredentialStore) FindOrganisationByID(ctx context.Context, id uuid.UUID) (*models.Organisation, error) {
	org, err := s.organisations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("find organisation by id: %w", err)
	}
	return org, nil
}

func (s *CredentialStore) FindOrganisationByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Organisation, error) {
	org, err := s.organisations.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("find organisation by owner and name: %w", err)
	}
	return org, nil
}

// AddMember inserts the (user, organisation) pair. An existing pair yields ErrAlreadyMember.
func (s *CredentialStore) AddMember(ctx context.Context, orgID, userID uuid.UUID) error {
	err := s.memberships.Create(ctx, &models.Membership{UserID: userID, OrgID: orgID})
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyMember
		}
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

// OrganisationsFor returns the organisations a user owns or belongs to, deduplicated by id
func (s *CredentialStore) OrganisationsFor(ctx context.Context, userID uuid.UUID) ([]models.Organisation, error) {
	orgs, err := s.organisations.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list organisations for user: %w", err)
	}
	return orgs, nil
}

func (s *CredentialStore) IsMember(ctx context.Context, orgID, userID uuid.UUID) (bool, error) {
	ok, err := s.memberships.Exists(ctx, orgID, userID)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return ok, nil
}

func (s *CredentialStore) IsOwner(ctx context.Context, orgID, userID uuid.UUID) (bool, error) {
	ok, err := s.organisations.IsOwner(ctx, orgID, userID)
	if err != nil {
		return false, fmt.Errorf("check ownership: %w", err)
	}
	return ok, nil
}

// Transaction runs fn inside a database transaction
func (s *CredentialStore) Transaction(ctx context.Context, fn func(store CredentialStoreInterface) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewCredentialStore(tx))
	})
}

// isUniqueViolation matches translated GORM errors and raw driver messages for Postgres and SQLite
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
