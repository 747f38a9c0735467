package service

import (
	"context"

	"identity-org-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PasswordHasher turns passwords into digests and checks them
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) (bool, error)
}

// TokenIssuer signs access tokens for a subject
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// PhoneNormalizer canonicalises phone numbers
type PhoneNormalizer interface {
	NormalizeE164(input string) string
}

// IdentityServiceInterface defines registration and login
type IdentityServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
}

// AccessControlServiceInterface decides what an authenticated subject may see or change.
// It never reports absence; callers resolve existence first.
type AccessControlServiceInterface interface {
	CanViewOrganisation(ctx context.Context, subject uuid.UUID, org *models.Organisation) (bool, error)
	CanManageOrganisation(subject uuid.UUID, org *models.Organisation) bool
	CanViewUser(ctx context.Context, subject, target uuid.UUID) (bool, error)
}

// OrganisationServiceInterface defines organisation and user queries for an authenticated subject
type OrganisationServiceInterface interface {
	ListOrganisations(ctx context.Context, subject uuid.UUID) (*OrganisationListResponse, error)
	GetOrganisation(ctx context.Context, subject, orgID uuid.UUID) (*OrganisationResponse, error)
	CreateOrganisation(ctx context.Context, subject uuid.UUID, req *CreateOrganisationRequest) (*OrganisationResponse, error)
	AddMember(ctx context.Context, subject, orgID uuid.UUID, req *AddMemberRequest) error
	GetUser(ctx context.Context, subject, targetID uuid.UUID) (*UserResponse, error)
}
