package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"identity-org-backend/internal/database/models"
	apperrors "identity-org-backend/internal/errors"
	"identity-org-backend/internal/logger"
	"identity-org-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultOrganisationSuffix = "'s Organisation"
	maxOrganisationNameLength = 80
	dummyPassword             = "timing-equaliser-password"
)

// RegisterRequest represents the request to register a user
type RegisterRequest struct {
	FirstName string  `json:"firstName" validate:"required,max=100" example:"John"`
	LastName  string  `json:"lastName" validate:"required,max=100" example:"Doe"`
	Email     string  `json:"email" validate:"required,email,max=255" example:"john@example.com"`
	Password  string  `json:"password" validate:"required" example:"s3cret-pass"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32" example:"+447400123456"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"john@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	UserID    uuid.UUID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// IdentityService handles registration and login
type IdentityService struct {
	store     repository.CredentialStoreInterface
	hasher    PasswordHasher
	tokens    TokenIssuer
	phones    PhoneNormalizer
	validator *validator.Validate

	dummyOnce   sync.Once
	dummyDigest string
}

// NewIdentityService creates a new identity service. phones may be nil.
func NewIdentityService(store repository.CredentialStoreInterface, hasher PasswordHasher, tokens TokenIssuer, phones PhoneNormalizer, validator *validator.Validate) *IdentityService {
	return &IdentityService{
		store:     store,
		hasher:    hasher,
		tokens:    tokens,
		phones:    phones,
		validator: validator,
	}
}

// Register creates a user together with a default organisation and returns a fresh token.
// The user, organisation and membership are written in one transaction.
func (s *IdentityService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	log := logger.WithContext(ctx)

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = trimOptional(req.Phone)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	_, err := s.store.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Warn("registration rejected: email already registered")
		return nil, apperrors.ErrEmailExists
	case !apperrors.IsNotFound(err):
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UserID:         uuid.New(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PasswordDigest: digest,
		Phone:          s.normalisePhone(req.Phone),
	}
	org := &models.Organisation{
		OrgID:   uuid.New(),
		Name:    defaultOrganisationName(user.FirstName),
		OwnerID: user.UserID,
	}

	err = s.store.Transaction(ctx, func(tx repository.CredentialStoreInterface) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}
		if err := tx.CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return tx.AddMember(ctx, org.OrgID, user.UserID)
	})
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			log.WithError(err).Warn("registration rejected by unique constraint")
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"user_id": user.UserID.String(),
		"org_id":  org.OrgID.String(),
	}).Info("user registered")

	return s.authResponse(user)
}

// Login verifies credentials. Unknown emails and wrong passwords fail identically.
func (s *IdentityService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	log := logger.WithContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.store.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		// Spend the same work as a real verification.
		_, _ = s.hasher.Verify(req.Password, s.timingDigest())
		log.Info("login failed")
		return nil, apperrors.ErrAuthenticationFailed
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordDigest)
	if err != nil {
		log.WithError(err).WithField("user_id", user.UserID.String()).Error("stored password digest is unreadable")
		return nil, apperrors.ErrAuthenticationFailed
	}
	if !ok {
		log.Info("login failed")
		return nil, apperrors.ErrAuthenticationFailed
	}

	return s.authResponse(user)
}

func (s *IdentityService) authResponse(user *models.User) (*AuthResponse, error) {
	token, err := s.tokens.Issue(user.UserID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{
		AccessToken: token,
		User:        toUserResponse(user),
	}, nil
}

func (s *IdentityService) timingDigest() string {
	s.dummyOnce.Do(func() {
		digest, err := s.hasher.Hash(dummyPassword)
		if err == nil {
			s.dummyDigest = digest
		}
	})
	return s.dummyDigest
}

func (s *IdentityService) normalisePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	value := *phone
	if s.phones != nil {
		value = s.phones.NormalizeE164(value)
	}
	return &value
}

// defaultOrganisationName builds "<firstName>'s Organisation", shortening the first name
// so the result fits the organisation name limit.
func defaultOrganisationName(firstName string) string {
	room := maxOrganisationNameLength - utf8.RuneCountInString(defaultOrganisationSuffix)
	if utf8.RuneCountInString(firstName) > room {
		firstName = string([]rune(firstName)[:room])
	}
	return firstName + defaultOrganisationSuffix
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}
}
