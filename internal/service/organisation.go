package service

import (
	"context"
	"fmt"
	"strings"

	"identity-org-backend/internal/database/models"
	apperrors "identity-org-backend/internal/errors"
	"identity-org-backend/internal/logger"
	"identity-org-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateOrganisationRequest represents the request to create an organisation
type CreateOrganisationRequest struct {
	Name        string  `json:"name" validate:"required,max=80" example:"Acme"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200" example:"Widgets and gadgets"`
}

// AddMemberRequest represents the request to add a user to an organisation
type AddMemberRequest struct {
	UserID string `json:"userId" validate:"required,uuid" example:"6f1c2a9e-4d7b-4c55-9a51-3b0f4f0c2d11"`
}

// OrganisationResponse is the public view of an organisation
type OrganisationResponse struct {
	OrgID       uuid.UUID `json:"orgId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}

// OrganisationListResponse wraps the organisations visible to a user
type OrganisationListResponse struct {
	Organisations []OrganisationResponse `json:"organisations"`
}

// OrganisationService handles organisation queries and membership changes
type OrganisationService struct {
	store     repository.CredentialStoreInterface
	access    AccessControlServiceInterface
	validator *validator.Validate
}

// NewOrganisationService creates a new organisation service
func NewOrganisationService(store repository.CredentialStoreInterface, access AccessControlServiceInterface, validator *validator.Validate) *OrganisationService {
	return &OrganisationService{
		store:     store,
		access:    access,
		validator: validator,
	}
}

// ListOrganisations returns every organisation the subject owns or belongs to
func (s *OrganisationService) ListOrganisations(ctx context.Context, subject uuid.UUID) (*OrganisationListResponse, error) {
	orgs, err := s.store.OrganisationsFor(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list organisations: %w", err)
	}

	resp := &OrganisationListResponse{
		Organisations: make([]OrganisationResponse, 0, len(orgs)),
	}
	for i := range orgs {
		resp.Organisations = append(resp.Organisations, toOrganisationResponse(&orgs[i]))
	}
	return resp, nil
}

// GetOrganisation returns an organisation the subject may view
func (s *OrganisationService) GetOrganisation(ctx context.Context, subject, orgID uuid.UUID) (*OrganisationResponse, error) {
	org, err := s.findOrganisation(ctx, orgID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.access.CanViewOrganisation(ctx, subject, org)
	if err != nil {
		return nil, err
	}
	if !allowed {
		logger.WithContext(ctx).WithField("org_id", orgID.String()).Warn("organisation access denied")
		return nil, apperrors.ErrOrganisationAccessDenied
	}

	resp := toOrganisationResponse(org)
	return &resp, nil
}

// CreateOrganisation creates an organisation owned by the subject and makes the subject a member
func (s *OrganisationService) CreateOrganisation(ctx context.Context, subject uuid.UUID, req *CreateOrganisationRequest) (*OrganisationResponse, error) {
	log := logger.WithContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Description = trimOptional(req.Description)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	_, err := s.store.FindOrganisationByOwnerAndName(ctx, subject, req.Name)
	switch {
	case err == nil:
		log.WithField("name", req.Name).Warn("organisation name already used by owner")
		return nil, apperrors.ErrOrganisationNameExists
	case !apperrors.IsNotFound(err):
		return nil, fmt.Errorf("failed to check existing organisation by name: %w", err)
	}

	org := &models.Organisation{
		OrgID:       uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     subject,
	}

	err = s.store.Transaction(ctx, func(tx repository.CredentialStoreInterface) error {
		if err := tx.CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return tx.AddMember(ctx, org.OrgID, subject)
	})
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			log.WithError(err).Warn("organisation creation rejected by unique constraint")
			return nil, err
		}
		return nil, fmt.Errorf("failed to create organisation: %w", err)
	}

	log.WithField("org_id", org.OrgID.String()).Info("organisation created")

	resp := toOrganisationResponse(org)
	return &resp, nil
}

// AddMember adds a user to an organisation owned by the subject
func (s *OrganisationService) AddMember(ctx context.Context, subject, orgID uuid.UUID, req *AddMemberRequest) error {
	log := logger.WithContext(ctx).WithField("org_id", orgID.String())

	req.UserID = strings.TrimSpace(req.UserID)
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}
	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		return apperrors.ValidationErrors{{Field: "userId", Message: "User ID must be a valid UUID"}}
	}

	org, err := s.findOrganisation(ctx, orgID)
	if err != nil {
		return err
	}
	if !s.access.CanManageOrganisation(subject, org) {
		log.Warn("add member denied: subject is not the owner")
		return apperrors.ErrOrganisationAccessDenied
	}

	if _, err := s.findUser(ctx, targetID); err != nil {
		return err
	}

	member, err := s.store.IsMember(ctx, orgID, targetID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if member {
		log.WithField("target_user_id", targetID.String()).Warn("user already in organisation")
		return apperrors.ErrAlreadyMember
	}

	if err := s.store.AddMember(ctx, orgID, targetID); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return err
		}
		return fmt.Errorf("failed to add member: %w", err)
	}

	log.WithField("target_user_id", targetID.String()).Info("user added to organisation")
	return nil
}

// GetUser returns a user the subject may view
func (s *OrganisationService) GetUser(ctx context.Context, subject, targetID uuid.UUID) (*UserResponse, error) {
	user, err := s.findUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.access.CanViewUser(ctx, subject, targetID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		logger.WithContext(ctx).WithField("target_user_id", targetID.String()).Warn("user access denied")
		return nil, apperrors.ErrUserAccessDenied
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *OrganisationService) findOrganisation(ctx context.Context, orgID uuid.UUID) (*models.Organisation, error) {
	org, err := s.store.FindOrganisationByID(ctx, orgID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			logger.WithContext(ctx).WithField("org_id", orgID.String()).Info("organisation not found")
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("failed to get organisation: %w", err)
	}
	return org, nil
}

func (s *OrganisationService) findUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			logger.WithContext(ctx).WithField("target_user_id", userID.String()).Info("user not found")
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func toOrganisationResponse(org *models.Organisation) OrganisationResponse {
	return OrganisationResponse{
		OrgID:       org.OrgID,
		Name:        org.Name,
		Description: org.Description,
	}
}
