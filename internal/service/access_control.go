package service

import (
	"context"
	"fmt"

	"identity-org-backend/internal/database/models"
	"identity-org-backend/internal/repository"

	"github.com/google/uuid"
)

// AccessControlService answers owner/member visibility questions
type AccessControlService struct {
	store repository.CredentialStoreInterface
}

// NewAccessControlService creates a new access control service
func NewAccessControlService(store repository.CredentialStoreInterface) *AccessControlService {
	return &AccessControlService{store: store}
}

// CanViewOrganisation allows the owner and any member
func (s *AccessControlService) CanViewOrganisation(ctx context.Context, subject uuid.UUID, org *models.Organisation) (bool, error) {
	if org.OwnerID == subject {
		return true, nil
	}
	member, err := s.store.IsMember(ctx, org.OrgID, subject)
	if err != nil {
		return false, fmt.Errorf("failed to check organisation membership: %w", err)
	}
	return member, nil
}

// CanManageOrganisation allows the owner only
func (s *AccessControlService) CanManageOrganisation(subject uuid.UUID, org *models.Organisation) bool {
	return org.OwnerID == subject
}

// CanViewUser allows a user to see themselves and anyone sharing at least one organisation
func (s *AccessControlService) CanViewUser(ctx context.Context, subject, target uuid.UUID) (bool, error) {
	if subject == target {
		return true, nil
	}

	subjectOrgs, err := s.store.OrganisationsFor(ctx, subject)
	if err != nil {
		return false, fmt.Errorf("failed to list subject organisations: %w", err)
	}
	if len(subjectOrgs) == 0 {
		return false, nil
	}

	shared := make(map[uuid.UUID]struct{}, len(subjectOrgs))
	for _, org := range subjectOrgs {
		shared[org.OrgID] = struct{}{}
	}

	targetOrgs, err := s.store.OrganisationsFor(ctx, target)
	if err != nil {
		return false, fmt.Errorf("failed to list target organisations: %w", err)
	}
	for _, org := range targetOrgs {
		if _, ok := shared[org.OrgID]; ok {
			return true, nil
		}
	}
	return false, nil
}
