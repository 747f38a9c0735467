package testutils

import (
	"time"

	"identity-org-backend/internal/database/models"

	"github.com/google/uuid"
)

// TestPasswordDigest is stored on factory users; it is not a valid argon2id digest.
const TestPasswordDigest = "test-digest"

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		UserID:         id,
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john." + id.String()[:8] + "@example.com",
		PasswordDigest: TestPasswordDigest,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithName sets custom first and last names for the user
func (f *UserFactory) WithName(firstName, lastName string) *models.User {
	user := f.Create()
	user.FirstName = firstName
	user.LastName = lastName
	return user
}

// OrganisationFactory provides methods to create test Organisation data
type OrganisationFactory struct{}

// NewOrganisationFactory creates a new OrganisationFactory
func NewOrganisationFactory() *OrganisationFactory {
	return &OrganisationFactory{}
}

// Create creates a test Organisation owned by ownerID
func (f *OrganisationFactory) Create(ownerID uuid.UUID) *models.Organisation {
	description := "An organisation for testing purposes"
	return &models.Organisation{
		OrgID:       uuid.New(),
		Name:        "Test Organisation",
		Description: &description,
		OwnerID:     ownerID,
	}
}

// WithName sets a custom name for the organisation
func (f *OrganisationFactory) WithName(ownerID uuid.UUID, name string) *models.Organisation {
	org := f.Create(ownerID)
	org.Name = name
	return org
}

// CreatedAt pins the creation time so listing order is deterministic
func (f *OrganisationFactory) CreatedAt(ownerID uuid.UUID, name string, at time.Time) *models.Organisation {
	org := f.WithName(ownerID, name)
	org.CreatedAt = at
	org.UpdatedAt = at
	return org
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organisation *OrganisationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organisation: NewOrganisationFactory(),
	}
}
