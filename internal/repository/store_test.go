package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"identity-org-backend/internal/database/models"
	apperrors "identity-org-backend/internal/errors"
	"identity-org-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CredentialStoreTestSuite exercises the store against an in-memory SQLite database
type CredentialStoreTestSuite struct {
	suite.Suite
	ctx       context.Context
	db        *gorm.DB
	store     *CredentialStore
	factories *testutils.FactorySet
}

// SetupTest gives every test a fresh database
func (suite *CredentialStoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.store = NewCredentialStore(suite.db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *CredentialStoreTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.store.CreateUser(suite.ctx, user))
	return user
}

func (suite *CredentialStoreTestSuite) createOrganisation(ownerID uuid.UUID, name string, at time.Time) *models.Organisation {
	org := suite.factories.Organisation.CreatedAt(ownerID, name, at)
	suite.Require().NoError(suite.store.CreateOrganisation(suite.ctx, org))
	return org
}

func (suite *CredentialStoreTestSuite) countRows(model interface{}) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}

// TestCreateAndFindUser round-trips a user by id and by email
func (suite *CredentialStoreTestSuite) TestCreateAndFindUser() {
	user := suite.factories.User.WithEmail("john@example.com")
	phone := "+447400123456"
	user.Phone = &phone
	suite.Require().NoError(suite.store.CreateUser(suite.ctx, user))

	byID, err := suite.store.FindUserByID(suite.ctx, user.UserID)
	suite.Require().NoError(err)
	suite.Equal("john@example.com", byID.Email)
	suite.Equal(testutils.TestPasswordDigest, byID.PasswordDigest)
	suite.Require().NotNil(byID.Phone)
	suite.Equal(phone, *byID.Phone)

	byEmail, err := suite.store.FindUserByEmail(suite.ctx, "john@example.com")
	suite.Require().NoError(err)
	suite.Equal(user.UserID, byEmail.UserID)
}

// TestCreateUserDuplicateEmail leaves exactly one row behind
func (suite *CredentialStoreTestSuite) TestCreateUserDuplicateEmail() {
	suite.Require().NoError(suite.store.CreateUser(suite.ctx, suite.factories.User.WithEmail("john@example.com")))

	err := suite.store.CreateUser(suite.ctx, suite.factories.User.WithEmail("john@example.com"))

	suite.ErrorIs(err, apperrors.ErrEmailExists)
	suite.Equal(int64(1), suite.countRows(&models.User{}))
}

// TestEmailIsCaseSensitive treats differently cased addresses as distinct
func (suite *CredentialStoreTestSuite) TestEmailIsCaseSensitive() {
	suite.Require().NoError(suite.store.CreateUser(suite.ctx, suite.factories.User.WithEmail("john@example.com")))
	suite.Require().NoError(suite.store.CreateUser(suite.ctx, suite.factories.User.WithEmail("John@Example.com")))

	_, err := suite.store.FindUserByEmail(suite.ctx, "JOHN@EXAMPLE.COM")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestFindMissingRecords returns typed not-found errors
func (suite *CredentialStoreTestSuite) TestFindMissingRecords() {
	_, err := suite.store.FindUserByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = suite.store.FindUserByEmail(suite.ctx, "nobody@example.com")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = suite.store.FindOrganisationByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrOrganisationNotFound)

	_, err = suite.store.FindOrganisationByOwnerAndName(suite.ctx, uuid.New(), "Acme")
	suite.ErrorIs(err, apperrors.ErrOrganisationNotFound)
}

// TestOrganisationNameUniquePerOwner allows the same name for different owners only
func (suite *CredentialStoreTestSuite) TestOrganisationNameUniquePerOwner() {
	alice := suite.createUser()
	bob := suite.createUser()
	suite.createOrganisation(alice.UserID, "Acme", time.Now())

	err := suite.store.CreateOrganisation(suite.ctx, suite.factories.Organisation.WithName(alice.UserID, "Acme"))
	suite.ErrorIs(err, apperrors.ErrOrganisationNameExists)

	err = suite.store.CreateOrganisation(suite.ctx, suite.factories.Organisation.WithName(bob.UserID, "Acme"))
	suite.NoError(err)

	found, err := suite.store.FindOrganisationByOwnerAndName(suite.ctx, bob.UserID, "Acme")
	suite.Require().NoError(err)
	suite.Equal(bob.UserID, found.OwnerID)
}

// TestOrganisationRequiresExistingOwner relies on the foreign key
func (suite *CredentialStoreTestSuite) TestOrganisationRequiresExistingOwner() {
	err := suite.store.CreateOrganisation(suite.ctx, suite.factories.Organisation.Create(uuid.New()))

	suite.Error(err)
	suite.Equal(int64(0), suite.countRows(&models.Organisation{}))
}

type foreignKey struct {
	Table    string `gorm:"column:table"`
	From     string `gorm:"column:from"`
	To       string `gorm:"column:to"`
	OnDelete string `gorm:"column:on_delete"`
}

func (suite *CredentialStoreTestSuite) foreignKeys(table string) []foreignKey {
	var keys []foreignKey
	suite.Require().NoError(suite.db.Raw("SELECT * FROM pragma_foreign_key_list(?)", table).Scan(&keys).Error)
	return keys
}

// TestMembershipOwnsForeignKeys keeps the references on the join table
func (suite *CredentialStoreTestSuite) TestMembershipOwnsForeignKeys() {
	suite.Empty(suite.foreignKeys("users"))
	suite.ElementsMatch([]foreignKey{
		{Table: "users", From: "owner_id", To: "user_id", OnDelete: "NO ACTION"},
	}, suite.foreignKeys("organisations"))
	suite.ElementsMatch([]foreignKey{
		{Table: "users", From: "user_id", To: "user_id", OnDelete: "CASCADE"},
		{Table: "organisations", From: "org_id", To: "org_id", OnDelete: "CASCADE"},
	}, suite.foreignKeys("memberships"))

	owner := suite.createUser()
	org := suite.createOrganisation(owner.UserID, "Acme", time.Now())
	suite.Require().NoError(suite.store.AddMember(suite.ctx, org.OrgID, owner.UserID))

	suite.Require().NoError(suite.db.Delete(&models.Organisation{}, "org_id = ?", org.OrgID).Error)
	suite.Equal(int64(0), suite.countRows(&models.Membership{}))
}

// TestAddMemberTwice rejects the second insert without a duplicate row
func (suite *CredentialStoreTestSuite) TestAddMemberTwice() {
	owner := suite.createUser()
	org := suite.createOrganisation(owner.UserID, "Acme", time.Now())

	suite.Require().NoError(suite.store.AddMember(suite.ctx, org.OrgID, owner.UserID))
	err := suite.store.AddMember(suite.ctx, org.OrgID, owner.UserID)

	suite.ErrorIs(err, apperrors.ErrAlreadyMember)
	suite.Equal(int64(1), suite.countRows(&models.Membership{}))
}

// TestIsMemberAndIsOwner distinguishes ownership from membership
func (suite *CredentialStoreTestSuite) TestIsMemberAndIsOwner() {
	owner := suite.createUser()
	member := suite.createUser()
	outsider := suite.createUser()
	org := suite.createOrganisation(owner.UserID, "Acme", time.Now())
	suite.Require().NoError(suite.store.AddMember(suite.ctx, org.OrgID, member.UserID))

	isMember, err := suite.store.IsMember(suite.ctx, org.OrgID, member.UserID)
	suite.NoError(err)
	suite.True(isMember)

	isMember, err = suite.store.IsMember(suite.ctx, org.OrgID, outsider.UserID)
	suite.NoError(err)
	suite.False(isMember)

	isOwner, err := suite.store.IsOwner(suite.ctx, org.OrgID, owner.UserID)
	suite.NoError(err)
	suite.True(isOwner)

	isOwner, err = suite.store.IsOwner(suite.ctx, org.OrgID, member.UserID)
	suite.NoError(err)
	suite.False(isOwner)
}

// TestOrganisationsFor lists owned and joined organisations once each, oldest first
func (suite *CredentialStoreTestSuite) TestOrganisationsFor() {
	alice := suite.createUser()
	bob := suite.createUser()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	owned := suite.createOrganisation(alice.UserID, "Alice HQ", base.Add(2*time.Hour))
	suite.Require().NoError(suite.store.AddMember(suite.ctx, owned.OrgID, alice.UserID))
	joined := suite.createOrganisation(bob.UserID, "Bob HQ", base)
	suite.Require().NoError(suite.store.AddMember(suite.ctx, joined.OrgID, alice.UserID))
	suite.createOrganisation(bob.UserID, "Bob Private", base.Add(time.Hour))

	orgs, err := suite.store.OrganisationsFor(suite.ctx, alice.UserID)

	suite.Require().NoError(err)
	suite.Require().Len(orgs, 2)
	suite.Equal(joined.OrgID, orgs[0].OrgID)
	suite.Equal(owned.OrgID, orgs[1].OrgID)
}

// TestOrganisationsForUserWithoutAny returns an empty result
func (suite *CredentialStoreTestSuite) TestOrganisationsForUserWithoutAny() {
	user := suite.createUser()

	orgs, err := suite.store.OrganisationsFor(suite.ctx, user.UserID)

	suite.NoError(err)
	suite.Empty(orgs)
}

// TestTransactionRollsBack discards every write when the callback fails
func (suite *CredentialStoreTestSuite) TestTransactionRollsBack() {
	user := suite.factories.User.Create()
	boom := errors.New("boom")

	err := suite.store.Transaction(suite.ctx, func(tx CredentialStoreInterface) error {
		if err := tx.CreateUser(suite.ctx, user); err != nil {
			return err
		}
		if err := tx.CreateOrganisation(suite.ctx, suite.factories.Organisation.Create(user.UserID)); err != nil {
			return err
		}
		return boom
	})

	suite.ErrorIs(err, boom)
	suite.Equal(int64(0), suite.countRows(&models.User{}))
	suite.Equal(int64(0), suite.countRows(&models.Organisation{}))
}

// TestTransactionReturnsTypedErrors keeps translated errors intact through the transaction
func (suite *CredentialStoreTestSuite) TestTransactionReturnsTypedErrors() {
	suite.Require().NoError(suite.store.CreateUser(suite.ctx, suite.factories.User.WithEmail("john@example.com")))

	err := suite.store.Transaction(suite.ctx, func(tx CredentialStoreInterface) error {
		return tx.CreateUser(suite.ctx, suite.factories.User.WithEmail("john@example.com"))
	})

	suite.ErrorIs(err, apperrors.ErrEmailExists)
	suite.Equal(int64(1), suite.countRows(&models.User{}))
}

// TestTransactionCommits persists every write on success
func (suite *CredentialStoreTestSuite) TestTransactionCommits() {
	user := suite.factories.User.Create()
	org := suite.factories.Organisation.Create(user.UserID)

	err := suite.store.Transaction(suite.ctx, func(tx CredentialStoreInterface) error {
		if err := tx.CreateUser(suite.ctx, user); err != nil {
			return err
		}
		if err := tx.CreateOrganisation(suite.ctx, org); err != nil {
			return err
		}
		return tx.AddMember(suite.ctx, org.OrgID, user.UserID)
	})

	suite.Require().NoError(err)
	isMember, err := suite.store.IsMember(suite.ctx, org.OrgID, user.UserID)
	suite.NoError(err)
	suite.True(isMember)
}

// TestCredentialStoreTestSuite runs the test suite
func TestCredentialStoreTestSuite(t *testing.T) {
	suite.Run(t, new(CredentialStoreTestSuite))
}
