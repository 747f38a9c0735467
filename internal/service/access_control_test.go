package service_test

import (
	"context"
	"errors"
	"testing"

	"identity-org-backend/internal/database/models"
	"identity-org-backend/internal/mocks"
	"identity-org-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AccessControlServiceTestSuite defines the test suite for AccessControlService
type AccessControlServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	ctx       context.Context
	mockStore *mocks.MockCredentialStoreInterface
	service   *service.AccessControlService
	owner     uuid.UUID
	stranger  uuid.UUID
	org       *models.Organisation
}

// SetupTest sets up the test suite
func (suite *AccessControlServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockStore = mocks.NewMockCredentialStoreInterface(suite.ctrl)
	suite.service = service.NewAccessControlService(suite.mockStore)

	suite.owner = uuid.New()
	suite.stranger = uuid.New()
	suite.org = &models.Organisation{OrgID: uuid.New(), Name: "Acme", OwnerID: suite.owner}
}

// TearDownTest cleans up after each test
func (suite *AccessControlServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccessControlServiceTestSuite) TestOwnerCanViewWithoutLookup() {
	allowed, err := suite.service.CanViewOrganisation(suite.ctx, suite.owner, suite.org)

	suite.NoError(err)
	suite.True(allowed)
}

func (suite *AccessControlServiceTestSuite) TestMemberCanView() {
	suite.mockStore.EXPECT().IsMember(gomock.Any(), suite.org.OrgID, suite.stranger).Return(true, nil)

	allowed, err := suite.service.CanViewOrganisation(suite.ctx, suite.stranger, suite.org)

	suite.NoError(err)
	suite.True(allowed)
}

func (suite *AccessControlServiceTestSuite) TestOutsiderCannotView() {
	suite.mockStore.EXPECT().IsMember(gomock.Any(), suite.org.OrgID, suite.stranger).Return(false, nil)

	allowed, err := suite.service.CanViewOrganisation(suite.ctx, suite.stranger, suite.org)

	suite.NoError(err)
	suite.False(allowed)
}

func (suite *AccessControlServiceTestSuite) TestViewOrganisationStoreError() {
	suite.mockStore.EXPECT().IsMember(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("timeout"))

	allowed, err := suite.service.CanViewOrganisation(suite.ctx, suite.stranger, suite.org)

	suite.Error(err)
	suite.False(allowed)
}

func (suite *AccessControlServiceTestSuite) TestOnlyOwnerCanManage() {
	suite.True(suite.service.CanManageOrganisation(suite.owner, suite.org))
	suite.False(suite.service.CanManageOrganisation(suite.stranger, suite.org))
}

func (suite *AccessControlServiceTestSuite) TestUserCanViewSelf() {
	allowed, err := suite.service.CanViewUser(suite.ctx, suite.stranger, suite.stranger)

	suite.NoError(err)
	suite.True(allowed)
}

func (suite *AccessControlServiceTestSuite) TestSharedOrganisationGrantsUserView() {
	shared := models.Organisation{OrgID: uuid.New()}
	suite.mockStore.EXPECT().OrganisationsFor(gomock.Any(), suite.owner).
		Return([]models.Organisation{{OrgID: uuid.New()}, shared}, nil)
	suite.mockStore.EXPECT().OrganisationsFor(gomock.Any(), suite.stranger).
		Return([]models.Organisation{shared}, nil)

	allowed, err := suite.service.CanViewUser(suite.ctx, suite.owner, suite.stranger)

	suite.NoError(err)
	suite.True(allowed)
}

func (suite *AccessControlServiceTestSuite) TestDisjointOrganisationsDenyUserView() {
	suite.mockStore.EXPECT().OrganisationsFor(gomock.Any(), suite.owner).
		Return([]models.Organisation{{OrgID: uuid.New()}}, nil)
	suite.mockStore.EXPECT().OrganisationsFor(gomock.Any(), suite.stranger).
		Return([]models.Organisation{{OrgID: uuid.New()}}, nil)

	allowed, err := suite.service.CanViewUser(suite.ctx, suite.owner, suite.stranger)

	suite.NoError(err)
	suite.False(allowed)
}

func (suite *AccessControlServiceTestSuite) TestSubjectWithoutOrganisationsSkipsTargetLookup() {
	suite.mockStore.EXPECT().OrganisationsFor(gomock.Any(), suite.owner).Return(nil, nil)

	allowed, err := suite.service.CanViewUser(suite.ctx, suite.owner, suite.stranger)

	suite.NoError(err)
	suite.False(allowed)
}

// TestAccessControlServiceTestSuite runs the test suite
func TestAccessControlServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccessControlServiceTestSuite))
}
