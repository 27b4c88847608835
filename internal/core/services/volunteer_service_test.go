package services_test

import (
	"context"
	"testing"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/core/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VolunteerServiceTestSuite struct {
	suite.Suite
	mockVolunteerRepo *MockVolunteerRepository
	mockEventRepo     *MockEventRepository
	mockUserRepo      *MockUserRepository
	service           portssvc.VolunteerSvcFacade
}

func (suite *VolunteerServiceTestSuite) SetupTest() {
	suite.mockVolunteerRepo = new(MockVolunteerRepository)
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewVolunteerService(suite.mockVolunteerRepo, suite.mockEventRepo, suite.mockUserRepo)
}

func publishedEvent(target int) *domain.Event {
	return &domain.Event{
		EventID:         uuid.NewString(),
		Title:           "Vide-grenier",
		VolunteerTarget: target,
		IsPublished:     true,
	}
}

func signupReq() dto.VolunteerSignupRequest {
	return dto.VolunteerSignupRequest{
		Name:  "Claire Dupont",
		Email: "Claire.Dupont@example.org",
		Shift: "matin",
	}
}

func (suite *VolunteerServiceTestSuite) TestSignUp_Success() {
	ctx := context.Background()
	event := publishedEvent(5)
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockVolunteerRepo.On("SaveSignup", ctx, mock.MatchedBy(func(s domain.VolunteerSignup) bool {
		// Email is normalized before it reaches storage.
		return s.EventID == event.EventID && s.Email == "claire.dupont@example.org"
	})).Return(nil).Once()

	signup, err := suite.service.SignUp(ctx, event.EventID, signupReq())

	suite.Require().NoError(err)
	suite.NotEmpty(signup.SignupID)
	suite.Equal("claire.dupont@example.org", signup.Email)
	suite.mockVolunteerRepo.AssertExpectations(suite.T())
}

func (suite *VolunteerServiceTestSuite) TestSignUp_CapacityReachedIsConflict() {
	ctx := context.Background()
	event := publishedEvent(1)
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	// The storage layer is the arbiter of capacity; the service just relays.
	suite.mockVolunteerRepo.On("SaveSignup", ctx, mock.AnythingOfType("domain.VolunteerSignup")).
		Return(apperrors.ErrConflict).Once()

	_, err := suite.service.SignUp(ctx, event.EventID, signupReq())

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
}

func (suite *VolunteerServiceTestSuite) TestSignUp_DuplicateEmailIsDuplicate() {
	ctx := context.Background()
	event := publishedEvent(5)
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockVolunteerRepo.On("SaveSignup", ctx, mock.AnythingOfType("domain.VolunteerSignup")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.SignUp(ctx, event.EventID, signupReq())

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *VolunteerServiceTestSuite) TestSignUp_UnpublishedEventInvisible() {
	ctx := context.Background()
	event := publishedEvent(5)
	event.IsPublished = false
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	_, err := suite.service.SignUp(ctx, event.EventID, signupReq())

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVolunteerRepo.AssertNotCalled(suite.T(), "SaveSignup", mock.Anything, mock.Anything)
}

func (suite *VolunteerServiceTestSuite) TestSignUp_EventWithoutVolunteersRejected() {
	ctx := context.Background()
	event := publishedEvent(0)
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	_, err := suite.service.SignUp(ctx, event.EventID, signupReq())

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VolunteerServiceTestSuite) TestListSignups_RequiresRole() {
	ctx := context.Background()
	caller := &domain.User{UserID: uuid.NewString(), Role: domain.RoleMembre}
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).Return(caller, nil).Once()

	_, err := suite.service.ListSignups(ctx, uuid.NewString(), caller.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *VolunteerServiceTestSuite) TestCancelSignup_FreesSlot() {
	ctx := context.Background()
	caller := &domain.User{UserID: uuid.NewString(), Role: domain.RoleSecretaire}
	event := publishedEvent(2)
	signup := domain.VolunteerSignup{SignupID: uuid.NewString(), EventID: event.EventID}

	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).Return(caller, nil).Once()
	suite.mockVolunteerRepo.On("FindSignupsByEvent", ctx, event.EventID).
		Return([]domain.VolunteerSignup{signup}, nil).Once()
	suite.mockVolunteerRepo.On("DeleteSignup", ctx, signup.SignupID).Return(nil).Once()

	err := suite.service.CancelSignup(ctx, event.EventID, signup.SignupID, caller.UserID)

	suite.Require().NoError(err)
	suite.mockVolunteerRepo.AssertExpectations(suite.T())
}

func (suite *VolunteerServiceTestSuite) TestCancelSignup_WrongEventNotFound() {
	ctx := context.Background()
	caller := &domain.User{UserID: uuid.NewString(), Role: domain.RoleSecretaire}
	eventID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).Return(caller, nil).Once()
	suite.mockVolunteerRepo.On("FindSignupsByEvent", ctx, eventID).
		Return([]domain.VolunteerSignup{}, nil).Once()

	err := suite.service.CancelSignup(ctx, eventID, uuid.NewString(), caller.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVolunteerRepo.AssertNotCalled(suite.T(), "DeleteSignup", mock.Anything, mock.Anything)
}

func TestVolunteerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VolunteerServiceTestSuite))
}
