package services_test

import (
	"context"
	"errors"
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

type CampaignServiceTestSuite struct {
	suite.Suite
	mockCampaignRepo *MockCampaignRepository
	mockUserRepo     *MockUserRepository
	mockMailer       *MockMailer
	service          portssvc.CampaignSvcFacade
}

func (suite *CampaignServiceTestSuite) SetupTest() {
	suite.mockCampaignRepo = new(MockCampaignRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockMailer = new(MockMailer)
	suite.service = services.NewCampaignService(suite.mockCampaignRepo, suite.mockUserRepo, suite.mockMailer)
}

func (suite *CampaignServiceTestSuite) president() *domain.User {
	user := &domain.User{UserID: uuid.NewString(), Role: domain.RolePresident}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, user.UserID).Return(user, nil)
	return user
}

func draftCampaign() *domain.Campaign {
	return &domain.Campaign{
		CampaignID: uuid.NewString(),
		Subject:    "Assemblée générale 2026",
		BodyHTML:   "<p>Rendez-vous le 14 juin.</p>",
		Status:     domain.CampaignDraft,
	}
}

func (suite *CampaignServiceTestSuite) TestCreateCampaign_StartsAsDraft() {
	ctx := context.Background()
	caller := suite.president()
	suite.mockCampaignRepo.On("SaveCampaign", ctx, mock.MatchedBy(func(c domain.Campaign) bool {
		return c.Status == domain.CampaignDraft && c.CreatedBy == caller.UserID
	})).Return(nil).Once()

	campaign, err := suite.service.CreateCampaign(ctx, dto.CreateCampaignRequest{
		Subject:  "Assemblée générale 2026",
		BodyHTML: "<p>Rendez-vous le 14 juin.</p>",
	}, caller.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.CampaignDraft, campaign.Status)
	suite.Nil(campaign.SentAt)
}

func (suite *CampaignServiceTestSuite) TestSendCampaign_LogsEveryAttempt() {
	ctx := context.Background()
	caller := suite.president()
	campaign := draftCampaign()
	contacts := []domain.Contact{
		{ContactID: uuid.NewString(), Email: "ok@example.org", OptIn: true},
		{ContactID: uuid.NewString(), Email: "down@example.org", OptIn: true},
	}

	suite.mockCampaignRepo.On("FindCampaignByID", ctx, campaign.CampaignID).Return(campaign, nil).Once()
	suite.mockCampaignRepo.On("FindOptedInContacts", ctx).Return(contacts, nil).Once()
	suite.mockMailer.On("Send", ctx, "ok@example.org", campaign.Subject, campaign.BodyHTML).
		Return("msg-123", nil).Once()
	suite.mockMailer.On("Send", ctx, "down@example.org", campaign.Subject, campaign.BodyHTML).
		Return("", errors.New("smtp: connection refused")).Once()
	suite.mockCampaignRepo.On("SaveEmailLog", ctx, mock.MatchedBy(func(l domain.EmailLog) bool {
		return l.Recipient == "ok@example.org" && l.Status == domain.EmailSent && l.ProviderMessageID == "msg-123"
	})).Return(nil).Once()
	suite.mockCampaignRepo.On("SaveEmailLog", ctx, mock.MatchedBy(func(l domain.EmailLog) bool {
		return l.Recipient == "down@example.org" && l.Status == domain.EmailFailed && l.Error != ""
	})).Return(nil).Once()
	suite.mockCampaignRepo.On("UpdateCampaign", ctx, mock.MatchedBy(func(c domain.Campaign) bool {
		return c.Status == domain.CampaignSent && c.SentAt != nil && c.LastUpdatedBy == caller.UserID
	})).Return(nil).Once()

	result, err := suite.service.SendCampaign(ctx, campaign.CampaignID, caller.UserID)

	suite.Require().NoError(err)
	suite.Equal(2, result.Attempted)
	suite.Equal(1, result.Sent)
	suite.Equal(1, result.Failed)
	suite.mockCampaignRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *CampaignServiceTestSuite) TestSendCampaign_AlreadySentIsConflict() {
	ctx := context.Background()
	caller := suite.president()
	campaign := draftCampaign()
	campaign.Status = domain.CampaignSent

	suite.mockCampaignRepo.On("FindCampaignByID", ctx, campaign.CampaignID).Return(campaign, nil).Once()

	_, err := suite.service.SendCampaign(ctx, campaign.CampaignID, caller.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockMailer.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockCampaignRepo.AssertNotCalled(suite.T(), "UpdateCampaign", mock.Anything, mock.Anything)
}

func (suite *CampaignServiceTestSuite) TestSendCampaign_NoContactsStillMarksSent() {
	ctx := context.Background()
	caller := suite.president()
	campaign := draftCampaign()

	suite.mockCampaignRepo.On("FindCampaignByID", ctx, campaign.CampaignID).Return(campaign, nil).Once()
	suite.mockCampaignRepo.On("FindOptedInContacts", ctx).Return([]domain.Contact{}, nil).Once()
	suite.mockCampaignRepo.On("UpdateCampaign", ctx, mock.MatchedBy(func(c domain.Campaign) bool {
		return c.Status == domain.CampaignSent
	})).Return(nil).Once()

	result, err := suite.service.SendCampaign(ctx, campaign.CampaignID, caller.UserID)

	suite.Require().NoError(err)
	suite.Equal(0, result.Attempted)
	suite.mockMailer.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CampaignServiceTestSuite) TestSendCampaign_MembreForbidden() {
	ctx := context.Background()
	caller := &domain.User{UserID: uuid.NewString(), Role: domain.RoleMembre}
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).Return(caller, nil).Once()

	_, err := suite.service.SendCampaign(ctx, uuid.NewString(), caller.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCampaignRepo.AssertNotCalled(suite.T(), "FindCampaignByID", mock.Anything, mock.Anything)
}

func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}
