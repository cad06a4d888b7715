package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bs23/ems_backend/internal/core/domain"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

type NotificationServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockNotificationRepository
	mockSender *MockSender
	service    portssvc.NotificationSvcFacade
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockNotificationRepository)
	s.mockSender = new(MockSender)
	s.service = services.NewNotificationService(s.mockRepo, s.mockSender)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (s *NotificationServiceTestSuite) TestSendAndLogRecordsSuccess() {
	ctx := context.Background()
	s.mockSender.On("Send", ctx, "jane@example.com", "Subject", "Body").Return(nil).Once()
	s.mockRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.RecipientEmail == "jane@example.com" && n.Sent && n.Error == nil
	})).Return(&domain.Notification{NotificationID: 1, Sent: true}, nil).Once()

	entry := s.service.SendAndLog(ctx, "jane@example.com", "Subject", "Body")

	s.Require().NotNil(entry)
	s.True(entry.Sent)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *NotificationServiceTestSuite) TestSendAndLogRecordsFailureWithoutPropagating() {
	ctx := context.Background()
	s.mockSender.On("Send", ctx, "jane@example.com", "Subject", "Body").
		Return(errors.New("smtp: connection refused")).Once()
	s.mockRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return !n.Sent && n.Error != nil
	})).Return(&domain.Notification{NotificationID: 2, Sent: false}, nil).Once()

	entry := s.service.SendAndLog(ctx, "jane@example.com", "Subject", "Body")

	s.Require().NotNil(entry)
	s.False(entry.Sent)
}

func (s *NotificationServiceTestSuite) TestSendAndLogSkipsInvalidRecipient() {
	ctx := context.Background()
	s.mockRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return !n.Sent && n.Error != nil
	})).Return(&domain.Notification{NotificationID: 3}, nil).Once()

	entry := s.service.SendAndLog(ctx, "not-an-address", "Subject", "Body")

	s.Require().NotNil(entry)
	s.mockSender.AssertNotCalled(s.T(), "Send")
}
