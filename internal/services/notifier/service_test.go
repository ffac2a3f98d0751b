package notifier_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/spyglass/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/spyglass/internal/common/uuid/mocks"
	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/KirkDiggler/spyglass/internal/repositories/notification"
	repoMocks "github.com/KirkDiggler/spyglass/internal/repositories/notification/mocks"
	"github.com/KirkDiggler/spyglass/internal/services/notifier"
	"github.com/KirkDiggler/spyglass/internal/services/notifier/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotifierServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSender *mocks.MockMessageSender
	mockRepo   *repoMocks.MockRepository
	mockClock  *clockMocks.MockClock
	mockUUID   *uuidMocks.MockUUID
	metrics    *metrics.Mock
	service    notifier.Service
	ctx        context.Context

	testTime      time.Time
	testChannelID string
}

func (s *NotifierServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSender = mocks.NewMockMessageSender(s.mockCtrl)
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.metrics = metrics.NewMock()
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testChannelID = "test-channel-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-notification-id").AnyTimes()

	svc, err := notifier.New(&notifier.Config{
		ChannelID:     s.testChannelID,
		Sender:        s.mockSender,
		Repository:    s.mockRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Metrics:       s.metrics,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *NotifierServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotifierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierServiceTestSuite))
}

func (s *NotifierServiceTestSuite) TestSendDeliversAndRecords() {
	s.mockSender.EXPECT().
		SendMessage(gomock.Any(), s.testChannelID, "Gaben is now Online", true).
		Return(nil)
	s.mockRepo.EXPECT().
		SaveNotification(gomock.Any(), &notification.SaveNotificationInput{
			Notification: &models.Notification{
				ID:     "test-notification-id",
				Source: models.NotificationSourceSteam,
				Text:   "Gaben is now Online",
				SentAt: s.testTime,
			},
		}).
		Return(nil)

	output, err := s.service.Send(s.ctx, &notifier.SendInput{
		Source: models.NotificationSourceSteam,
		Text:   "Gaben is now Online",
		TTS:    true,
		Dedup:  true,
	})

	s.Require().NoError(err)
	s.True(output.Sent)
	s.False(output.Suppressed)
	s.Equal("test-notification-id", output.NotificationID)
	s.Equal("Gaben is now Online", s.service.LastNotification())
	s.Equal(1, s.metrics.NotificationsSent("steam"))
}

func (s *NotifierServiceTestSuite) TestDuplicateIsSuppressed() {
	s.mockSender.EXPECT().SendMessage(gomock.Any(), s.testChannelID, "same text", false).Return(nil).Times(1)
	s.mockRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	first, err := s.service.Send(s.ctx, &notifier.SendInput{Source: models.NotificationSourcePresence, Text: "same text", Dedup: true})
	s.Require().NoError(err)
	s.True(first.Sent)

	second, err := s.service.Send(s.ctx, &notifier.SendInput{Source: models.NotificationSourcePresence, Text: "same text", Dedup: true})
	s.Require().NoError(err)
	s.False(second.Sent)
	s.True(second.Suppressed)
	s.Equal(1, s.metrics.NotificationsSuppressed("presence"))
}

func (s *NotifierServiceTestSuite) TestWithoutDedupRepeatsAreDelivered() {
	s.mockSender.EXPECT().SendMessage(gomock.Any(), s.testChannelID, "match text", true).Return(nil).Times(2)
	s.mockRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		output, err := s.service.Send(s.ctx, &notifier.SendInput{Source: models.NotificationSourceMatch, Text: "match text", TTS: true})
		s.Require().NoError(err)
		s.True(output.Sent)
	}
}

func (s *NotifierServiceTestSuite) TestFailedDeliveryRestoresLast() {
	s.mockSender.EXPECT().SendMessage(gomock.Any(), s.testChannelID, "first", false).Return(nil)
	s.mockRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil)
	_, err := s.service.Send(s.ctx, &notifier.SendInput{Text: "first", Dedup: true})
	s.Require().NoError(err)

	s.mockSender.EXPECT().SendMessage(gomock.Any(), s.testChannelID, "second", false).Return(errors.New("discord down"))
	_, err = s.service.Send(s.ctx, &notifier.SendInput{Source: models.NotificationSourceSteam, Text: "second", Dedup: true})

	s.ErrorIs(err, notifier.ErrDeliveryFailed)
	s.Equal("first", s.service.LastNotification())
	s.Equal(1, s.metrics.NotificationsFailed("steam"))
}

func (s *NotifierServiceTestSuite) TestRepositoryFailureDoesNotFailSend() {
	s.mockSender.EXPECT().SendMessage(gomock.Any(), s.testChannelID, "text", false).Return(nil)
	s.mockRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	output, err := s.service.Send(s.ctx, &notifier.SendInput{Text: "text"})
	s.Require().NoError(err)
	s.True(output.Sent)
}

func (s *NotifierServiceTestSuite) TestEmptyTextRejected() {
	_, err := s.service.Send(s.ctx, &notifier.SendInput{})
	s.ErrorIs(err, notifier.ErrEmptyText)

	_, err = s.service.Send(s.ctx, nil)
	s.ErrorIs(err, notifier.ErrEmptyText)
}

func (s *NotifierServiceTestSuite) TestConcurrentIdenticalSendsDeliverOnce() {
	s.mockSender.EXPECT().SendMessage(gomock.Any(), s.testChannelID, "race", false).Return(nil).Times(1)
	s.mockRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Send(s.ctx, &notifier.SendInput{Text: "race", Dedup: true})
			s.NoError(err)
		}()
	}
	wg.Wait()
}

func (s *NotifierServiceTestSuite) TestNewValidation() {
	_, err := notifier.New(nil)
	s.ErrorIs(err, notifier.ErrNilConfig)

	_, err = notifier.New(&notifier.Config{})
	s.ErrorIs(err, notifier.ErrEmptyChannel)

	_, err = notifier.New(&notifier.Config{ChannelID: "c"})
	s.ErrorIs(err, notifier.ErrNilSender)

	_, err = notifier.New(&notifier.Config{ChannelID: "c", Sender: s.mockSender})
	s.ErrorIs(err, notifier.ErrNilRepository)
}
