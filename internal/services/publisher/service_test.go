package publisher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/trenirovka/rosterbot/internal/services/publisher"
	"github.com/trenirovka/rosterbot/internal/services/publisher/mocks"
	"go.uber.org/mock/gomock"
)

type PublisherServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockEditor *mocks.MockEditor
	svc        publisher.Service
	ctx        context.Context

	testChatID int64
	testText   string
}

func (s *PublisherServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockEditor = mocks.NewMockEditor(s.mockCtrl)

	svc, err := publisher.New(&publisher.Config{Editor: s.mockEditor})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
	s.testChatID = int64(-100123)
	s.testText = "rendered status"
}

func TestPublisherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherServiceTestSuite))
}

func (s *PublisherServiceTestSuite) TestNewValidatesConfig() {
	_, err := publisher.New(nil)
	s.ErrorIs(err, publisher.ErrNilConfig)

	_, err = publisher.New(&publisher.Config{})
	s.ErrorIs(err, publisher.ErrNilEditor)
}

func (s *PublisherServiceTestSuite) TestPublishWithoutTrackedMessageSends() {
	s.mockEditor.EXPECT().
		Send(s.ctx, &publisher.SendInput{ChatID: s.testChatID, Text: s.testText}).
		Return(&publisher.SendOutput{MessageID: 10}, nil)

	out, err := s.svc.Publish(s.ctx, &publisher.PublishInput{
		ChatID: s.testChatID,
		Text:   s.testText,
	})

	s.Require().NoError(err)
	s.Equal(10, out.MessageID)
	s.False(out.Resent)
}

func (s *PublisherServiceTestSuite) TestPublishEditsTrackedMessage() {
	msgID := 10
	s.mockEditor.EXPECT().
		Edit(s.ctx, &publisher.EditInput{ChatID: s.testChatID, MessageID: msgID, Text: s.testText}).
		Return(nil)

	out, err := s.svc.Publish(s.ctx, &publisher.PublishInput{
		ChatID:    s.testChatID,
		MessageID: &msgID,
		Text:      s.testText,
	})

	s.Require().NoError(err)
	s.Equal(10, out.MessageID)
	s.False(out.Resent)
}

func (s *PublisherServiceTestSuite) TestPublishFallsBackToSendOnEditFailure() {
	msgID := 10
	s.mockEditor.EXPECT().
		Edit(s.ctx, gomock.Any()).
		Return(errors.New("message to edit not found"))
	s.mockEditor.EXPECT().
		Send(s.ctx, &publisher.SendInput{ChatID: s.testChatID, Text: s.testText}).
		Return(&publisher.SendOutput{MessageID: 11}, nil)

	out, err := s.svc.Publish(s.ctx, &publisher.PublishInput{
		ChatID:    s.testChatID,
		MessageID: &msgID,
		Text:      s.testText,
	})

	s.Require().NoError(err)
	s.Equal(11, out.MessageID)
	s.NotEqual(msgID, out.MessageID)
	s.True(out.Resent)
}

func (s *PublisherServiceTestSuite) TestPublishFailsWhenBothPathsFail() {
	msgID := 10
	s.mockEditor.EXPECT().Edit(s.ctx, gomock.Any()).Return(errors.New("edit rejected"))
	s.mockEditor.EXPECT().Send(s.ctx, gomock.Any()).Return(nil, errors.New("chat unreachable"))

	out, err := s.svc.Publish(s.ctx, &publisher.PublishInput{
		ChatID:    s.testChatID,
		MessageID: &msgID,
		Text:      s.testText,
	})

	s.Error(err)
	s.Nil(out)
}
