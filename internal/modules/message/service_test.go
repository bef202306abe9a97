package message

import (
	"context"
	"testing"

	"skillswap/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	if msg != nil {
		msg.ID = 9
	}
	return args.Error(0)
}

func (m *MockMessageStore) Thread(ctx context.Context, userID, partnerID int64) ([]domain.Message, error) {
	args := m.Called(ctx, userID, partnerID)
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockMessageStore) MarkThreadRead(ctx context.Context, userID, partnerID int64) error {
	args := m.Called(ctx, userID, partnerID)
	return args.Error(0)
}

func (m *MockMessageStore) PartnerIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockMessageStore) LastBetween(ctx context.Context, userID, partnerID int64) (*domain.Message, error) {
	args := m.Called(ctx, userID, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageStore) CountUnreadFrom(ctx context.Context, userID, partnerID int64) (int64, error) {
	args := m.Called(ctx, userID, partnerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyNewMessage(ctx context.Context, receiverID, messageID int64, senderName string) error {
	args := m.Called(ctx, receiverID, messageID, senderName)
	return args.Error(0)
}

func newTestService() (*Service, *MockMessageStore, *MockUserReader, *MockNotificationSender) {
	messages := new(MockMessageStore)
	users := new(MockUserReader)
	notifs := new(MockNotificationSender)
	return NewService(messages, users, notifs), messages, users, notifs
}

func TestService_Send_Success(t *testing.T) {
	svc, messages, users, notifs := newTestService()

	users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
	messages.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Name: "Jane"}, nil)
	notifs.On("NotifyNewMessage", mock.Anything, int64(2), int64(9), "Jane").Return(nil)

	msg, err := svc.Send(context.Background(), 1, SendMessageRequest{ReceiverID: 2, Message: "hi"})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), msg.ID)
	notifs.AssertCalled(t, "NotifyNewMessage", mock.Anything, int64(2), int64(9), "Jane")
}

func TestService_Send_SelfMessage(t *testing.T) {
	svc, messages, _, _ := newTestService()

	_, err := svc.Send(context.Background(), 1, SendMessageRequest{ReceiverID: 1, Message: "hi"})

	assert.ErrorIs(t, err, ErrSelfMessage)
	messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Send_ReceiverMissing(t *testing.T) {
	svc, _, users, _ := newTestService()

	users.On("ExistsByID", mock.Anything, int64(404)).Return(false, nil)

	_, err := svc.Send(context.Background(), 1, SendMessageRequest{ReceiverID: 404, Message: "hi"})

	assert.ErrorIs(t, err, ErrReceiverNotFound)
}

func TestService_Conversations(t *testing.T) {
	svc, messages, users, _ := newTestService()

	messages.On("PartnerIDs", mock.Anything, int64(1)).Return([]int64{2, 3}, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Name: "Bob"}, nil)
	users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3, Name: "Carol"}, nil)
	messages.On("LastBetween", mock.Anything, int64(1), int64(2)).Return(&domain.Message{ID: 10, SenderID: 2, ReceiverID: 1, Message: "later"}, nil)
	messages.On("LastBetween", mock.Anything, int64(1), int64(3)).Return(&domain.Message{ID: 11, SenderID: 1, ReceiverID: 3, Message: "sure"}, nil)
	messages.On("CountUnreadFrom", mock.Anything, int64(1), int64(2)).Return(int64(2), nil)
	messages.On("CountUnreadFrom", mock.Anything, int64(1), int64(3)).Return(int64(0), nil)

	conversations, err := svc.Conversations(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, conversations, 2)
	assert.Equal(t, "Bob", conversations[0].Partner.Name)
	assert.Equal(t, int64(2), conversations[0].UnreadCount)
	assert.Equal(t, int64(11), conversations[1].LastMessage.ID)
}

func TestService_Thread_MarksIncomingRead(t *testing.T) {
	svc, messages, _, _ := newTestService()

	messages.On("MarkThreadRead", mock.Anything, int64(1), int64(2)).Return(nil)
	messages.On("Thread", mock.Anything, int64(1), int64(2)).Return([]domain.Message{
		{ID: 1, SenderID: 2, ReceiverID: 1, Message: "hey", IsRead: true},
		{ID: 2, SenderID: 1, ReceiverID: 2, Message: "hi"},
	}, nil)

	thread, err := svc.Thread(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Len(t, thread, 2)
	messages.AssertCalled(t, "MarkThreadRead", mock.Anything, int64(1), int64(2))
}
