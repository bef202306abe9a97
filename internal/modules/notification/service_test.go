package notification

import (
	"context"
	"testing"

	"skillswap/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationStore) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationStore) MarkRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationStore) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestService_NotifySwapRequest(t *testing.T) {
	store := new(MockNotificationStore)
	svc := NewService(store)

	var captured *domain.Notification
	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*domain.Notification)
	}).Return(nil)

	err := svc.NotifySwapRequest(context.Background(), 2, 5, "John Doe")

	assert.NoError(t, err)
	assert.Equal(t, int64(2), captured.UserID)
	assert.Equal(t, domain.NotifSwapRequest, captured.Type)
	assert.Equal(t, "John Doe sent you a swap request", captured.Message)
	assert.Equal(t, map[string]any{"swap_id": int64(5)}, captured.Data)
}

func TestService_NotifySwapStatus(t *testing.T) {
	store := new(MockNotificationStore)
	svc := NewService(store)

	var captured *domain.Notification
	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*domain.Notification)
	}).Return(nil)

	err := svc.NotifySwapStatus(context.Background(), 1, 5, domain.SwapAccepted)

	assert.NoError(t, err)
	assert.Equal(t, domain.NotifSwapAccepted, captured.Type)
	assert.Equal(t, "Your swap request was accepted", captured.Message)
}

func TestService_NotifySwapStatus_PendingRejected(t *testing.T) {
	store := new(MockNotificationStore)
	svc := NewService(store)

	err := svc.NotifySwapStatus(context.Background(), 1, 5, domain.SwapPending)

	assert.Error(t, err)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_NotifyNewMessage(t *testing.T) {
	store := new(MockNotificationStore)
	svc := NewService(store)

	var captured *domain.Notification
	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*domain.Notification)
	}).Return(nil)

	err := svc.NotifyNewMessage(context.Background(), 2, 9, "Jane")

	assert.NoError(t, err)
	assert.Equal(t, domain.NotifMessage, captured.Type)
	assert.Equal(t, "Jane sent you a message", captured.Message)
	assert.Equal(t, map[string]any{"message_id": int64(9)}, captured.Data)
}

func TestService_MarkRead_NotFound(t *testing.T) {
	store := new(MockNotificationStore)
	svc := NewService(store)

	store.On("MarkRead", mock.Anything, int64(3), int64(1)).Return(gorm.ErrRecordNotFound)

	err := svc.MarkRead(context.Background(), 3, 1)

	assert.ErrorIs(t, err, ErrNotFound)
}
