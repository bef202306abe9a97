package swap

import (
	"context"
	"testing"

	"skillswap/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockSwapStore struct {
	mock.Mock
}

func (m *MockSwapStore) Create(ctx context.Context, s *domain.SwapRequest) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 777 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockSwapStore) GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SwapRequest), args.Error(1)
}

func (m *MockSwapStore) GetExpanded(ctx context.Context, id int64) (*domain.SwapRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SwapRequest), args.Error(1)
}

func (m *MockSwapStore) HasPendingBetween(ctx context.Context, senderID, receiverID int64) (bool, error) {
	args := m.Called(ctx, senderID, receiverID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSwapStore) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.SwapRequest, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.SwapRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockSwapStore) UpdateStatus(ctx context.Context, id int64, status domain.SwapStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockSkillReader struct {
	mock.Mock
}

func (m *MockSkillReader) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSkillReader) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
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

type MockRatingReader struct {
	mock.Mock
}

func (m *MockRatingReader) ExistsForSwapAndRater(ctx context.Context, swapID, raterID int64) (bool, error) {
	args := m.Called(ctx, swapID, raterID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifySwapRequest(ctx context.Context, receiverID, swapID int64, senderName string) error {
	args := m.Called(ctx, receiverID, swapID, senderName)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifySwapStatus(ctx context.Context, userID, swapID int64, status domain.SwapStatus) error {
	args := m.Called(ctx, userID, swapID, status)
	return args.Error(0)
}

func newTestService() (*Service, *MockSwapStore, *MockSkillReader, *MockUserReader, *MockRatingReader, *MockNotificationSender) {
	swaps := new(MockSwapStore)
	skills := new(MockSkillReader)
	users := new(MockUserReader)
	ratings := new(MockRatingReader)
	notifs := new(MockNotificationSender)
	return NewService(swaps, skills, users, ratings, notifs), swaps, skills, users, ratings, notifs
}

func TestService_Propose_Success(t *testing.T) {
	svc, swaps, skills, users, _, notifs := newTestService()

	users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
	skills.On("Exists", mock.Anything, int64(10)).Return(true, nil)
	skills.On("Exists", mock.Anything, int64(20)).Return(true, nil)
	skills.On("GetOwnerID", mock.Anything, int64(10)).Return(int64(1), nil)
	swaps.On("HasPendingBetween", mock.Anything, int64(1), int64(2)).Return(false, nil)
	swaps.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Name: "John Doe"}, nil)
	notifs.On("NotifySwapRequest", mock.Anything, int64(2), int64(777), "John Doe").Return(nil)
	swaps.On("GetExpanded", mock.Anything, int64(777)).Return(&domain.SwapRequest{
		ID: 777, SenderID: 1, ReceiverID: 2, Status: domain.SwapPending,
	}, nil)

	sw, err := svc.Propose(context.Background(), 1, ProposeSwapRequest{
		ReceiverID:       2,
		OfferedSkillID:   10,
		RequestedSkillID: 20,
		Message:          "trade guitar for python?",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.SwapPending, sw.Status)
	notifs.AssertCalled(t, "NotifySwapRequest", mock.Anything, int64(2), int64(777), "John Doe")
}

func TestService_Propose_SelfSwap(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.Propose(context.Background(), 1, ProposeSwapRequest{
		ReceiverID:       1,
		OfferedSkillID:   10,
		RequestedSkillID: 20,
	})

	assert.ErrorIs(t, err, ErrSelfSwap)
}

func TestService_Propose_SkillMissing(t *testing.T) {
	svc, _, skills, users, _, _ := newTestService()

	users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
	skills.On("Exists", mock.Anything, int64(10)).Return(false, nil)

	_, err := svc.Propose(context.Background(), 1, ProposeSwapRequest{
		ReceiverID:       2,
		OfferedSkillID:   10,
		RequestedSkillID: 20,
	})

	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestService_Propose_OfferedSkillNotOwned(t *testing.T) {
	svc, _, skills, users, _, _ := newTestService()

	users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
	skills.On("Exists", mock.Anything, int64(10)).Return(true, nil)
	skills.On("Exists", mock.Anything, int64(20)).Return(true, nil)
	skills.On("GetOwnerID", mock.Anything, int64(10)).Return(int64(99), nil)

	_, err := svc.Propose(context.Background(), 1, ProposeSwapRequest{
		ReceiverID:       2,
		OfferedSkillID:   10,
		RequestedSkillID: 20,
	})

	assert.ErrorIs(t, err, ErrNotSkillOwner)
}

func TestService_Propose_DuplicatePending(t *testing.T) {
	svc, swaps, skills, users, _, _ := newTestService()

	users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
	skills.On("Exists", mock.Anything, int64(10)).Return(true, nil)
	skills.On("Exists", mock.Anything, int64(20)).Return(true, nil)
	skills.On("GetOwnerID", mock.Anything, int64(10)).Return(int64(1), nil)
	swaps.On("HasPendingBetween", mock.Anything, int64(1), int64(2)).Return(true, nil)

	_, err := svc.Propose(context.Background(), 1, ProposeSwapRequest{
		ReceiverID:       2,
		OfferedSkillID:   10,
		RequestedSkillID: 20,
	})

	assert.ErrorIs(t, err, ErrDuplicatePending)
	swaps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func pendingSwap() *domain.SwapRequest {
	return &domain.SwapRequest{ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.SwapPending}
}

func TestService_Transition_AcceptByReceiver(t *testing.T) {
	svc, swaps, _, _, _, notifs := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(pendingSwap(), nil)
	swaps.On("UpdateStatus", mock.Anything, int64(5), domain.SwapAccepted).Return(nil)
	notifs.On("NotifySwapStatus", mock.Anything, int64(1), int64(5), domain.SwapAccepted).Return(nil)
	swaps.On("GetExpanded", mock.Anything, int64(5)).Return(&domain.SwapRequest{
		ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.SwapAccepted,
	}, nil)

	sw, err := svc.TransitionStatus(context.Background(), 2, 5, domain.SwapAccepted)

	assert.NoError(t, err)
	assert.Equal(t, domain.SwapAccepted, sw.Status)
	// notification goes to the sender, not the acting receiver
	notifs.AssertCalled(t, "NotifySwapStatus", mock.Anything, int64(1), int64(5), domain.SwapAccepted)
}

func TestService_Transition_AcceptBySenderForbidden(t *testing.T) {
	svc, swaps, _, _, _, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(pendingSwap(), nil)

	_, err := svc.TransitionStatus(context.Background(), 1, 5, domain.SwapAccepted)

	assert.ErrorIs(t, err, ErrForbidden)
	swaps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Transition_RejectByOutsiderForbidden(t *testing.T) {
	svc, swaps, _, _, _, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(pendingSwap(), nil)

	_, err := svc.TransitionStatus(context.Background(), 3, 5, domain.SwapRejected)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Transition_AcceptNonPending(t *testing.T) {
	svc, swaps, _, _, _, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(&domain.SwapRequest{
		ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.SwapRejected,
	}, nil)

	_, err := svc.TransitionStatus(context.Background(), 2, 5, domain.SwapAccepted)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Transition_CompleteFromPending(t *testing.T) {
	// completed is reachable from any status, even straight from pending
	svc, swaps, _, _, _, notifs := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(pendingSwap(), nil)
	swaps.On("UpdateStatus", mock.Anything, int64(5), domain.SwapCompleted).Return(nil)
	notifs.On("NotifySwapStatus", mock.Anything, int64(2), int64(5), domain.SwapCompleted).Return(nil)
	swaps.On("GetExpanded", mock.Anything, int64(5)).Return(&domain.SwapRequest{
		ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.SwapCompleted,
	}, nil)

	sw, err := svc.TransitionStatus(context.Background(), 1, 5, domain.SwapCompleted)

	assert.NoError(t, err)
	assert.Equal(t, domain.SwapCompleted, sw.Status)
	notifs.AssertCalled(t, "NotifySwapStatus", mock.Anything, int64(2), int64(5), domain.SwapCompleted)
}

func TestService_Transition_CompleteByOutsiderForbidden(t *testing.T) {
	svc, swaps, _, _, _, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(pendingSwap(), nil)

	_, err := svc.TransitionStatus(context.Background(), 3, 5, domain.SwapCompleted)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Transition_NotFound(t *testing.T) {
	svc, swaps, _, _, _, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.TransitionStatus(context.Background(), 1, 404, domain.SwapCompleted)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Transition_NotificationFailureIgnored(t *testing.T) {
	svc, swaps, _, _, _, notifs := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(pendingSwap(), nil)
	swaps.On("UpdateStatus", mock.Anything, int64(5), domain.SwapAccepted).Return(nil)
	notifs.On("NotifySwapStatus", mock.Anything, int64(1), int64(5), domain.SwapAccepted).Return(assert.AnError)
	swaps.On("GetExpanded", mock.Anything, int64(5)).Return(&domain.SwapRequest{
		ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.SwapAccepted,
	}, nil)

	_, err := svc.TransitionStatus(context.Background(), 2, 5, domain.SwapAccepted)

	assert.NoError(t, err)
}

func TestService_CanRate(t *testing.T) {
	svc, swaps, _, _, ratings, _ := newTestService()

	completed := &domain.SwapRequest{ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.SwapCompleted}
	swaps.On("GetByID", mock.Anything, int64(5)).Return(completed, nil)
	ratings.On("ExistsForSwapAndRater", mock.Anything, int64(5), int64(1)).Return(false, nil)
	ratings.On("ExistsForSwapAndRater", mock.Anything, int64(5), int64(2)).Return(true, nil)

	ok, err := svc.CanRate(context.Background(), 1, 5)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CanRate(context.Background(), 2, 5)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.CanRate(context.Background(), 3, 5)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestService_CanRate_NotCompleted(t *testing.T) {
	svc, swaps, _, _, _, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(pendingSwap(), nil)

	ok, err := svc.CanRate(context.Background(), 1, 5)
	assert.NoError(t, err)
	assert.False(t, ok)
}
