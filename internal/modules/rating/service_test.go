package rating

import (
	"context"
	"testing"

	"skillswap/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRatingStore struct {
	mock.Mock
}

func (m *MockRatingStore) Create(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	if rating != nil {
		rating.ID = 42
	}
	return args.Error(0)
}

func (m *MockRatingStore) GetExpanded(ctx context.Context, id int64) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingStore) ExistsForSwapAndRater(ctx context.Context, swapID, raterID int64) (bool, error) {
	args := m.Called(ctx, swapID, raterID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingStore) ListForRated(ctx context.Context, ratedID int64) ([]domain.Rating, error) {
	args := m.Called(ctx, ratedID)
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingStore) AverageForRated(ctx context.Context, ratedID int64) (float64, int64, error) {
	args := m.Called(ctx, ratedID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type MockSwapReader struct {
	mock.Mock
}

func (m *MockSwapReader) GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SwapRequest), args.Error(1)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockProfileWriter struct {
	mock.Mock
}

func (m *MockProfileWriter) UpdateReputation(ctx context.Context, userID int64, score float64) error {
	args := m.Called(ctx, userID, score)
	return args.Error(0)
}

func newTestService() (*Service, *MockRatingStore, *MockSwapReader, *MockUserReader, *MockProfileWriter) {
	ratings := new(MockRatingStore)
	swaps := new(MockSwapReader)
	users := new(MockUserReader)
	profiles := new(MockProfileWriter)
	return NewService(ratings, swaps, users, profiles), ratings, swaps, users, profiles
}

func completedSwap() *domain.SwapRequest {
	return &domain.SwapRequest{ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.SwapCompleted}
}

func TestService_Submit_Success(t *testing.T) {
	svc, ratings, swaps, users, profiles := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(completedSwap(), nil)
	users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
	ratings.On("ExistsForSwapAndRater", mock.Anything, int64(5), int64(1)).Return(false, nil)
	ratings.On("Create", mock.Anything, mock.Anything).Return(nil)
	ratings.On("AverageForRated", mock.Anything, int64(2)).Return(4.666666666666667, int64(3), nil)
	profiles.On("UpdateReputation", mock.Anything, int64(2), 4.67).Return(nil)
	ratings.On("GetExpanded", mock.Anything, int64(42)).Return(&domain.Rating{
		ID: 42, SwapID: 5, RaterID: 1, RatedID: 2, Rating: 5,
	}, nil)

	r, err := svc.Submit(context.Background(), 1, SubmitRatingRequest{
		SwapID:  5,
		RatedID: 2,
		Rating:  5,
		Review:  "patient and well prepared",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), r.ID)
	// reputation is stored as the mean rounded to two decimals
	profiles.AssertCalled(t, "UpdateReputation", mock.Anything, int64(2), 4.67)
}

func TestService_Submit_SwapNotFound(t *testing.T) {
	svc, _, swaps, _, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Submit(context.Background(), 1, SubmitRatingRequest{SwapID: 404, RatedID: 2, Rating: 5})

	assert.ErrorIs(t, err, ErrSwapNotFound)
}

func TestService_Submit_SwapNotCompleted(t *testing.T) {
	svc, ratings, swaps, _, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(&domain.SwapRequest{
		ID: 5, SenderID: 1, ReceiverID: 2, Status: domain.SwapAccepted,
	}, nil)

	_, err := svc.Submit(context.Background(), 1, SubmitRatingRequest{SwapID: 5, RatedID: 2, Rating: 5})

	assert.ErrorIs(t, err, ErrSwapNotCompleted)
	ratings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_NotParticipant(t *testing.T) {
	svc, _, swaps, _, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(completedSwap(), nil)

	_, err := svc.Submit(context.Background(), 99, SubmitRatingRequest{SwapID: 5, RatedID: 2, Rating: 5})

	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestService_Submit_Duplicate(t *testing.T) {
	svc, ratings, swaps, users, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(completedSwap(), nil)
	users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
	ratings.On("ExistsForSwapAndRater", mock.Anything, int64(5), int64(1)).Return(true, nil)

	_, err := svc.Submit(context.Background(), 1, SubmitRatingRequest{SwapID: 5, RatedID: 2, Rating: 4})

	assert.ErrorIs(t, err, ErrAlreadyRated)
	ratings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_DuplicateRace(t *testing.T) {
	svc, ratings, swaps, users, _ := newTestService()

	swaps.On("GetByID", mock.Anything, int64(5)).Return(completedSwap(), nil)
	users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
	ratings.On("ExistsForSwapAndRater", mock.Anything, int64(5), int64(1)).Return(false, nil)
	ratings.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Submit(context.Background(), 1, SubmitRatingRequest{SwapID: 5, RatedID: 2, Rating: 4})

	assert.ErrorIs(t, err, ErrAlreadyRated)
}

func TestService_ListForUser(t *testing.T) {
	svc, ratings, _, _, _ := newTestService()

	ratings.On("ListForRated", mock.Anything, int64(2)).Return([]domain.Rating{
		{ID: 1, RatedID: 2, Rating: 5},
		{ID: 2, RatedID: 2, Rating: 4},
	}, nil)
	ratings.On("AverageForRated", mock.Anything, int64(2)).Return(4.5, int64(2), nil)

	result, err := svc.ListForUser(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, result.Ratings, 2)
	assert.Equal(t, 4.5, result.AvgRating)
	assert.Equal(t, int64(2), result.Total)
}

func TestService_ListForUser_RoundsToOneDecimal(t *testing.T) {
	svc, ratings, _, _, _ := newTestService()

	ratings.On("ListForRated", mock.Anything, int64(2)).Return([]domain.Rating{}, nil)
	ratings.On("AverageForRated", mock.Anything, int64(2)).Return(4.666666666666667, int64(3), nil)

	result, err := svc.ListForUser(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, 4.7, result.AvgRating)
}
