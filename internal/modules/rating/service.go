package rating

import (
	"context"
	"errors"
	"math"

	"skillswap/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	ratings  RatingStore
	swaps    SwapReader
	users    UserReader
	profiles ProfileWriter
}

func NewService(ratings RatingStore, swaps SwapReader, users UserReader, profiles ProfileWriter) *Service {
	return &Service{
		ratings:  ratings,
		swaps:    swaps,
		users:    users,
		profiles: profiles,
	}
}

// Submit records a rating for a completed swap and refreshes the rated
// user's reputation score. One rating per (swap, rater) pair.
func (s *Service) Submit(ctx context.Context, raterID int64, req SubmitRatingRequest) (*domain.Rating, error) {
	sw, err := s.swaps.GetByID(ctx, req.SwapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapNotFound
		}
		return nil, err
	}

	if sw.Status != domain.SwapCompleted {
		return nil, ErrSwapNotCompleted
	}
	if !sw.IsParticipant(raterID) {
		return nil, ErrNotParticipant
	}

	exists, err := s.users.ExistsByID(ctx, req.RatedID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRatedNotFound
	}

	rated, err := s.ratings.ExistsForSwapAndRater(ctx, req.SwapID, raterID)
	if err != nil {
		return nil, err
	}
	if rated {
		return nil, ErrAlreadyRated
	}

	rating := &domain.Rating{
		SwapID:  req.SwapID,
		RaterID: raterID,
		RatedID: req.RatedID,
		Rating:  req.Rating,
		Review:  req.Review,
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		// the unique index catches the race the existence check misses
		if isUniqueViolation(err) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	if err := s.recomputeReputation(ctx, req.RatedID); err != nil {
		return nil, err
	}

	return s.ratings.GetExpanded(ctx, rating.ID)
}

// ListForUser returns all ratings received by a user together with the
// average rounded to one decimal place.
func (s *Service) ListForUser(ctx context.Context, ratedID int64) (*UserRatingsResponse, error) {
	ratings, err := s.ratings.ListForRated(ctx, ratedID)
	if err != nil {
		return nil, err
	}
	avg, total, err := s.ratings.AverageForRated(ctx, ratedID)
	if err != nil {
		return nil, err
	}
	return &UserRatingsResponse{
		Ratings:   ratings,
		AvgRating: math.Round(avg*10) / 10,
		Total:     total,
	}, nil
}

// recomputeReputation stores the mean of all received ratings, rounded
// to two decimal places, on the rated user's profile.
func (s *Service) recomputeReputation(ctx context.Context, userID int64) error {
	avg, _, err := s.ratings.AverageForRated(ctx, userID)
	if err != nil {
		return err
	}
	return s.profiles.UpdateReputation(ctx, userID, math.Round(avg*100)/100)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
