package profile

import (
	"context"
	"errors"
	"math"
	"os"

	"skillswap/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	profiles ProfileStore
	users    UserStore
	ratings  RatingReader
	swaps    SwapReader
	skills   SkillReader
}

func NewService(profiles ProfileStore, users UserStore, ratings RatingReader, swaps SwapReader, skills SkillReader) *Service {
	return &Service{
		profiles: profiles,
		users:    users,
		ratings:  ratings,
		swaps:    swaps,
		skills:   skills,
	}
}

// PublicView assembles the public profile page for a user.
func (s *Service) PublicView(ctx context.Context, userID int64) (*PublicProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	prof, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	avg, total, err := s.ratings.AverageForRated(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.swaps.CountCompletedForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	offered, err := s.skills.GetByUserAndType(ctx, userID, domain.SkillOffer)
	if err != nil {
		return nil, err
	}
	wanted, err := s.skills.GetByUserAndType(ctx, userID, domain.SkillRequest)
	if err != nil {
		return nil, err
	}

	return &PublicProfile{
		User:           user,
		Profile:        prof,
		AvgRating:      math.Round(avg*10) / 10,
		TotalRatings:   total,
		CompletedSwaps: completed,
		SkillsOffered:  offered,
		SkillsWanted:   wanted,
	}, nil
}

// Update applies the provided fields to the caller's profile. A new
// photo replaces the old file on disk.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.Profile, error) {
	prof, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		user.Name = *req.Name
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if req.Bio != nil {
		prof.Bio = *req.Bio
	}
	if req.Location != nil {
		prof.Location = *req.Location
	}
	if req.PhotoPath != nil {
		if prof.Photo != "" {
			_ = os.Remove(prof.Photo)
		}
		prof.Photo = *req.PhotoPath
	}

	if err := s.profiles.Update(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}
