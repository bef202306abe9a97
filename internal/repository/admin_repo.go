package repository

import (
	"context"

	"skillswap/internal/domain"

	"gorm.io/gorm"
)

// AdminStats are the marketplace-wide counters on the admin dashboard.
type AdminStats struct {
	Users          int64 `json:"users"`
	Skills         int64 `json:"skills"`
	Swaps          int64 `json:"swaps"`
	PendingSwaps   int64 `json:"pending_swaps"`
	CompletedSwaps int64 `json:"completed_swaps"`
	Ratings        int64 `json:"ratings"`
}

// UserOverview is one row of the admin user listing.
type UserOverview struct {
	User               domain.User `json:"user"`
	SkillsCount        int64       `json:"skills_count"`
	SwapsSentCount     int64       `json:"swaps_sent_count"`
	SwapsReceivedCount int64       `json:"swaps_received_count"`
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Stats(ctx context.Context) (*AdminStats, error) {
	db := r.db.WithContext(ctx)
	var stats AdminStats

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Users, db.Model(&domain.User{})},
		{&stats.Skills, db.Model(&domain.Skill{})},
		{&stats.Swaps, db.Model(&domain.SwapRequest{})},
		{&stats.PendingSwaps, db.Model(&domain.SwapRequest{}).Where("status = ?", domain.SwapPending)},
		{&stats.CompletedSwaps, db.Model(&domain.SwapRequest{}).Where("status = ?", domain.SwapCompleted)},
		{&stats.Ratings, db.Model(&domain.Rating{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}

// ListUsers pages through all accounts with per-user activity counts.
func (r *AdminRepository) ListUsers(ctx context.Context, limit, offset int) ([]UserOverview, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	err := db.Preload("Profile").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	if len(users) == 0 {
		return []UserOverview{}, total, nil
	}

	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	skillCounts, err := r.groupCounts(ctx, &domain.Skill{}, "user_id", ids)
	if err != nil {
		return nil, 0, err
	}
	sentCounts, err := r.groupCounts(ctx, &domain.SwapRequest{}, "sender_id", ids)
	if err != nil {
		return nil, 0, err
	}
	receivedCounts, err := r.groupCounts(ctx, &domain.SwapRequest{}, "receiver_id", ids)
	if err != nil {
		return nil, 0, err
	}

	overviews := make([]UserOverview, len(users))
	for i, u := range users {
		overviews[i] = UserOverview{
			User:               u,
			SkillsCount:        skillCounts[u.ID],
			SwapsSentCount:     sentCounts[u.ID],
			SwapsReceivedCount: receivedCounts[u.ID],
		}
	}
	return overviews, total, nil
}

func (r *AdminRepository) groupCounts(ctx context.Context, model any, column string, ids []int64) (map[int64]int64, error) {
	var rows []struct {
		UserID int64
		N      int64
	}
	err := r.db.WithContext(ctx).Model(model).
		Select(column+" AS user_id, COUNT(*) AS n").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.N
	}
	return counts, nil
}
