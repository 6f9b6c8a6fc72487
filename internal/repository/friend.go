package repository

import (
	"context"
	"errors"

	"mosaic/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendRepository defines the interface for friend-request records and the
// accepted-friends set.
type FriendRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	GetByID(ctx context.Context, id uint) (*models.FriendRequest, error)
	GetPendingBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error)
	GetIncoming(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	UpdateStatus(ctx context.Context, requestID uint, status models.FriendRequestStatus) error
	AddFriends(ctx context.Context, userID1, userID2 uint) error
	AreFriends(ctx context.Context, userID1, userID2 uint) (bool, error)
	GetFriends(ctx context.Context, userID uint) ([]models.UserSummary, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) GetByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).Preload("From").Preload("To").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friend request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

// GetPendingBetweenUsers finds a pending request between the pair in either
// direction. Returns (nil, nil) when none exists.
func (r *friendRepository) GetPendingBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("status = ? AND ((from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?))",
			models.FriendRequestStatusPending, userID1, userID2, userID2, userID1).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRepository) GetIncoming(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("to_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Preload("From").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *friendRepository) UpdateStatus(ctx context.Context, requestID uint, status models.FriendRequestStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("id = ?", requestID).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// AddFriends inserts both directions of the friendship. ON CONFLICT DO
// NOTHING makes the add idempotent when a row already exists.
func (r *friendRepository) AddFriends(ctx context.Context, userID1, userID2 uint) error {
	rows := []models.UserFriend{
		{UserID: userID1, FriendID: userID2},
		{UserID: userID2, FriendID: userID1},
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) AreFriends(ctx context.Context, userID1, userID2 uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserFriend{}).
		Where("user_id = ? AND friend_id = ?", userID1, userID2).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	var friends []models.UserSummary
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.username, users.email").
		Joins("JOIN user_friends uf ON users.id = uf.friend_id").
		Where("uf.user_id = ?", userID).
		Scan(&friends).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return friends, nil
}
