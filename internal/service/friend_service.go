// Package service holds business logic that spans repositories.
package service

import (
	"context"

	"mosaic/internal/models"
	"mosaic/internal/repository"
)

// FriendService enforces the friend-request state machine: requests start
// pending and move exactly once to accepted or declined; only the recipient
// may decide; acceptance adds each user to the other's friend set.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// Send creates a pending request from one user to another.
//
// The duplicate-pending and already-friends checks are read-then-write with
// no atomic guard; two concurrent sends for the same pair can both pass.
func (s *FriendService) Send(ctx context.Context, fromID, toID uint) (*models.FriendRequest, error) {
	if fromID == toID {
		return nil, models.NewValidationError("Cannot send friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, toID); err != nil {
		return nil, err
	}

	existing, err := s.friendRepo.GetPendingBetweenUsers(ctx, fromID, toID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewAlreadyExistsError("Friend request already exists")
	}

	friends, err := s.friendRepo.AreFriends(ctx, fromID, toID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, models.NewAlreadyFriendsError()
	}

	request := &models.FriendRequest{
		FromID: fromID,
		ToID:   toID,
		Status: models.FriendRequestStatusPending,
	}
	if err := s.friendRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, request.ID)
}

// Accept transitions a pending request to accepted and makes the friendship
// symmetric. Only the recipient may accept.
func (s *FriendService) Accept(ctx context.Context, requestID, actingUserID uint) (*models.FriendRequest, error) {
	request, err := s.loadPending(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.ToID != actingUserID {
		return nil, models.NewForbiddenError("Not authorized to accept this friend request")
	}

	if err := s.friendRepo.UpdateStatus(ctx, requestID, models.FriendRequestStatusAccepted); err != nil {
		return nil, err
	}

	// Add each user to the other's friend set. The insert is idempotent, so
	// replays cannot duplicate the friendship.
	if err := s.friendRepo.AddFriends(ctx, request.FromID, request.ToID); err != nil {
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, requestID)
}

// Decline transitions a pending request to declined. Only the recipient may
// decline; the friend sets are untouched.
func (s *FriendService) Decline(ctx context.Context, requestID, actingUserID uint) (*models.FriendRequest, error) {
	request, err := s.loadPending(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.ToID != actingUserID {
		return nil, models.NewForbiddenError("Not authorized to decline this friend request")
	}

	if err := s.friendRepo.UpdateStatus(ctx, requestID, models.FriendRequestStatusDeclined); err != nil {
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, requestID)
}

// ListIncoming returns pending requests addressed to the user.
func (s *FriendService) ListIncoming(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.friendRepo.GetIncoming(ctx, userID)
}

// Friends returns the user's friend list.
func (s *FriendService) Friends(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.friendRepo.GetFriends(ctx, userID)
}

// loadPending fetches a request and reports NotFound for both an absent row
// and one already in a terminal state, so processed requests are
// indistinguishable from missing ones.
func (s *FriendService) loadPending(ctx context.Context, requestID uint) (*models.FriendRequest, error) {
	request, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.FriendRequestStatusPending {
		return nil, models.NewNotFoundError("Pending friend request", requestID)
	}
	return request, nil
}
