package models

import (
	"time"
)

// FriendRequestStatus represents the status of a friend request.
type FriendRequestStatus string

const (
	// FriendRequestStatusPending indicates the request awaits a decision.
	FriendRequestStatusPending FriendRequestStatus = "pending"
	// FriendRequestStatusAccepted is a terminal state; both users become friends.
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	// FriendRequestStatusDeclined is a terminal state; no friendship is created.
	FriendRequestStatusDeclined FriendRequestStatus = "declined"
)

// FriendRequest is a directed request from one user to another. Status moves
// exactly once from pending to a terminal state and the row is immutable
// afterwards. At most one pending request may exist between any pair of users,
// in either direction; that check is lookup-before-insert with no atomic
// guard (see DESIGN.md).
type FriendRequest struct {
	ID        uint                `gorm:"primaryKey" json:"id"`
	FromID    uint                `gorm:"not null;index" json:"from_id"`
	ToID      uint                `gorm:"not null;index" json:"to_id"`
	Status    FriendRequestStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`

	// Relationships
	From User `gorm:"foreignKey:FromID" json:"from,omitempty"`
	To   User `gorm:"foreignKey:ToID" json:"to,omitempty"`
}

// TableName specifies the table name for GORM
func (FriendRequest) TableName() string {
	return "friend_requests"
}
