// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The password field holds a bcrypt
// hash, set once at signup and never re-derived afterwards. The friend set is
// mutated only by the friend-request state machine.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Friends is an unordered, symmetric set stored through user_friends.
	Friends []*User `gorm:"many2many:user_friends;joinForeignKey:UserID;joinReferences:FriendID" json:"friends,omitempty"`
}

// UserFriend is the join row backing the friend set. Rows are written in both
// directions so membership checks never depend on ordering.
type UserFriend struct {
	UserID   uint `gorm:"primaryKey" json:"user_id"`
	FriendID uint `gorm:"primaryKey" json:"friend_id"`
}

// TableName specifies the table name for GORM
func (UserFriend) TableName() string {
	return "user_friends"
}

// UserSummary is the public projection of a user used in friend lists and
// preloaded request senders.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Summary returns the public projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
