package models

import "time"

// Target types an action may point at. Target equality is (type, id), never id
// alone: "image 5" and "user 5" are different targets.
const (
	TargetUser  = "user"
	TargetImage = "image"
)

// Verbs recorded in the activity stream.
const (
	VerbCreatedAccount  = "created account"
	VerbBookmarkedImage = "bookmarked image"
	VerbLikes           = "likes"
	VerbIsFollowing     = "is_following"
)

// Action is one entry of the append-only activity log. Rows are immutable
// once created; the feed orders them created_at descending.
type Action struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index"`
	Verb       string    `json:"verb" gorm:"size:255"`
	TargetType string    `json:"target_type,omitempty" gorm:"size:20;index:idx_action_target"`
	TargetID   uint      `json:"target_id,omitempty" gorm:"index:idx_action_target"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

// ActionTarget identifies the entity an action references.
type ActionTarget struct {
	Type string
	ID   uint
}
