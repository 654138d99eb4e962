package models

import "time"

// Follow is a directed edge in the social graph: the follower's feed includes
// the followee's actions. Edges are never reciprocal automatically.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followee"`
	FolloweeID uint      `json:"followee_id" gorm:"index;uniqueIndex:idx_follower_followee"`
	CreatedAt  time.Time `json:"created_at"`
}
