package models

import "time"

// ImageLike is one (user, image) pair of the like relation. The composite
// unique index keeps the relation a set.
type ImageLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_image_like"`
	ImageID   uint      `json:"image_id" gorm:"index;uniqueIndex:idx_user_image_like"`
	CreatedAt time.Time `json:"created_at"`
}
