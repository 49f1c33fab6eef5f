package post

import (
	"time"
)

// Share forwards a Post to a recipient Actor. Only the sharer may delete it.
type Share struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	IDPost    uint      `gorm:"column:idPost;not null"`
	Post      Post      `gorm:"foreignkey:IDPost"`
	Sharer    uint      `gorm:"not null"`
	Recipient uint      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
