package post

import (
	"time"
	"tailorspace/internal/core/user"
)

// Comment belongs to one Post; Author is the writing user's id and is the
// only principal allowed to change or remove it.
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	IDPost    uint      `gorm:"column:idPost;not null"`
	Post      Post      `gorm:"foreignkey:IDPost"`
	Author    uint      `gorm:"not null"`
	User      user.User `gorm:"foreignkey:Author"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
