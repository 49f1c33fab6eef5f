package post

import (
	"time"
)

// Report flags a Post. Only tailors may file one.
type Report struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	IDPost    uint      `gorm:"column:idPost;not null"`
	Post      Post      `gorm:"foreignkey:IDPost"`
	Reporter  uint      `gorm:"not null"`
	Reason    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
