package post

import (
	"time"
	"tailorspace/internal/core/actor"
)

// Tag marks an Actor on a Post. Append/remove only, never updated.
type Tag struct {
	ID          uint        `gorm:"primaryKey;autoIncrement"`
	IDPost      uint        `gorm:"column:idPost;not null"`
	Post        Post        `gorm:"foreignkey:IDPost"`
	TaggedActor uint        `gorm:"column:taggedActor;not null"`
	Actor       actor.Actor `gorm:"foreignkey:TaggedActor"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
}
