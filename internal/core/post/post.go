package post

import (
	"time"
	"tailorspace/internal/core/actor"
)

type Post struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"`
	IDActor   uint        `gorm:"column:idActor;not null"`
	Actor     actor.Actor `gorm:"foreignkey:IDActor"`
	Content   string      `gorm:"type:text;not null"`
	Photo     string      `gorm:"type:varchar(512)"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime"`
}
