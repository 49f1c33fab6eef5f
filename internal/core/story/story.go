package story

import (
	"time"
	"tailorspace/internal/core/actor"
)

// Story is ephemeral actor content with a private view counter. The owner
// column keeps the idActory spelling of the original schema so existing
// clients keep working.
type Story struct {
	ID          uint        `gorm:"primaryKey;autoIncrement"`
	IDActory    uint        `gorm:"column:idActory;not null"`
	Actor       actor.Actor `gorm:"foreignkey:IDActory"`
	Title       string      `gorm:"type:varchar(255);not null"`
	Description string      `gorm:"type:text;not null"`
	Photo       string      `gorm:"type:varchar(512);not null"`
	Vues        uint        `gorm:"default:0;not null"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
}
