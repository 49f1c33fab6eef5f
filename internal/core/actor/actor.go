package actor

import (
	"time"
	"tailorspace/internal/core/user"
)

// Actor is the commercial identity of a User. Role is fixed at creation
// and there is at most one Actor per User.
type Actor struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	IDUser    uint      `gorm:"column:idUser;uniqueIndex;not null"`
	User      user.User `gorm:"foreignkey:IDUser"`
	Role      string    `gorm:"type:varchar(16);not null"`
	Address   string    `gorm:"type:varchar(255)"`
	Bio       string    `gorm:"type:text"`
	Credits   int       `gorm:"default:0"`
	Vote      int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
