package follow

import (
	"time"
	"tailorspace/internal/core/actor"
	"tailorspace/internal/core/user"
)

// Follow is a User → Actor edge in the follow graph. A user following their
// own actor is implicit and never stored.
type Follow struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"`
	IDUser    uint        `gorm:"column:idUser;uniqueIndex:idx_follow_user_actor;not null"`
	User      user.User   `gorm:"foreignkey:IDUser"`
	IDActor   uint        `gorm:"column:idActor;uniqueIndex:idx_follow_user_actor;not null"`
	Actor     actor.Actor `gorm:"foreignkey:IDActor"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
}
