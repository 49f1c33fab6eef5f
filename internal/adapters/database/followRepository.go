package database

import (
	"context"

	"tailorspace/internal/core/follow"

	"gorm.io/gorm"
)

// FollowRepositoryDatabase implements the follow port on gorm. The unique
// (idUser, idActor) index backs the duplicate check at the store level.
type FollowRepositoryDatabase struct {
	db *gorm.DB
}

func NewFollowRepositoryDatabase(db *gorm.DB) *FollowRepositoryDatabase {
	return &FollowRepositoryDatabase{db: db}
}

func (r *FollowRepositoryDatabase) Create(ctx context.Context, f *follow.Follow) (*follow.Follow, error) {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FollowRepositoryDatabase) Delete(ctx context.Context, userID, actorID uint) error {
	return r.db.WithContext(ctx).Where("idUser = ? AND idActor = ?", userID, actorID).Delete(&follow.Follow{}).Error
}

func (r *FollowRepositoryDatabase) FindByUserID(ctx context.Context, userID uint) ([]*follow.Follow, error) {
	var follows []*follow.Follow
	if err := r.db.WithContext(ctx).Where("idUser = ?", userID).Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}

func (r *FollowRepositoryDatabase) Exists(ctx context.Context, userID, actorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&follow.Follow{}).Where("idUser = ? AND idActor = ?", userID, actorID).Count(&count).Error
	return count > 0, err
}
