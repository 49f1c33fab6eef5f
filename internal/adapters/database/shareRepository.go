package database

import (
	"context"
	"errors"

	"tailorspace/internal/core/post"

	"gorm.io/gorm"
)

type ShareRepositoryDatabase struct {
	db *gorm.DB
}

func NewShareRepositoryDatabase(db *gorm.DB) *ShareRepositoryDatabase {
	return &ShareRepositoryDatabase{db: db}
}

func (r *ShareRepositoryDatabase) Create(ctx context.Context, s *post.Share) (*post.Share, error) {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ShareRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Share, error) {
	var s post.Share
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShareRepositoryDatabase) FindBySharer(ctx context.Context, actorID uint) ([]*post.Share, error) {
	var shares []*post.Share
	if err := r.db.WithContext(ctx).Where("sharer = ?", actorID).Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *ShareRepositoryDatabase) FindByRecipient(ctx context.Context, actorID uint) ([]*post.Share, error) {
	var shares []*post.Share
	if err := r.db.WithContext(ctx).Where("recipient = ?", actorID).Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *ShareRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&post.Share{}).Error
}
