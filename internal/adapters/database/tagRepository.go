package database

import (
	"context"

	"tailorspace/internal/core/post"

	"gorm.io/gorm"
)

type TagRepositoryDatabase struct {
	db *gorm.DB
}

func NewTagRepositoryDatabase(db *gorm.DB) *TagRepositoryDatabase {
	return &TagRepositoryDatabase{db: db}
}

func (r *TagRepositoryDatabase) Create(ctx context.Context, t *post.Tag) (*post.Tag, error) {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TagRepositoryDatabase) FindByPostID(ctx context.Context, postID uint) ([]*post.Tag, error) {
	var tags []*post.Tag
	if err := r.db.WithContext(ctx).Where("idPost = ?", postID).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepositoryDatabase) FindByTaggedActor(ctx context.Context, actorID uint) ([]*post.Tag, error) {
	var tags []*post.Tag
	if err := r.db.WithContext(ctx).Where("taggedActor = ?", actorID).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
