package database

import (
	"context"
	"errors"

	"tailorspace/internal/core/post"

	"gorm.io/gorm"
)

type CommentRepositoryDatabase struct {
	db *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

func (r *CommentRepositoryDatabase) Create(ctx context.Context, c *post.Comment) (*post.Comment, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CommentRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Comment, error) {
	var c post.Comment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepositoryDatabase) FindByPostID(ctx context.Context, postID uint) ([]*post.Comment, error) {
	var comments []*post.Comment
	if err := r.db.WithContext(ctx).Where("idPost = ?", postID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepositoryDatabase) FindAll(ctx context.Context) ([]*post.Comment, error) {
	var comments []*post.Comment
	if err := r.db.WithContext(ctx).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepositoryDatabase) Update(ctx context.Context, c *post.Comment) (*post.Comment, error) {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CommentRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&post.Comment{}).Error
}
