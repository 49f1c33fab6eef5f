package database

import (
	"context"
	"errors"

	"tailorspace/internal/core/post"

	"gorm.io/gorm"
)

// PostRepositoryDatabase implements the post port on gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (r *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var p post.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepositoryDatabase) FindByActorID(ctx context.Context, actorID uint) ([]*post.Post, error) {
	var posts []*post.Post
	if err := r.db.WithContext(ctx).Where("idActor = ?", actorID).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepositoryDatabase) FindAll(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	if err := r.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteCascade removes the post and everything hanging off it in one
// transaction; either all rows go or none do.
func (r *PostRepositoryDatabase) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("idPost = ?", id).Delete(&post.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idPost = ?", id).Delete(&post.Tag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idPost = ?", id).Delete(&post.Share{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idPost = ?", id).Delete(&post.Report{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&post.Post{}).Error
	})
}
