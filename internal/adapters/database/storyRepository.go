package database

import (
	"context"
	"errors"

	"tailorspace/internal/core/story"

	"gorm.io/gorm"
)

// StoryRepositoryDatabase implements the story port on gorm.
type StoryRepositoryDatabase struct {
	db *gorm.DB
}

func NewStoryRepositoryDatabase(db *gorm.DB) *StoryRepositoryDatabase {
	return &StoryRepositoryDatabase{db: db}
}

func (r *StoryRepositoryDatabase) Create(ctx context.Context, s *story.Story) (*story.Story, error) {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *StoryRepositoryDatabase) FindByID(ctx context.Context, id uint) (*story.Story, error) {
	var s story.Story
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoryRepositoryDatabase) FindByActorID(ctx context.Context, actorID uint) ([]*story.Story, error) {
	var stories []*story.Story
	if err := r.db.WithContext(ctx).Where("idActory = ?", actorID).Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *StoryRepositoryDatabase) FindByActorIDs(ctx context.Context, actorIDs []uint) ([]*story.Story, error) {
	var stories []*story.Story
	if err := r.db.WithContext(ctx).Where("idActory IN ?", actorIDs).Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *StoryRepositoryDatabase) FindAll(ctx context.Context) ([]*story.Story, error) {
	var stories []*story.Story
	if err := r.db.WithContext(ctx).Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *StoryRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&story.Story{}).Error
}

// IncrementVues runs the increment as a single UPDATE so concurrent views
// are never lost to a read-modify-write race.
func (r *StoryRepositoryDatabase) IncrementVues(ctx context.Context, id uint) (uint, error) {
	err := r.db.WithContext(ctx).
		Model(&story.Story{}).
		Where("id = ?", id).
		UpdateColumn("vues", gorm.Expr("vues + ?", 1)).Error
	if err != nil {
		return 0, err
	}

	var s story.Story
	if err := r.db.WithContext(ctx).Select("vues").Where("id = ?", id).First(&s).Error; err != nil {
		return 0, err
	}
	return s.Vues, nil
}
