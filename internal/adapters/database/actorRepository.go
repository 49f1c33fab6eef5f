package database

import (
	"context"
	"errors"

	"tailorspace/internal/core/actor"

	"gorm.io/gorm"
)

// ActorRepositoryDatabase implements the actor port on gorm.
type ActorRepositoryDatabase struct {
	db *gorm.DB
}

func NewActorRepositoryDatabase(db *gorm.DB) *ActorRepositoryDatabase {
	return &ActorRepositoryDatabase{db: db}
}

func (r *ActorRepositoryDatabase) Create(ctx context.Context, a *actor.Actor) (*actor.Actor, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ActorRepositoryDatabase) FindByID(ctx context.Context, id uint) (*actor.Actor, error) {
	var a actor.Actor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActorRepositoryDatabase) FindByUserID(ctx context.Context, userID uint) (*actor.Actor, error) {
	var a actor.Actor
	err := r.db.WithContext(ctx).Where("idUser = ?", userID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActorRepositoryDatabase) FindAll(ctx context.Context) ([]*actor.Actor, error) {
	var actors []*actor.Actor
	if err := r.db.WithContext(ctx).Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

func (r *ActorRepositoryDatabase) Update(ctx context.Context, id uint, fields map[string]interface{}) (*actor.Actor, error) {
	if err := r.db.WithContext(ctx).Model(&actor.Actor{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *ActorRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&actor.Actor{}).Error
}
