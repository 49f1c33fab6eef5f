package actor

import (
	"context"
	"tailorspace/internal/core/actor"
)

// ActorRepository is the outbound port for actor persistence. Lookups return
// (nil, nil) when no row matches; callers decide whether that is NotFound.
type ActorRepository interface {
	Create(ctx context.Context, a *actor.Actor) (*actor.Actor, error)
	FindByID(ctx context.Context, id uint) (*actor.Actor, error)
	FindByUserID(ctx context.Context, userID uint) (*actor.Actor, error)
	FindAll(ctx context.Context) ([]*actor.Actor, error)
	// Update applies the given column values and returns the updated row.
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*actor.Actor, error)
	Delete(ctx context.Context, id uint) error
}

// CreateActorDTO carries the actor-creation payload into the use case.
type CreateActorDTO struct {
	IDUser  uint   `json:"idUser"`
	Role    string `json:"role"`
	Address string `json:"address"`
	Bio     string `json:"bio"`
	Credits int    `json:"credits"`
	Vote    int    `json:"vote"`
}

type ActorDTO struct {
	ID      uint   `json:"id"`
	IDUser  uint   `json:"idUser"`
	Role    string `json:"role"`
	Address string `json:"address"`
	Bio     string `json:"bio"`
	Credits int    `json:"credits"`
	Vote    int    `json:"vote"`
}
