package follow

import (
	"context"
	"tailorspace/internal/core/follow"
)

// FollowRepository is the outbound port for the follow graph.
type FollowRepository interface {
	Create(ctx context.Context, f *follow.Follow) (*follow.Follow, error)
	Delete(ctx context.Context, userID, actorID uint) error
	FindByUserID(ctx context.Context, userID uint) ([]*follow.Follow, error)
	Exists(ctx context.Context, userID, actorID uint) (bool, error)
}

type FollowDTO struct {
	ID      uint `json:"id"`
	IDUser  uint `json:"idUser"`
	IDActor uint `json:"idActor"`
}
