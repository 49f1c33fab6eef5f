package actorapp

import (
	"context"

	"tailorspace/internal/core/access"
	actorEntity "tailorspace/internal/core/actor"
	"tailorspace/internal/core/apperr"
	actorPort "tailorspace/internal/ports/actor"
	"tailorspace/internal/ports/feedcache"

	"go.uber.org/zap"
)

// updatableFields is the whitelist for partial actor updates. Anything else
// in the request body is dropped before the store sees it.
var updatableFields = map[string]bool{
	"idUser":  true,
	"address": true,
	"bio":     true,
	"credits": true,
	"vote":    true,
	"role":    true,
}

type ActorService struct {
	ActorRepository actorPort.ActorRepository
	cache           feedcache.FeedCache
	logger          *zap.Logger
}

func NewActorService(repo actorPort.ActorRepository, cache feedcache.FeedCache, logger *zap.Logger) *ActorService {
	return &ActorService{
		ActorRepository: repo,
		cache:           cache,
		logger:          logger,
	}
}

func (s *ActorService) Create(ctx context.Context, in actorPort.CreateActorDTO) (*actorPort.ActorDTO, error) {
	role, ok := access.ParseRole(in.Role)
	if !ok {
		return nil, apperr.Validation("Invalid role provided. Please choose either 'TAILOR' or 'VENDOR'.")
	}

	existing, err := s.ActorRepository.FindByUserID(ctx, in.IDUser)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if existing != nil {
		return nil, apperr.Validation("User already has an actor")
	}

	created, err := s.ActorRepository.Create(ctx, &actorEntity.Actor{
		IDUser:  in.IDUser,
		Role:    string(role),
		Address: in.Address,
		Bio:     in.Bio,
		Credits: in.Credits,
		Vote:    in.Vote,
	})
	if err != nil {
		s.logger.Error("failed to create actor", zap.Uint("idUser", in.IDUser), zap.Error(err))
		return nil, apperr.Store(err)
	}

	// The owner's feed now implicitly includes their own actor.
	s.markDirty(ctx, in.IDUser)

	return toDTO(created), nil
}

func (s *ActorService) All(ctx context.Context) ([]*actorPort.ActorDTO, error) {
	actors, err := s.ActorRepository.FindAll(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	dtos := make([]*actorPort.ActorDTO, 0, len(actors))
	for _, a := range actors {
		dtos = append(dtos, toDTO(a))
	}
	return dtos, nil
}

func (s *ActorService) ByID(ctx context.Context, id uint) (*actorPort.ActorDTO, error) {
	a, err := s.ActorRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if a == nil {
		return nil, apperr.NotFound("Actor not found")
	}
	return toDTO(a), nil
}

// Update applies a partial update. Only whitelisted fields are written; a
// request with no whitelisted field at all is a validation error, not a
// silent no-op.
func (s *ActorService) Update(ctx context.Context, p access.Principal, id uint, fields map[string]interface{}) (*actorPort.ActorDTO, error) {
	picked := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if updatableFields[key] {
			picked[key] = value
		}
	}
	if len(picked) == 0 {
		return nil, apperr.Validation("No valid fields provided to update")
	}

	if raw, ok := picked["role"]; ok {
		roleStr, _ := raw.(string)
		if _, ok := access.ParseRole(roleStr); !ok {
			return nil, apperr.Validation("Invalid role provided. Please choose either 'TAILOR' or 'VENDOR'.")
		}
	}

	a, err := s.ActorRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if d := access.DecideUserOwnership(p, a != nil, ownerOf(a), "Actor not found", "You can't update this actor"); !d.Allowed() {
		return nil, d.Err()
	}

	updated, err := s.ActorRepository.Update(ctx, id, picked)
	if err != nil {
		s.logger.Error("failed to update actor", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return toDTO(updated), nil
}

func (s *ActorService) Delete(ctx context.Context, p access.Principal, id uint) (*actorPort.ActorDTO, error) {
	a, err := s.ActorRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if d := access.DecideUserOwnership(p, a != nil, ownerOf(a), "Actor not found", "You can't delete this actor"); !d.Allowed() {
		return nil, d.Err()
	}

	if err := s.ActorRepository.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete actor", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}

	s.markDirty(ctx, a.IDUser)

	return toDTO(a), nil
}

func (s *ActorService) markDirty(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.MarkDirty(ctx, userID); err != nil {
		s.logger.Warn("failed to mark feed cache dirty", zap.Uint("userID", userID), zap.Error(err))
	}
}

func ownerOf(a *actorEntity.Actor) uint {
	if a == nil {
		return 0
	}
	return a.IDUser
}

func toDTO(a *actorEntity.Actor) *actorPort.ActorDTO {
	return &actorPort.ActorDTO{
		ID:      a.ID,
		IDUser:  a.IDUser,
		Role:    a.Role,
		Address: a.Address,
		Bio:     a.Bio,
		Credits: a.Credits,
		Vote:    a.Vote,
	}
}
