package followapp

import (
	"context"

	"tailorspace/internal/core/access"
	"tailorspace/internal/core/apperr"
	followEntity "tailorspace/internal/core/follow"
	actorPort "tailorspace/internal/ports/actor"
	"tailorspace/internal/ports/feedcache"
	followPort "tailorspace/internal/ports/follow"

	"go.uber.org/zap"
)

// FollowService owns the follow graph and the followed-actor-set aggregation
// that feeds the story feed.
type FollowService struct {
	FollowRepository followPort.FollowRepository
	ActorRepository  actorPort.ActorRepository
	cache            feedcache.FeedCache
	logger           *zap.Logger
}

func NewFollowService(followRepo followPort.FollowRepository, actorRepo actorPort.ActorRepository, cache feedcache.FeedCache, logger *zap.Logger) *FollowService {
	return &FollowService{
		FollowRepository: followRepo,
		ActorRepository:  actorRepo,
		cache:            cache,
		logger:           logger,
	}
}

func (s *FollowService) Follow(ctx context.Context, p access.Principal, actorID uint) (*followPort.FollowDTO, error) {
	if p.ActorID == actorID && p.HasActor() {
		// Implicit self-follow; the edge is never stored.
		return nil, apperr.Validation("You already follow your own actor")
	}

	a, err := s.ActorRepository.FindByID(ctx, actorID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if a == nil {
		return nil, apperr.NotFound("Actor not found")
	}

	exists, err := s.FollowRepository.Exists(ctx, p.UserID, actorID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if exists {
		return nil, apperr.Validation("Already following this actor")
	}

	created, err := s.FollowRepository.Create(ctx, &followEntity.Follow{
		IDUser:  p.UserID,
		IDActor: actorID,
	})
	if err != nil {
		s.logger.Error("failed to create follow", zap.Uint("userID", p.UserID), zap.Uint("actorID", actorID), zap.Error(err))
		return nil, apperr.Store(err)
	}

	s.markDirty(ctx, p.UserID)

	return &followPort.FollowDTO{ID: created.ID, IDUser: created.IDUser, IDActor: created.IDActor}, nil
}

func (s *FollowService) Unfollow(ctx context.Context, p access.Principal, actorID uint) error {
	exists, err := s.FollowRepository.Exists(ctx, p.UserID, actorID)
	if err != nil {
		return apperr.Store(err)
	}
	if !exists {
		return apperr.NotFound("Follow not found")
	}

	if err := s.FollowRepository.Delete(ctx, p.UserID, actorID); err != nil {
		s.logger.Error("failed to delete follow", zap.Uint("userID", p.UserID), zap.Uint("actorID", actorID), zap.Error(err))
		return apperr.Store(err)
	}

	s.markDirty(ctx, p.UserID)
	return nil
}

func (s *FollowService) Following(ctx context.Context, p access.Principal) ([]*followPort.FollowDTO, error) {
	follows, err := s.FollowRepository.FindByUserID(ctx, p.UserID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	dtos := make([]*followPort.FollowDTO, 0, len(follows))
	for _, f := range follows {
		dtos = append(dtos, &followPort.FollowDTO{ID: f.ID, IDUser: f.IDUser, IDActor: f.IDActor})
	}
	return dtos, nil
}

// FollowedActorIDs resolves the set of actor ids whose content aggregates
// into the user's feed: every followed actor, plus the user's own actor when
// one exists. The union of the own actor is an explicit step, not a side
// effect of the follow rows. A user with no follows and no actor gets an
// empty set.
func (s *FollowService) FollowedActorIDs(ctx context.Context, userID uint) (map[uint]struct{}, error) {
	if s.cache != nil {
		if ids, ok, err := s.cache.GetActorSet(ctx, userID); err != nil {
			s.logger.Warn("feed cache read failed", zap.Uint("userID", userID), zap.Error(err))
		} else if ok {
			set := make(map[uint]struct{}, len(ids))
			for _, id := range ids {
				set[id] = struct{}{}
			}
			return set, nil
		}
	}

	set, err := s.followedActorIDsFromStore(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetActorSet(ctx, userID, setToSlice(set)); err != nil {
			s.logger.Warn("feed cache write failed", zap.Uint("userID", userID), zap.Error(err))
		}
	}
	return set, nil
}

// RebuildCache recomputes one user's followed-actor set from the store and
// rewrites the cache entry. Used by the background refresher.
func (s *FollowService) RebuildCache(ctx context.Context, userID uint) error {
	set, err := s.followedActorIDsFromStore(ctx, userID)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.SetActorSet(ctx, userID, setToSlice(set))
}

func (s *FollowService) followedActorIDsFromStore(ctx context.Context, userID uint) (map[uint]struct{}, error) {
	follows, err := s.FollowRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}

	set := make(map[uint]struct{}, len(follows)+1)
	for _, f := range follows {
		set[f.IDActor] = struct{}{}
	}

	own, err := s.ActorRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if own != nil {
		set[own.ID] = struct{}{}
	}

	return set, nil
}

func (s *FollowService) markDirty(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.MarkDirty(ctx, userID); err != nil {
		s.logger.Warn("failed to mark feed cache dirty", zap.Uint("userID", userID), zap.Error(err))
	}
}

func setToSlice(set map[uint]struct{}) []uint {
	ids := make([]uint, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
