package storyapp

import (
	"context"
	"time"

	"tailorspace/internal/core/access"
	"tailorspace/internal/core/apperr"
	storyEntity "tailorspace/internal/core/story"
	storyPort "tailorspace/internal/ports/story"

	"go.uber.org/zap"
)

// FollowedActorSource resolves the set of actor ids a user's feed aggregates.
type FollowedActorSource interface {
	FollowedActorIDs(ctx context.Context, userID uint) (map[uint]struct{}, error)
}

type StoryService struct {
	StoryRepository storyPort.StoryRepository
	follows         FollowedActorSource
	logger          *zap.Logger
}

func NewStoryService(repo storyPort.StoryRepository, follows FollowedActorSource, logger *zap.Logger) *StoryService {
	return &StoryService{
		StoryRepository: repo,
		follows:         follows,
		logger:          logger,
	}
}

func (s *StoryService) Create(ctx context.Context, p access.Principal, title, description, photo string) (*storyPort.StoryDTO, error) {
	if !p.HasActor() {
		return nil, apperr.Unauthorized("Unauthorized: User ID is missing")
	}
	if title == "" || description == "" || photo == "" {
		return nil, apperr.Validation("title, description and photo are required")
	}

	created, err := s.StoryRepository.Create(ctx, &storyEntity.Story{
		IDActory:    p.ActorID,
		Title:       title,
		Description: description,
		Photo:       photo,
	})
	if err != nil {
		s.logger.Error("failed to create story", zap.Uint("actorID", p.ActorID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return toDTO(created), nil
}

func (s *StoryService) Delete(ctx context.Context, p access.Principal, id uint) (*storyPort.StoryDTO, error) {
	st, err := s.StoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if d := access.DecideActorOwnership(p, st != nil, ownerOf(st), "Story not found", "You can't delete this story"); !d.Allowed() {
		return nil, d.Err()
	}

	if err := s.StoryRepository.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete story", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return toDTO(st), nil
}

// View registers one view and returns the updated count. The owner may not
// view their own story: being the owner is the one thing that makes this
// operation invalid. The increment happens store-side so concurrent viewers
// are all counted.
func (s *StoryService) View(ctx context.Context, p access.Principal, id uint) (*storyPort.VuesDTO, error) {
	st, err := s.StoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if st == nil {
		return nil, apperr.NotFound("Story not found")
	}
	if p.OwnsAsActor(st.IDActory) {
		return nil, apperr.Forbidden("You can't view your own story")
	}

	vues, err := s.StoryRepository.IncrementVues(ctx, id)
	if err != nil {
		s.logger.Error("failed to increment story views", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return &storyPort.VuesDTO{Vues: vues}, nil
}

// Views exposes the view counter to its owner only; counts are private
// analytics even though anyone but the owner may add to them.
func (s *StoryService) Views(ctx context.Context, p access.Principal, id uint) (*storyPort.VuesDTO, error) {
	st, err := s.StoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if d := access.DecideActorOwnership(p, st != nil, ownerOf(st), "Story not found", "You are not authorized to see this information"); !d.Allowed() {
		return nil, d.Err()
	}
	return &storyPort.VuesDTO{Vues: st.Vues}, nil
}

func (s *StoryService) My(ctx context.Context, p access.Principal) ([]*storyPort.StoryDTO, error) {
	if !p.HasActor() {
		return []*storyPort.StoryDTO{}, nil
	}
	stories, err := s.StoryRepository.FindByActorID(ctx, p.ActorID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return toDTOs(stories), nil
}

func (s *StoryService) All(ctx context.Context) ([]*storyPort.StoryDTO, error) {
	stories, err := s.StoryRepository.FindAll(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return toDTOs(stories), nil
}

// Following returns the stories of every actor in the principal's feed set.
// An empty set yields an empty sequence, not an error.
func (s *StoryService) Following(ctx context.Context, p access.Principal) ([]*storyPort.StoryDTO, error) {
	if p.UserID == 0 {
		return nil, apperr.Unauthorized("Unauthorized")
	}

	set, err := s.follows.FollowedActorIDs(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return []*storyPort.StoryDTO{}, nil
	}

	actorIDs := make([]uint, 0, len(set))
	for id := range set {
		actorIDs = append(actorIDs, id)
	}

	stories, err := s.StoryRepository.FindByActorIDs(ctx, actorIDs)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return toDTOs(stories), nil
}

func ownerOf(st *storyEntity.Story) uint {
	if st == nil {
		return 0
	}
	return st.IDActory
}

func toDTO(st *storyEntity.Story) *storyPort.StoryDTO {
	return &storyPort.StoryDTO{
		ID:          st.ID,
		IDActory:    st.IDActory,
		Title:       st.Title,
		Description: st.Description,
		Photo:       st.Photo,
		Vues:        st.Vues,
		CreatedAt:   st.CreatedAt.Format(time.RFC3339),
	}
}

func toDTOs(stories []*storyEntity.Story) []*storyPort.StoryDTO {
	dtos := make([]*storyPort.StoryDTO, 0, len(stories))
	for _, st := range stories {
		dtos = append(dtos, toDTO(st))
	}
	return dtos
}
