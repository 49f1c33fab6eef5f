package story

import (
	"context"
	"tailorspace/internal/core/story"
)

// StoryRepository is the outbound port for story persistence. Lookups return
// (nil, nil) when no row matches.
type StoryRepository interface {
	Create(ctx context.Context, s *story.Story) (*story.Story, error)
	FindByID(ctx context.Context, id uint) (*story.Story, error)
	FindByActorID(ctx context.Context, actorID uint) ([]*story.Story, error)
	FindByActorIDs(ctx context.Context, actorIDs []uint) ([]*story.Story, error)
	FindAll(ctx context.Context) ([]*story.Story, error)
	Delete(ctx context.Context, id uint) error
	// IncrementVues adds one to the view counter in a single store-side
	// update and returns the new count. Concurrent calls must all be
	// reflected.
	IncrementVues(ctx context.Context, id uint) (uint, error)
}

type StoryDTO struct {
	ID          uint   `json:"id"`
	IDActory    uint   `json:"idActory"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
	Vues        uint   `json:"vues"`
	CreatedAt   string `json:"createdAt"`
}

// VuesDTO is the view-count-only payload returned by the view and
// view-analytics operations.
type VuesDTO struct {
	Vues uint `json:"vues"`
}
