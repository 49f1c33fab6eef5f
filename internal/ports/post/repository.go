package post

import (
	"context"
	"tailorspace/internal/core/post"
)

// PostRepository is the outbound port for post persistence. Lookups return
// (nil, nil) when no row matches.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uint) (*post.Post, error)
	FindByActorID(ctx context.Context, actorID uint) ([]*post.Post, error)
	FindAll(ctx context.Context) ([]*post.Post, error)
	Update(ctx context.Context, p *post.Post) (*post.Post, error)
	// DeleteCascade removes the post and its comments, tags, shares and
	// reports inside one transaction.
	DeleteCascade(ctx context.Context, id uint) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *post.Comment) (*post.Comment, error)
	FindByID(ctx context.Context, id uint) (*post.Comment, error)
	FindByPostID(ctx context.Context, postID uint) ([]*post.Comment, error)
	FindAll(ctx context.Context) ([]*post.Comment, error)
	Update(ctx context.Context, c *post.Comment) (*post.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type ShareRepository interface {
	Create(ctx context.Context, s *post.Share) (*post.Share, error)
	FindByID(ctx context.Context, id uint) (*post.Share, error)
	FindBySharer(ctx context.Context, actorID uint) ([]*post.Share, error)
	FindByRecipient(ctx context.Context, actorID uint) ([]*post.Share, error)
	Delete(ctx context.Context, id uint) error
}

type TagRepository interface {
	Create(ctx context.Context, t *post.Tag) (*post.Tag, error)
	FindByPostID(ctx context.Context, postID uint) ([]*post.Tag, error)
	FindByTaggedActor(ctx context.Context, actorID uint) ([]*post.Tag, error)
}

type ReportRepository interface {
	Create(ctx context.Context, r *post.Report) (*post.Report, error)
	FindByPostID(ctx context.Context, postID uint) ([]*post.Report, error)
}

type PostDTO struct {
	ID        uint   `json:"id"`
	IDActor   uint   `json:"idActor"`
	Content   string `json:"content"`
	Photo     string `json:"photo"`
	CreatedAt string `json:"createdAt"`
}

type CommentDTO struct {
	ID     uint   `json:"id"`
	IDPost uint   `json:"idPost"`
	Author uint   `json:"author"`
	Text   string `json:"text"`
}

type ShareDTO struct {
	ID        uint `json:"id"`
	IDPost    uint `json:"idPost"`
	Sharer    uint `json:"sharer"`
	Recipient uint `json:"recipient"`
}

type TagDTO struct {
	ID          uint `json:"id"`
	IDPost      uint `json:"idPost"`
	TaggedActor uint `json:"taggedActor"`
}

type ReportDTO struct {
	ID       uint   `json:"id"`
	IDPost   uint   `json:"idPost"`
	Reporter uint   `json:"reporter"`
	Reason   string `json:"reason"`
}
