package postapp

import (
	"context"
	"time"

	"tailorspace/internal/core/access"
	"tailorspace/internal/core/apperr"
	postEntity "tailorspace/internal/core/post"
	postPort "tailorspace/internal/ports/post"

	"go.uber.org/zap"
)

// PostService orchestrates the lifecycle of posts and their sub-resources
// (comments, shares, tags, reports). Every mutation runs the same sequence:
// existence check, authorization, entity validation, store call.
type PostService struct {
	PostRepository    postPort.PostRepository
	CommentRepository postPort.CommentRepository
	ShareRepository   postPort.ShareRepository
	TagRepository     postPort.TagRepository
	ReportRepository  postPort.ReportRepository
	logger            *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	commentRepo postPort.CommentRepository,
	shareRepo postPort.ShareRepository,
	tagRepo postPort.TagRepository,
	reportRepo postPort.ReportRepository,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		CommentRepository: commentRepo,
		ShareRepository:   shareRepo,
		TagRepository:     tagRepo,
		ReportRepository:  reportRepo,
		logger:            logger,
	}
}

func (s *PostService) CreatePost(ctx context.Context, p access.Principal, content, photo string) (*postPort.PostDTO, error) {
	if !p.HasRole(access.RoleTailor) {
		return nil, apperr.Forbidden("Only tailors can create posts")
	}
	if content == "" {
		return nil, apperr.Validation("content is required")
	}

	created, err := s.PostRepository.Create(ctx, &postEntity.Post{
		IDActor: p.ActorID,
		Content: content,
		Photo:   photo,
	})
	if err != nil {
		s.logger.Error("failed to create post", zap.Uint("actorID", p.ActorID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return postToDTO(created), nil
}

func (s *PostService) AllPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return postsToDTOs(posts), nil
}

func (s *PostService) MyPosts(ctx context.Context, p access.Principal) ([]*postPort.PostDTO, error) {
	if !p.HasActor() {
		return []*postPort.PostDTO{}, nil
	}
	return s.PostsByActor(ctx, p.ActorID)
}

func (s *PostService) PostsByActor(ctx context.Context, actorID uint) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindByActorID(ctx, actorID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return postsToDTOs(posts), nil
}

func (s *PostService) UpdatePost(ctx context.Context, p access.Principal, id uint, content, photo string) (*postPort.PostDTO, error) {
	if content == "" && photo == "" {
		return nil, apperr.Validation("No valid fields provided to update")
	}

	existing, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if d := access.DecideActorOwnership(p, existing != nil, postOwner(existing), "Post not found", "You can't update this post"); !d.Allowed() {
		return nil, d.Err()
	}

	if content != "" {
		existing.Content = content
	}
	if photo != "" {
		existing.Photo = photo
	}

	updated, err := s.PostRepository.Update(ctx, existing)
	if err != nil {
		s.logger.Error("failed to update post", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return postToDTO(updated), nil
}

// DeletePost removes the post with its comments, tags, shares and reports in
// one transaction so a partial cascade is never observable.
func (s *PostService) DeletePost(ctx context.Context, p access.Principal, id uint) (*postPort.PostDTO, error) {
	existing, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if d := access.DecideActorOwnership(p, existing != nil, postOwner(existing), "Post not found", "You can't delete this post"); !d.Allowed() {
		return nil, d.Err()
	}

	if err := s.PostRepository.DeleteCascade(ctx, id); err != nil {
		s.logger.Error("failed to delete post", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return postToDTO(existing), nil
}

func (s *PostService) CreateShare(ctx context.Context, p access.Principal, postID, recipientActorID uint) (*postPort.ShareDTO, error) {
	if !p.HasActor() {
		return nil, apperr.Forbidden("Only actors can share posts")
	}

	target, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if target == nil {
		return nil, apperr.NotFound("Post not found")
	}

	created, err := s.ShareRepository.Create(ctx, &postEntity.Share{
		IDPost:    postID,
		Sharer:    p.ActorID,
		Recipient: recipientActorID,
	})
	if err != nil {
		s.logger.Error("failed to create share", zap.Uint("postID", postID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return shareToDTO(created), nil
}

func (s *PostService) SharedByMe(ctx context.Context, p access.Principal) ([]*postPort.ShareDTO, error) {
	if !p.HasActor() {
		return []*postPort.ShareDTO{}, nil
	}
	shares, err := s.ShareRepository.FindBySharer(ctx, p.ActorID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return sharesToDTOs(shares), nil
}

func (s *PostService) SharedWithMe(ctx context.Context, p access.Principal) ([]*postPort.ShareDTO, error) {
	if !p.HasActor() {
		return nil, apperr.Forbidden("Only actors can receive shares")
	}
	shares, err := s.ShareRepository.FindByRecipient(ctx, p.ActorID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return sharesToDTOs(shares), nil
}

func (s *PostService) DeleteShare(ctx context.Context, p access.Principal, id uint) error {
	existing, err := s.ShareRepository.FindByID(ctx, id)
	if err != nil {
		return apperr.Store(err)
	}
	if d := access.DecideActorOwnership(p, existing != nil, shareOwner(existing), "Share not found", "You can't delete this share"); !d.Allowed() {
		return d.Err()
	}

	if err := s.ShareRepository.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete share", zap.Uint("id", id), zap.Error(err))
		return apperr.Store(err)
	}
	return nil
}

func (s *PostService) CreateComment(ctx context.Context, p access.Principal, postID uint, text string) (*postPort.CommentDTO, error) {
	if text == "" {
		return nil, apperr.Validation("text is required")
	}

	target, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if target == nil {
		return nil, apperr.NotFound("Post not found")
	}

	created, err := s.CommentRepository.Create(ctx, &postEntity.Comment{
		IDPost: postID,
		Author: p.UserID,
		Text:   text,
	})
	if err != nil {
		s.logger.Error("failed to create comment", zap.Uint("postID", postID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return commentToDTO(created), nil
}

func (s *PostService) Comments(ctx context.Context, postID uint) ([]*postPort.CommentDTO, error) {
	var (
		comments []*postEntity.Comment
		err      error
	)
	if postID == 0 {
		comments, err = s.CommentRepository.FindAll(ctx)
	} else {
		comments, err = s.CommentRepository.FindByPostID(ctx, postID)
	}
	if err != nil {
		return nil, apperr.Store(err)
	}
	dtos := make([]*postPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, commentToDTO(c))
	}
	return dtos, nil
}

func (s *PostService) UpdateComment(ctx context.Context, p access.Principal, id uint, text string) (*postPort.CommentDTO, error) {
	if text == "" {
		return nil, apperr.Validation("text is required")
	}

	existing, err := s.CommentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if d := access.DecideUserOwnership(p, existing != nil, commentOwner(existing), "Comment not found", "You can't update this comment"); !d.Allowed() {
		return nil, d.Err()
	}

	existing.Text = text
	updated, err := s.CommentRepository.Update(ctx, existing)
	if err != nil {
		s.logger.Error("failed to update comment", zap.Uint("id", id), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return commentToDTO(updated), nil
}

func (s *PostService) DeleteComment(ctx context.Context, p access.Principal, id uint) error {
	existing, err := s.CommentRepository.FindByID(ctx, id)
	if err != nil {
		return apperr.Store(err)
	}
	if d := access.DecideUserOwnership(p, existing != nil, commentOwner(existing), "Comment not found", "You can't delete this comment"); !d.Allowed() {
		return d.Err()
	}

	if err := s.CommentRepository.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete comment", zap.Uint("id", id), zap.Error(err))
		return apperr.Store(err)
	}
	return nil
}

func (s *PostService) CreateTag(ctx context.Context, p access.Principal, postID, taggedActorID uint) (*postPort.TagDTO, error) {
	if !p.HasActor() {
		return nil, apperr.Forbidden("Only actors can tag posts")
	}

	target, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if target == nil {
		return nil, apperr.NotFound("Post not found")
	}

	created, err := s.TagRepository.Create(ctx, &postEntity.Tag{
		IDPost:      postID,
		TaggedActor: taggedActorID,
	})
	if err != nil {
		s.logger.Error("failed to create tag", zap.Uint("postID", postID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return tagToDTO(created), nil
}

func (s *PostService) TagsByPost(ctx context.Context, postID uint) ([]*postPort.TagDTO, error) {
	tags, err := s.TagRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	dtos := make([]*postPort.TagDTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, tagToDTO(t))
	}
	return dtos, nil
}

func (s *PostService) MyTags(ctx context.Context, p access.Principal) ([]*postPort.TagDTO, error) {
	if !p.HasActor() {
		return nil, apperr.Forbidden("Only actors can list their tags")
	}
	tags, err := s.TagRepository.FindByTaggedActor(ctx, p.ActorID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	dtos := make([]*postPort.TagDTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, tagToDTO(t))
	}
	return dtos, nil
}

func (s *PostService) CreateReport(ctx context.Context, p access.Principal, postID uint, reason string) (*postPort.ReportDTO, error) {
	if !p.HasRole(access.RoleTailor) {
		return nil, apperr.Forbidden("Only tailors can report posts")
	}
	if reason == "" {
		return nil, apperr.Validation("reason is required")
	}

	target, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if target == nil {
		return nil, apperr.NotFound("Post not found")
	}

	created, err := s.ReportRepository.Create(ctx, &postEntity.Report{
		IDPost:   postID,
		Reporter: p.ActorID,
		Reason:   reason,
	})
	if err != nil {
		s.logger.Error("failed to create report", zap.Uint("postID", postID), zap.Error(err))
		return nil, apperr.Store(err)
	}
	return reportToDTO(created), nil
}

func postOwner(p *postEntity.Post) uint {
	if p == nil {
		return 0
	}
	return p.IDActor
}

func shareOwner(s *postEntity.Share) uint {
	if s == nil {
		return 0
	}
	return s.Sharer
}

func commentOwner(c *postEntity.Comment) uint {
	if c == nil {
		return 0
	}
	return c.Author
}

func postToDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:        p.ID,
		IDActor:   p.IDActor,
		Content:   p.Content,
		Photo:     p.Photo,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func postsToDTOs(posts []*postEntity.Post) []*postPort.PostDTO {
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, postToDTO(p))
	}
	return dtos
}

func shareToDTO(s *postEntity.Share) *postPort.ShareDTO {
	return &postPort.ShareDTO{ID: s.ID, IDPost: s.IDPost, Sharer: s.Sharer, Recipient: s.Recipient}
}

func sharesToDTOs(shares []*postEntity.Share) []*postPort.ShareDTO {
	dtos := make([]*postPort.ShareDTO, 0, len(shares))
	for _, sh := range shares {
		dtos = append(dtos, shareToDTO(sh))
	}
	return dtos
}

func commentToDTO(c *postEntity.Comment) *postPort.CommentDTO {
	return &postPort.CommentDTO{ID: c.ID, IDPost: c.IDPost, Author: c.Author, Text: c.Text}
}

func tagToDTO(t *postEntity.Tag) *postPort.TagDTO {
	return &postPort.TagDTO{ID: t.ID, IDPost: t.IDPost, TaggedActor: t.TaggedActor}
}

func reportToDTO(r *postEntity.Report) *postPort.ReportDTO {
	return &postPort.ReportDTO{ID: r.ID, IDPost: r.IDPost, Reporter: r.Reporter, Reason: r.Reason}
}
