package httpapi

import (
	"context"

	"tailorspace/internal/adapters/httpapi/middleware"
	"tailorspace/internal/core/access"
	actorPort "tailorspace/internal/ports/actor"
	followPort "tailorspace/internal/ports/follow"
	postPort "tailorspace/internal/ports/post"
	storyPort "tailorspace/internal/ports/story"
	userPort "tailorspace/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: what the controllers need from the use cases.

type UserUseCase interface {
	Register(ctx context.Context, username, email, password string) (*userPort.UserDTO, error)
	Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
}

type ActorUseCase interface {
	Create(ctx context.Context, in actorPort.CreateActorDTO) (*actorPort.ActorDTO, error)
	All(ctx context.Context) ([]*actorPort.ActorDTO, error)
	ByID(ctx context.Context, id uint) (*actorPort.ActorDTO, error)
	Update(ctx context.Context, p access.Principal, id uint, fields map[string]interface{}) (*actorPort.ActorDTO, error)
	Delete(ctx context.Context, p access.Principal, id uint) (*actorPort.ActorDTO, error)
}

type FollowUseCase interface {
	Follow(ctx context.Context, p access.Principal, actorID uint) (*followPort.FollowDTO, error)
	Unfollow(ctx context.Context, p access.Principal, actorID uint) error
	Following(ctx context.Context, p access.Principal) ([]*followPort.FollowDTO, error)
}

type StoryUseCase interface {
	Create(ctx context.Context, p access.Principal, title, description, photo string) (*storyPort.StoryDTO, error)
	Delete(ctx context.Context, p access.Principal, id uint) (*storyPort.StoryDTO, error)
	View(ctx context.Context, p access.Principal, id uint) (*storyPort.VuesDTO, error)
	Views(ctx context.Context, p access.Principal, id uint) (*storyPort.VuesDTO, error)
	My(ctx context.Context, p access.Principal) ([]*storyPort.StoryDTO, error)
	All(ctx context.Context) ([]*storyPort.StoryDTO, error)
	Following(ctx context.Context, p access.Principal) ([]*storyPort.StoryDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, p access.Principal, content, photo string) (*postPort.PostDTO, error)
	AllPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	MyPosts(ctx context.Context, p access.Principal) ([]*postPort.PostDTO, error)
	PostsByActor(ctx context.Context, actorID uint) ([]*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, p access.Principal, id uint, content, photo string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, p access.Principal, id uint) (*postPort.PostDTO, error)

	CreateShare(ctx context.Context, p access.Principal, postID, recipientActorID uint) (*postPort.ShareDTO, error)
	SharedByMe(ctx context.Context, p access.Principal) ([]*postPort.ShareDTO, error)
	SharedWithMe(ctx context.Context, p access.Principal) ([]*postPort.ShareDTO, error)
	DeleteShare(ctx context.Context, p access.Principal, id uint) error

	CreateComment(ctx context.Context, p access.Principal, postID uint, text string) (*postPort.CommentDTO, error)
	Comments(ctx context.Context, postID uint) ([]*postPort.CommentDTO, error)
	UpdateComment(ctx context.Context, p access.Principal, id uint, text string) (*postPort.CommentDTO, error)
	DeleteComment(ctx context.Context, p access.Principal, id uint) error

	CreateTag(ctx context.Context, p access.Principal, postID, taggedActorID uint) (*postPort.TagDTO, error)
	TagsByPost(ctx context.Context, postID uint) ([]*postPort.TagDTO, error)
	MyTags(ctx context.Context, p access.Principal) ([]*postPort.TagDTO, error)

	CreateReport(ctx context.Context, p access.Principal, postID uint, reason string) (*postPort.ReportDTO, error)
}

// SetupRoutes wires the controllers; use cases and the actor lookup for the
// auth middleware are injected from main.
func SetupRoutes(
	jwtKey []byte,
	actors actorPort.ActorRepository,
	userUC UserUseCase,
	actorUC ActorUseCase,
	followUC FollowUseCase,
	storyUC StoryUseCase,
	postUC PostUseCase,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	uc := NewUserController(userUC)
	ac := NewActorController(actorUC)
	fc := NewFollowController(followUC)
	sc := NewStoryController(storyUC)
	pc := NewPostController(postUC)

	auth := middleware.JWTAuth(jwtKey, actors)

	r.POST("/users/register", uc.Register)
	r.POST("/users/login", uc.Login)

	actorsGroup := r.Group("/actors", auth)
	{
		actorsGroup.POST("", ac.Create)
		actorsGroup.GET("", ac.All)
		actorsGroup.GET("/:id", ac.ByID)
		actorsGroup.PUT("/:id", ac.Update)
		actorsGroup.DELETE("/:id", ac.Delete)
	}

	follows := r.Group("/follows", auth)
	{
		follows.POST("", fc.Follow)
		follows.DELETE("", fc.Unfollow)
		follows.GET("", fc.Following)
	}

	stories := r.Group("/stories", auth)
	{
		stories.POST("", middleware.RequireActor(), sc.Create)
		stories.GET("", sc.All)
		stories.GET("/my", middleware.RequireActor(), sc.My)
		stories.GET("/following", sc.Following)
		stories.DELETE("/:idStory", middleware.RequireActor(), sc.Delete)
		stories.POST("/:idStory/view", sc.View)
		stories.GET("/:idStory/views", middleware.RequireActor(), sc.Views)
	}

	posts := r.Group("/posts", auth)
	{
		posts.POST("", middleware.RequireTailor(), pc.Create)
		posts.GET("", pc.All)
		posts.GET("/myposts", middleware.RequireTailor(), pc.My)
		posts.GET("/byactor", pc.ByActor)
		posts.PUT("/:postId", middleware.RequireTailor(), pc.Update)
		posts.DELETE("/:id", middleware.RequireTailor(), pc.Delete)

		posts.POST("/shares", pc.CreateShare)
		posts.GET("/shares/myshares", pc.MyShares)
		posts.GET("/shares/sharedwithme", middleware.RequireActor(), pc.SharedWithMe)
		posts.DELETE("/shares/:id", middleware.RequireActor(), pc.DeleteShare)

		posts.POST("/report", middleware.RequireTailor(), pc.CreateReport)

		posts.POST("/comment/:postId", pc.CreateComment)
		posts.GET("/comment", pc.Comments)
		posts.PUT("/comment/:id", pc.UpdateComment)
		posts.DELETE("/comment/:id", pc.DeleteComment)

		posts.POST("/tag/:postId", middleware.RequireActor(), pc.CreateTag)
		posts.GET("/tag", middleware.RequireActor(), pc.MyTags)
		posts.GET("/tagbypost/:postId", pc.TagsByPost)
	}

	return r
}
