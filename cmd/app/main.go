package main

import (
	"context"
	"os"
	"strconv"
	"time"

	dbadapter "tailorspace/internal/adapters/database"
	"tailorspace/internal/adapters/httpapi"
	redisadapter "tailorspace/internal/adapters/redis"
	"tailorspace/internal/config"
	"tailorspace/internal/core/actor"
	actorapp "tailorspace/internal/core/actor/service"
	"tailorspace/internal/core/follow"
	followapp "tailorspace/internal/core/follow/service"
	"tailorspace/internal/core/post"
	postapp "tailorspace/internal/core/post/service"
	"tailorspace/internal/core/story"
	storyapp "tailorspace/internal/core/story/service"
	"tailorspace/internal/core/user"
	userapp "tailorspace/internal/core/user/service"
	"tailorspace/internal/workers"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	config.InitLogger()
	config.Init()

	db, err := config.InitDB()
	if err != nil {
		config.Logger.Fatal("Error connecting to the database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&user.User{},
		&actor.Actor{},
		&follow.Follow{},
		&story.Story{},
		&post.Post{},
		&post.Comment{},
		&post.Share{},
		&post.Tag{},
		&post.Report{},
	); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	redisClient, err := config.InitRedis()
	if err != nil {
		config.Logger.Fatal("Error connecting to Redis", zap.Error(err))
	}

	defer closeResources(config.Logger, db, redisClient.Close)

	jwtKey := []byte(os.Getenv("JWT_SECRET"))

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	actorRepo := dbadapter.NewActorRepositoryDatabase(db)
	followRepo := dbadapter.NewFollowRepositoryDatabase(db)
	storyRepo := dbadapter.NewStoryRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db)
	shareRepo := dbadapter.NewShareRepositoryDatabase(db)
	tagRepo := dbadapter.NewTagRepositoryDatabase(db)
	reportRepo := dbadapter.NewReportRepositoryDatabase(db)
	feedCache := redisadapter.NewFeedCacheRedis(redisClient)

	userSvc := userapp.NewUserService(userRepo, jwtKey, config.Logger)
	actorSvc := actorapp.NewActorService(actorRepo, feedCache, config.Logger)
	followSvc := followapp.NewFollowService(followRepo, actorRepo, feedCache, config.Logger)
	storySvc := storyapp.NewStoryService(storyRepo, followSvc, config.Logger)
	postSvc := postapp.NewPostService(postRepo, commentRepo, shareRepo, tagRepo, reportRepo, config.Logger)

	r := httpapi.SetupRoutes(jwtKey, actorRepo, userSvc, actorSvc, followSvc, storySvc, postSvc)

	batchSize, err := strconv.Atoi(os.Getenv("BATCH_SIZE"))
	if err != nil || batchSize <= 0 {
		batchSize = 100
	}

	worker := workers.NewFeedCacheWorker(feedCache, followSvc, batchSize, 5*time.Second, config.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger, db *gorm.DB, closeRedis func() error) {
	if err := closeRedis(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}
