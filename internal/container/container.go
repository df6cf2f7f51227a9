package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/sanedge/blog-api/app/db"
	"github.com/sanedge/blog-api/app/observability/metrics"
	"github.com/sanedge/blog-api/config"
	"github.com/sanedge/blog-api/internal/api/auth"
	"github.com/sanedge/blog-api/internal/api/category"
	"github.com/sanedge/blog-api/internal/api/comment"
	"github.com/sanedge/blog-api/internal/api/post"
	"github.com/sanedge/blog-api/internal/api/user"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool

	AuthService auth.AuthService

	AuthHandler     *auth.AuthHandler
	UserHandler     *user.UserHandler
	CategoryHandler *category.CategoryHandler
	PostHandler     *post.PostHandler
	CommentHandler  *comment.CommentHandler
}

// NewContainer opens the database pool, runs migrations and wires
// repositories, services and handlers.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, appMetrics *metrics.AppMetrics) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	if !database.WaitForDB(ctx, pool, logger) {
		pool.Close()
		return nil, fmt.Errorf("database did not become ready")
	}

	if err := database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
		pool.Close()
		logger.Error("Failed to run migrations", slog.Any("error", err))
		return nil, err
	}

	userRepo := user.NewPostgresUserRepo(pool, logger)
	categoryRepo := category.NewPostgresCategoryRepository(pool, logger)
	postRepo := post.NewPostgresPostRepository(pool, logger, appMetrics)
	commentRepo := comment.NewPostgresCommentRepository(pool, logger)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewJWTManager(cfg.JWT)

	authService := auth.NewAuthService(userRepo, hasher, tokens, appMetrics, logger)
	userService := user.NewUserService(userRepo, hasher, logger)
	categoryService := category.NewCategoryService(categoryRepo, logger)
	postService := post.NewPostService(postRepo, logger)
	commentService := comment.NewCommentService(commentRepo, logger)

	return &Container{
		Config:          cfg,
		Logger:          logger,
		Pool:            pool,
		AuthService:     authService,
		AuthHandler:     auth.NewAuthHandler(authService, userService, logger),
		UserHandler:     user.NewUserHandler(userService, logger),
		CategoryHandler: category.NewCategoryHandler(categoryService, logger),
		PostHandler:     post.NewPostHandler(postService, logger),
		CommentHandler:  comment.NewCommentHandler(commentService, logger),
	}, nil
}

// Close releases resources held by the container.
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}
