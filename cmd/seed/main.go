package main

import (
	"context"
	"errors"
	"os"

	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
	"github.com/portfolio-site/blog-api/internal/core/service"
	"github.com/portfolio-site/blog-api/internal/infrastructure/config"
	mongodb "github.com/portfolio-site/blog-api/internal/infrastructure/db/mongo"
	"github.com/portfolio-site/blog-api/pkg/logger"
)

const (
	seedEmail    = "admin@portfolio-site.com"
	seedPassword = "changeme-now"
)

// Seeds a demo admin, two tags and one public tagged post. Safe to re-run:
// documents that already exist are left alone.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer client.Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	adminRepo := mongodb.NewAdminRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	tagRepo := mongodb.NewTagRepository(db)

	hasher := service.NewPasswordHasher(cfg.Auth.Pepper, cfg.Auth.BcryptCost)
	tokens := service.NewTokenService([]byte(cfg.JWT.Secret), cfg.JWT.Issuer, cfg.JWT.Lifetime(), cfg.JWT.Skew())
	txManager := mongodb.NewSessionTxManager(client)
	authService := service.NewAuthService(adminRepo, hasher, tokens, log)
	tagService := service.NewTagService(tagRepo, postRepo, txManager, nil, log)
	postService := service.NewPostService(postRepo, tagRepo, txManager, nil, log)

	admin, err := authService.Register(ctx, seedEmail, seedPassword)
	if errors.Is(err, domain.ErrAlreadyRegistered) {
		log.Info().Str("email", seedEmail).Msg("admin already seeded, nothing to do")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}

	var tagIDs []string
	for _, title := range []string{"Python", "React.js"} {
		tag, err := tagService.CreateTag(ctx, title, "")
		if err != nil {
			log.Fatal().Err(err).Str("tag", title).Msg("seed tag failed")
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	post, err := postService.CreatePost(ctx, admin.ID, ports.CreatePostInput{
		Title:       "Hello, world",
		Description: "A first look at this site.",
		Content:     "Welcome to the portfolio blog. More posts coming soon.",
		IsPublic:    true,
		TagIDs:      tagIDs,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed post failed")
	}

	log.Info().
		Str("admin_id", admin.ID).
		Str("post_id", post.ID).
		Int("tags", len(tagIDs)).
		Msg("seed complete")
}
