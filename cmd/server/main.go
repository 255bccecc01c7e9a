package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thedevhaider/dating-network/internal/config"
	"github.com/thedevhaider/dating-network/internal/handlers"
	"github.com/thedevhaider/dating-network/internal/services"
	"github.com/thedevhaider/dating-network/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	ctx := context.Background()

	var (
		userService    services.UserService
		profileService services.ProfileService
		voteService    services.VoteService
	)

	if cfg.MongoURI != "" {
		mongoUsers, err := services.NewMongoUserService(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatal().Err(err).Msg("connect users store")
		}
		defer mongoUsers.Close(ctx)

		mongoProfiles, err := services.NewMongoProfileService(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatal().Err(err).Msg("connect profiles store")
		}
		defer mongoProfiles.Close(ctx)

		mongoVotes, err := services.NewMongoVoteService(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatal().Err(err).Msg("connect votes store")
		}
		defer mongoVotes.Close(ctx)

		userService = mongoUsers
		profileService = mongoProfiles
		voteService = mongoVotes
	} else {
		log.Warn().Str("dataDir", cfg.DataDir).Msg("MONGO_URI not set; using in-memory services with JSON snapshots")

		usersStore, err := storage.NewJSONStore(cfg.DataDir, "users.json")
		if err != nil {
			log.Fatal().Err(err).Msg("open users snapshot")
		}
		profilesStore, err := storage.NewJSONStore(cfg.DataDir, "profiles.json")
		if err != nil {
			log.Fatal().Err(err).Msg("open profiles snapshot")
		}
		votesStore, err := storage.NewJSONStore(cfg.DataDir, "votes.json")
		if err != nil {
			log.Fatal().Err(err).Msg("open votes snapshot")
		}

		memoryUsers := services.NewMemoryUserService(usersStore)
		userService = memoryUsers
		profileService = services.NewMemoryProfileService(memoryUsers, profilesStore)
		voteService = services.NewMemoryVoteService(votesStore)
	}

	imageService := services.NewImageService(cfg.UploadDir)

	userHandler := handlers.NewUserHandler(userService)
	profileHandler := handlers.NewProfileHandler(profileService, userService)
	voteHandler := handlers.NewVoteHandler(voteService, userService, profileService)
	imageHandler := handlers.NewImageHandler(imageService, cfg.MaxUploadSizeMB)

	r := handlers.NewRouter(userHandler, profileHandler, voteHandler, imageHandler, cfg.UploadDir)

	log.Info().Str("addr", cfg.ServerAddress).Msg("server starting")
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
