package main

import (
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"devsnap_backend/internal/app/router"
	authadapters "devsnap_backend/internal/feature/auth/adapters"
	authhandler "devsnap_backend/internal/feature/auth/transport/handler"
	authusecase "devsnap_backend/internal/feature/auth/usecase"
	dashboardhandler "devsnap_backend/internal/feature/dashboard/transport/handler"
	dashboardusecase "devsnap_backend/internal/feature/dashboard/usecase"
	sharelinkadapters "devsnap_backend/internal/feature/sharelinks/adapters"
	sharelinkhandler "devsnap_backend/internal/feature/sharelinks/transport/handler"
	sharelinkusecase "devsnap_backend/internal/feature/sharelinks/usecase"
	snapshotadapters "devsnap_backend/internal/feature/snapshots/adapters"
	snapshothandler "devsnap_backend/internal/feature/snapshots/transport/handler"
	snapshotusecase "devsnap_backend/internal/feature/snapshots/usecase"
	"devsnap_backend/internal/platform/cache"
	"devsnap_backend/internal/platform/config"
	infradb "devsnap_backend/internal/platform/db"
	jwtmw "devsnap_backend/internal/platform/jwt"
	"devsnap_backend/internal/platform/mailer"
	infraredis "devsnap_backend/internal/platform/redis"
	"devsnap_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	cfg := config.Load()

	slog.Info("starting devsnap backend", "session_strategy", cfg.SessionStrategy)
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db (falls back to in-memory SQLite when DATABASE_URL is unset)
	db := infradb.OpenDB(cfg.DatabaseURL, cfg.RunMigrations)

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		rdb = nil
	} else if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	tokenRepo := authadapters.NewVerificationTokenPostgres(db)
	snapshotRepo := snapshotadapters.NewSnapshotPostgres(db)
	ownerChecker := snapshotadapters.NewOwnerChecker(db)
	linkRepo := sharelinkadapters.NewShareLinkPostgres(db)

	// Redis cache in front of single-snapshot reads (share pages are read-heavy)
	cachedSnapshotRepo := cache.NewCachingSnapshotRepository(rdb, 5*time.Minute, snapshotRepo, "snapshots")

	// Mailer
	var sender authusecase.TokenSender
	if cfg.ResendAPIKey != "" {
		sender = mailer.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
	} else {
		log.Println("[WARN] RESEND_API_KEY is not set. Sign-in tokens are logged instead of mailed.")
		sender = mailer.LogMailer{}
	}

	// Usecase
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiry)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenRepo, jwtGen, sender, cfg.SignInTokenTTL)
	userUC := authusecase.NewUserUsecase(userRepo)
	snapshotUC := snapshotusecase.NewSnapshotUsecase(cachedSnapshotRepo, ownerChecker)
	linkUC := sharelinkusecase.NewShareLinkUsecase(linkRepo, cachedSnapshotRepo)
	statsUC := dashboardusecase.NewStatsUsecase(cachedSnapshotRepo, linkRepo)

	// Handler
	resolveLimiter := ratelimiter.NewRateLimiter(30, time.Minute)
	authH := authhandler.NewAuthHandler(authUC)
	userH := authhandler.NewUserHandler(userUC)
	snapshotH := snapshothandler.NewSnapshotHandler(snapshotUC)
	linkH := sharelinkhandler.NewShareLinkHandler(linkUC, resolveLimiter)
	statsH := dashboardhandler.NewStatsHandler(statsUC)

	r := router.NewRouter(cfg, authH, userH, snapshotH, linkH, statsH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
