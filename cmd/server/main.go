package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"coffeeshop_backend/internal/app/di"
	"coffeeshop_backend/internal/app/router"
	authadapters "coffeeshop_backend/internal/feature/auth/adapters"
	authhandler "coffeeshop_backend/internal/feature/auth/transport/handler"
	authusecase "coffeeshop_backend/internal/feature/auth/usecase"
	menuadapters "coffeeshop_backend/internal/feature/menu/adapters"
	menuhandler "coffeeshop_backend/internal/feature/menu/transport/handler"
	menuusecase "coffeeshop_backend/internal/feature/menu/usecase"
	newsletteradapters "coffeeshop_backend/internal/feature/newsletter/adapters"
	newsletterhandler "coffeeshop_backend/internal/feature/newsletter/transport/handler"
	newsletterusecase "coffeeshop_backend/internal/feature/newsletter/usecase"
	infradb "coffeeshop_backend/internal/platform/db"
	infraredis "coffeeshop_backend/internal/platform/redis"
	"coffeeshop_backend/internal/platform/session"
	"coffeeshop_backend/internal/platform/validate"
)

// sessionSweepInterval is how often expired sessions are purged from the
// MySQL session store. The Redis store expires keys on its own.
const sessionSweepInterval = time.Hour

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to MySQL sessions, no menu cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	sessionCfg := session.LoadConfig()

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	menuRepo := di.NewMenuRepository(rdb, db)
	shopRepo := menuadapters.NewShopMySQL(db)
	subscriberRepo := newsletteradapters.NewSubscriberMySQL(db)
	contactRepo := newsletteradapters.NewContactMySQL(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo,
		validate.NewPhoneValidator(), session.NewTokenSource(), sessionCfg.TTL)
	menuUC := menuusecase.NewMenuUsecase(menuRepo, shopRepo)
	newsletterUC := newsletterusecase.NewNewsletterUsecase(subscriberRepo, contactRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, sessionCfg)
	menuH := menuhandler.NewMenuHandler(menuUC)
	newsletterH := newsletterhandler.NewNewsletterHandler(newsletterUC)

	// Periodic sweep of expired sessions (no-op for the Redis store)
	go func() {
		ticker := time.NewTicker(sessionSweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			n, err := sessionRepo.DeleteExpired(context.Background())
			if err != nil {
				slog.Warn("session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("expired sessions removed", "count", n)
			}
		}
	}()

	r := router.NewRouter(authH, menuH, newsletterH, authUC, sessionCfg.CookieName)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
