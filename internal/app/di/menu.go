package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	menuadapters "coffeeshop_backend/internal/feature/menu/adapters"
	"coffeeshop_backend/internal/feature/menu/usecase"
	"coffeeshop_backend/internal/platform/cache"
)

// NewMenuRepository creates the menu repository, wrapped with the Redis
// list cache when a client is available. A nil client degrades to plain
// MySQL reads.
func NewMenuRepository(rdb *redis.Client, db *gorm.DB) usecase.MenuRepository {
	repo := menuadapters.NewMenuMySQL(db)
	return cache.NewCachingMenuRepository(rdb, 0, repo, "menu")
}
