package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"coffeeshop_backend/internal/feature/menu/domain/entity"
)

// mockMenuRepository is a mock MenuRepository implementation for testing.
type mockMenuRepository struct {
	createFn     func(ctx context.Context, item *entity.MenuItem) error
	listByUserFn func(ctx context.Context, userID uint) ([]entity.MenuItem, error)
	deleteFn     func(ctx context.Context, userID uint, item string) (int64, error)
}

func (m *mockMenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return nil
}

func (m *mockMenuRepository) ListByUser(ctx context.Context, userID uint) ([]entity.MenuItem, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMenuRepository) DeleteByUserAndItem(ctx context.Context, userID uint, item string) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, item)
	}
	return 0, nil
}

// TestNewCachingMenuRepository_Defaults verifies that TTL and namespace
// defaults are applied.
func TestNewCachingMenuRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "menu",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "menu",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingMenuRepository(nil, tt.ttl, &mockMenuRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingMenuRepository_ListByUser_NilRedis verifies that a nil Redis
// client bypasses the cache and calls the inner repository directly.
func TestCachingMenuRepository_ListByUser_NilRedis(t *testing.T) {
	t.Parallel()

	expectedItems := []entity.MenuItem{
		{ID: 1, UserID: 1, Category: entity.CategoryHotDrinks, Item: "Espresso", Price: "2.50"},
	}

	inner := &mockMenuRepository{
		listByUserFn: func(ctx context.Context, userID uint) ([]entity.MenuItem, error) {
			return expectedItems, nil
		},
	}

	repo := NewCachingMenuRepository(nil, 5*time.Minute, inner, "menu")

	items, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != len(expectedItems) {
		t.Errorf("expected %d items, got %d", len(expectedItems), len(items))
	}
}

// TestCachingMenuRepository_ListByUser_CacheHit verifies that cached data is
// returned without calling the inner repository.
func TestCachingMenuRepository_ListByUser_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedItems := []entity.MenuItem{
		{ID: 1, UserID: 1, Category: entity.CategoryHotDrinks, Item: "Espresso", Price: "2.50"},
	}
	cachedJSON, _ := json.Marshal(cachedItems)

	mock.ExpectGet("menu:1").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockMenuRepository{
		listByUserFn: func(ctx context.Context, userID uint) ([]entity.MenuItem, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingMenuRepository(rdb, 5*time.Minute, inner, "menu")
	items, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item, got %d", len(items))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingMenuRepository_ListByUser_CacheMiss verifies that a cache miss
// falls through to the database and populates the cache.
func TestCachingMenuRepository_ListByUser_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedItems := []entity.MenuItem{
		{ID: 1, UserID: 1, Category: entity.CategoryHotDrinks, Item: "Espresso", Price: "2.50"},
	}
	expectedJSON, _ := json.Marshal(expectedItems)

	// Cache miss
	mock.ExpectGet("menu:1").RedisNil()
	// Set cache after fetching from inner
	mock.ExpectSet("menu:1", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockMenuRepository{
		listByUserFn: func(ctx context.Context, userID uint) ([]entity.MenuItem, error) {
			return expectedItems, nil
		},
	}

	repo := NewCachingMenuRepository(rdb, 5*time.Minute, inner, "menu")
	items, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item, got %d", len(items))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingMenuRepository_ListByUser_InnerError verifies that inner
// repository errors propagate.
func TestCachingMenuRepository_ListByUser_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")

	mock.ExpectGet("menu:1").RedisNil()

	inner := &mockMenuRepository{
		listByUserFn: func(ctx context.Context, userID uint) ([]entity.MenuItem, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingMenuRepository(rdb, 5*time.Minute, inner, "menu")
	_, err := repo.ListByUser(context.Background(), 1)

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingMenuRepository_ListByUser_CorruptedCache verifies that a
// corrupted cache entry is deleted and the database is used instead.
func TestCachingMenuRepository_ListByUser_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedItems := []entity.MenuItem{
		{ID: 1, UserID: 1, Category: entity.CategoryHotDrinks, Item: "Espresso", Price: "2.50"},
	}
	expectedJSON, _ := json.Marshal(expectedItems)

	// Return invalid JSON from cache
	mock.ExpectGet("menu:1").SetVal("invalid json")
	// Delete corrupted cache
	mock.ExpectDel("menu:1").SetVal(1)
	// Set new cache after fetching from inner
	mock.ExpectSet("menu:1", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockMenuRepository{
		listByUserFn: func(ctx context.Context, userID uint) ([]entity.MenuItem, error) {
			return expectedItems, nil
		},
	}

	repo := NewCachingMenuRepository(rdb, 5*time.Minute, inner, "menu")
	items, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item, got %d", len(items))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingMenuRepository_Create_Invalidation verifies that creating an
// item invalidates the owner's cached list.
func TestCachingMenuRepository_Create_Invalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("menu:7").SetVal(1)

	innerCalled := false
	inner := &mockMenuRepository{
		createFn: func(ctx context.Context, item *entity.MenuItem) error {
			innerCalled = true
			return nil
		},
	}

	repo := NewCachingMenuRepository(rdb, 5*time.Minute, inner, "menu")
	err := repo.Create(context.Background(), &entity.MenuItem{
		UserID:   7,
		Category: entity.CategoryHotDrinks,
		Item:     "Latte",
		Price:    "3.00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !innerCalled {
		t.Error("expected inner repository to be called")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingMenuRepository_Create_InnerError verifies that the cache is not
// touched when the insert fails.
func TestCachingMenuRepository_Create_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("insert error")
	inner := &mockMenuRepository{
		createFn: func(ctx context.Context, item *entity.MenuItem) error {
			return expectedErr
		},
	}

	repo := NewCachingMenuRepository(rdb, 5*time.Minute, inner, "menu")
	err := repo.Create(context.Background(), &entity.MenuItem{UserID: 7, Item: "Latte"})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingMenuRepository_Delete_Invalidation verifies that deleting rows
// invalidates the cache, and that a no-op delete leaves it alone.
func TestCachingMenuRepository_Delete_Invalidation(t *testing.T) {
	t.Parallel()

	t.Run("rows deleted invalidates cache", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		mock.ExpectDel("menu:7").SetVal(1)

		inner := &mockMenuRepository{
			deleteFn: func(ctx context.Context, userID uint, item string) (int64, error) {
				return 2, nil
			},
		}

		repo := NewCachingMenuRepository(rdb, 5*time.Minute, inner, "menu")
		deleted, err := repo.DeleteByUserAndItem(context.Background(), 7, "Latte")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 2 {
			t.Errorf("expected 2 deleted rows, got %d", deleted)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled mock expectations: %v", err)
		}
	})

	t.Run("no rows deleted keeps cache", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		inner := &mockMenuRepository{
			deleteFn: func(ctx context.Context, userID uint, item string) (int64, error) {
				return 0, nil
			},
		}

		repo := NewCachingMenuRepository(rdb, 5*time.Minute, inner, "menu")
		deleted, err := repo.DeleteByUserAndItem(context.Background(), 7, "Unknown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 0 {
			t.Errorf("expected 0 deleted rows, got %d", deleted)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled mock expectations: %v", err)
		}
	})
}
