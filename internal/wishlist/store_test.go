package wishlist

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		cache.Close()
		mr.Close()
	})
	return NewStore(cache)
}

func TestAddListRemove(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, "user-1", 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Add(ctx, "user-1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Re-adding is a no-op.
	if err := store.Add(ctx, "user-1", 3); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	ids, err := store.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("list = %v, want [1 3]", ids)
	}

	if err := store.Remove(ctx, "user-1", 3); err != nil {
		t.Fatalf("remove: %v", err)
	}
	ids, err = store.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("list after remove = %v, want [1]", ids)
	}
}

func TestListsAreScopedPerUser(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, "user-1", 5); err != nil {
		t.Fatalf("add: %v", err)
	}

	ids, err := store.List(ctx, "user-2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("user-2 list = %v, want empty", ids)
	}
}
