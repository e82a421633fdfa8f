package wishlist

import (
	"context"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "wishlist:v1:"

// Store keeps per-user hotel wishlists in Redis sets. Entries carry no TTL;
// a wishlist lives until the user removes its entries.
type Store struct {
	cache *redis.Client
}

// NewStore builds a Redis-backed wishlist store.
func NewStore(cache *redis.Client) *Store {
	return &Store{cache: cache}
}

// Add records a hotel on the user's wishlist. Adding an already saved hotel
// is a no-op.
func (s *Store) Add(ctx context.Context, userID string, hotelID int) error {
	return s.cache.SAdd(ctx, keyPrefix+userID, hotelID).Err()
}

// Remove drops a hotel from the user's wishlist.
func (s *Store) Remove(ctx context.Context, userID string, hotelID int) error {
	return s.cache.SRem(ctx, keyPrefix+userID, hotelID).Err()
}

// List returns the user's saved hotel ids in ascending order.
func (s *Store) List(ctx context.Context, userID string) ([]int, error) {
	members, err := s.cache.SMembers(ctx, keyPrefix+userID).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
