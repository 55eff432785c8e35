package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/codec"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

var _ domain.LedgerRepository = (*CachedLedgerRepository)(nil)

const ledgerCacheTTL = 30 * time.Minute

// CachedLedgerRepository is a read-through, write-through Redis decorator.
// Cache failures are logged and never surface to callers.
type CachedLedgerRepository struct {
	next  domain.LedgerRepository
	cache *redis.Client
}

func NewCachedLedgerRepository(next domain.LedgerRepository, client *redis.Client) *CachedLedgerRepository {
	return &CachedLedgerRepository{
		next:  next,
		cache: client,
	}
}

func (r *CachedLedgerRepository) Load(ctx context.Context, identity string) (domain.Ledger, error) {
	key := cache.LedgerKey(identity)

	val, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		ledger, decodeErr := codec.Decode(val)
		if decodeErr == nil {
			return ledger, nil
		}

		log.Printf("[CACHE] Corrupted ledger for %s, cleaning up key: %v", identity, decodeErr)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	ledger, err := r.next.Load(ctx, identity)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, ledger)
	return ledger, nil
}

func (r *CachedLedgerRepository) Save(ctx context.Context, identity string, ledger domain.Ledger) error {
	key := cache.LedgerKey(identity)

	if err := r.next.Save(ctx, identity, ledger); err != nil {
		if delErr := r.cache.Del(ctx, key).Err(); delErr != nil {
			log.Printf("[CACHE] Failed to invalidate %s: %v", identity, delErr)
		}
		return err
	}

	r.store(ctx, key, ledger)
	return nil
}

func (r *CachedLedgerRepository) store(ctx context.Context, key string, ledger domain.Ledger) {
	data, err := codec.Encode(ledger)
	if err != nil {
		log.Printf("[CACHE] Encode error for %s: %v", key, err)
		return
	}
	if err := r.cache.Set(ctx, key, data, ledgerCacheTTL).Err(); err != nil {
		log.Printf("[CACHE] Redis set error: %v", err)
	}
}
