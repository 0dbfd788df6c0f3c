package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/strataworks/website-api/internal/models"
)

// AttemptRepo keeps rate-limit records in a sorted set per email, scored by
// the attempt's unix-millisecond timestamp. Records age out passively: each
// write prunes entries older than the record's retention span and refreshes
// the key expiry, so an idle applicant's set disappears on its own.
type AttemptRepo struct {
	rdb    *redis.Client
	prefix string
}

func NewAttemptRepo(rdb *redis.Client) *AttemptRepo {
	return &AttemptRepo{
		rdb:    rdb,
		prefix: "careers:attempts",
	}
}

func (r *AttemptRepo) key(email string) string {
	return r.prefix + ":" + email
}

// CountSince returns how many attempts for email carry a timestamp after since.
func (r *AttemptRepo) CountSince(ctx context.Context, email string, since time.Time) (int, error) {
	// Exclusive bound: only attempts strictly after since count.
	n, err := r.rdb.ZCount(ctx, r.key(email),
		"("+strconv.FormatInt(since.UnixMilli(), 10), "+inf").Result()
	if err != nil {
		return 0, fmt.Errorf("count attempts for %s: %w", email, err)
	}
	return int(n), nil
}

// Record appends one attempt and refreshes the passive expiry. The retention
// span comes from rec.ExpiresAt, so the caller owns the single TTL constant.
func (r *AttemptRepo) Record(ctx context.Context, rec models.AttemptRecord) error {
	key := r.key(rec.Email)
	member := fmt.Sprintf("%d:%s", rec.At.UnixNano(), rec.Origin)
	ttl := rec.ExpiresAt.Sub(rec.At)

	pipe := r.rdb.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(rec.At.UnixMilli()), Member: member})
	pipe.ZRemRangeByScore(ctx, key, "0",
		strconv.FormatInt(rec.At.Add(-ttl).UnixMilli(), 10))
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record attempt for %s: %w", rec.Email, err)
	}
	return nil
}
