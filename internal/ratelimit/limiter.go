package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Rule caps how often one user may perform an action
type Rule struct {
	Action string
	Max    int
	Window time.Duration
}

// PerMinute is a rule allowing max calls per minute
func PerMinute(action string, max int) Rule {
	return Rule{Action: action, Max: max, Window: time.Minute}
}

// Limiter counts calls per (action, user) in fixed Redis windows.
// A nil client disables limiting.
type Limiter struct {
	rdb *redis.Client
}

func NewLimiter(rdb *redis.Client) *Limiter {
	return &Limiter{rdb: rdb}
}

// Enabled reports whether a Redis client is attached
func (l *Limiter) Enabled() bool {
	return l != nil && l.rdb != nil
}

func key(rule Rule, userID string) string {
	return fmt.Sprintf("rate:%s:%s", rule.Action, userID)
}

// Allow records one call and reports whether it is within the rule.
// A counter left without a TTL (an EXPIRE lost to a Redis error) is given
// one on the next call, so a window can never become permanent.
func (l *Limiter) Allow(ctx context.Context, rule Rule, userID string) (bool, error) {
	if !l.Enabled() || rule.Max <= 0 {
		return true, nil
	}

	k := key(rule, userID)
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		ttl = pipe.TTL(ctx, k)
		return nil
	})
	if err != nil {
		return true, err
	}

	// TTL reports -1 for a key with no expiry
	if ttl.Val() < 0 {
		if err := l.rdb.Expire(ctx, k, rule.Window).Err(); err != nil {
			return true, err
		}
	}

	return incr.Val() <= int64(rule.Max), nil
}
