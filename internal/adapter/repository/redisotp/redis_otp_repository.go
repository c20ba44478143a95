// Package redisotp keeps phone OTPs in Redis for deployments that run more than
// one API instance.
package redisotp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/pkg/config"
	apperrors "nanocart/pkg/errors"
)

const keyPrefix = "nanocart:otp:"

// retention keeps expired codes around long enough to report them as expired
// rather than missing.
const retention = time.Hour

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Del(context.Context, ...string) *redis.IntCmd
}

type redisOTPRepository struct {
	store cmdable
	now   func() time.Time
}

func NewRedisOTPRepository(client *redis.Client) repository.OTPRepository {
	return &redisOTPRepository{store: client, now: time.Now}
}

// NewClient connects using REDIS_URL when set, else REDIS_ADDR, and pings once.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else if cfg.Address != "" {
		opts = &redis.Options{Addr: cfg.Address, Password: cfg.Password, DB: cfg.DB}
	} else {
		return nil, errors.New("redis url or address is required")
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func key(phone string) string {
	return keyPrefix + phone
}

func (r *redisOTPRepository) ttl(otp *entity.PhoneOTP) time.Duration {
	ttl := otp.ExpiresAt.Sub(r.now()) + retention
	if ttl < retention {
		ttl = retention
	}
	return ttl
}

func (r *redisOTPRepository) Upsert(ctx context.Context, otp *entity.PhoneOTP) error {
	payload, err := json.Marshal(otp)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key(otp.PhoneNumber), payload, r.ttl(otp)).Err()
}

func (r *redisOTPRepository) Get(ctx context.Context, phone string) (*entity.PhoneOTP, error) {
	raw, err := r.store.Get(ctx, key(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NotFound("OTP", nil)
	}
	if err != nil {
		return nil, err
	}

	var otp entity.PhoneOTP
	if err := json.Unmarshal([]byte(raw), &otp); err != nil {
		return nil, fmt.Errorf("decoding otp for %s: %w", phone, err)
	}
	return &otp, nil
}

func (r *redisOTPRepository) MarkVerified(ctx context.Context, phone string) error {
	otp, err := r.Get(ctx, phone)
	if err != nil {
		return err
	}
	otp.IsVerified = true
	otp.UpdatedAt = r.now()

	payload, err := json.Marshal(otp)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key(phone), payload, redis.KeepTTL).Err()
}

func (r *redisOTPRepository) Delete(ctx context.Context, phone string) error {
	return r.store.Del(ctx, key(phone)).Err()
}
