// Package prefs 是独立于业务集合的本地键值偏好存储，只支持按键读写字符串。
package prefs

import (
	"context"
	"fmt"
	"study_tracker_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

type Store interface {
	// Get 键不存在时返回空字符串
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// New 按 prefs.type 创建存储；redis 类型需传入已连接的客户端
func New(cfg *config.PrefsConfig, rdb *redis.Client) (Store, error) {
	switch cfg.Type {
	case "", "bolt":
		return OpenBolt(cfg.BoltPath)
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("prefs type redis requires a redis client")
		}
		return NewRedisStore(rdb, "study_tracker:prefs:"), nil
	case "memory":
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unsupported prefs type %q", cfg.Type)
}
