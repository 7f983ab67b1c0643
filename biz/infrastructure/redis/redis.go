package redis

import (
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// NewRedis 构造Redis客户端, 由 provider 注入到各缓存
func NewRedis(config *config.Config) (*redis.Redis, error) {
	log.Info("NewRedis host: %s", config.Redis.Host)
	return redis.NewRedis(*config.Redis)
}
