package cache

import (
	"context"
	"encoding/json"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/repository/class"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	topClassesCacheKey = "top_classes"
)

type ITopClassesCache interface {
	Get(ctx context.Context) ([]*class.Class, bool, error)
	Set(ctx context.Context, classes []*class.Class) error
	Delete(ctx context.Context) error
}

type TopClassesCache struct {
	rds    *gozero_redis.Redis
	expire int
}

func NewTopClassesCache(config *config.Config, rds *gozero_redis.Redis) *TopClassesCache {
	return &TopClassesCache{
		rds:    rds,
		expire: config.Catalog.TopCacheExpire,
	}
}

// Get 第二个返回值表示是否命中
func (m *TopClassesCache) Get(ctx context.Context) ([]*class.Class, bool, error) {
	cachedData, err := m.rds.GetCtx(ctx, topClassesCacheKey)
	if err != nil {
		return nil, false, err
	}
	if cachedData == "" {
		return nil, false, nil
	}

	var classes []*class.Class
	if err := json.Unmarshal([]byte(cachedData), &classes); err != nil {
		return nil, false, err
	}
	return classes, true, nil
}

func (m *TopClassesCache) Set(ctx context.Context, classes []*class.Class) error {
	data, err := json.Marshal(classes)
	if err != nil {
		return err
	}
	return m.rds.SetexCtx(ctx, topClassesCacheKey, string(data), m.expire)
}

func (m *TopClassesCache) Delete(ctx context.Context) error {
	_, err := m.rds.DelCtx(ctx, topClassesCacheKey)
	return err
}
