package config

import (
	"learning-market/biz/infrastructure/util/log"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const defaultConfigPath = "etc/config.yaml"

var config *Config

type Auth struct {
	Secret       string
	AccessExpire int64 `json:",default=3600"`
}

type Stripe struct {
	SecretKey string
	Currency  string `json:",default=usd"`
}

type Checkout struct {
	// ReserveSeats 加购时扣减座位, 移出购物车时归还, 支付时增加报名人数
	ReserveSeats bool `json:",optional"`
}

type Catalog struct {
	TopLimit       int64 `json:",default=6"`
	TopCacheExpire int   `json:",default=60"`
}

type Config struct {
	service.ServiceConf
	ListenOn string `json:",default=:5000"`
	Auth     Auth
	Mongo    struct {
		URL string
		DB  string `json:",default=LearningDB"`
	}
	Cache    cache.CacheConf
	Redis    *redis.RedisConf
	Stripe   Stripe
	Checkout Checkout `json:",optional"`
	Catalog  Catalog  `json:",optional"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	log.Info("NewConfig load config from path: %s", path)
	if err := conf.Load(path, c, conf.UseEnv()); err != nil {
		return nil, err
	}

	if err := c.SetUp(); err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
