package config

import (
	_ "embed"
	"listening-show/biz/infrastructure/util/log"
	"os"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

type Auth struct {
	SecretKey    string
	PublicKey    string
	AccessExpire int64 `json:",default=604800"`
}

type Config struct {
	service.ServiceConf
	ListenOn string `json:",default=0.0.0.0:8888"`
	TimeZone string `json:",default=Local"`
	Auth     Auth
	Mongo    struct {
		URL string
		DB  string
	}
	Cache       cache.CacheConf
	Redis       *redis.RedisConf
	SignInLimit SignInLimit
	Listening   Listening
	Metrics     Metrics
}

// SignInLimit 登录限流, Period 秒内最多 Quota 次
type SignInLimit struct {
	Period int `json:",default=300"`
	Quota  int `json:",default=10"`
}

type Listening struct {
	MaxAttempts int `json:",default=3"`
}

type Metrics struct {
	Addr string `json:",default=:9091"`
	Path string `json:",default=/metrics"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}

// Location 周期计算所用时区, 配置无效时退回本地时区
func (c *Config) Location() *time.Location {
	if c == nil || c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Error("load time zone %s fail: %v", c.TimeZone, err)
		return time.Local
	}
	return loc
}
