package ioc

import (
	"gitee.com/flycash/expense-notification/internal/service/channel"
	"gitee.com/flycash/expense-notification/internal/service/inapp"
	"github.com/gotomicro/ego/core/econf"
)

// InitInAppStorage 默认存本地文件，配置 storage: redis 时存到 Redis
func InitInAppStorage() inapp.Storage {
	type Config struct {
		Storage string `yaml:"storage"`
		Dir     string `yaml:"dir"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("inapp", &cfg); err != nil {
		panic(err)
	}
	if cfg.Storage == "redis" {
		return inapp.NewRedisStorage(InitRedisClient())
	}
	if cfg.Dir == "" {
		cfg.Dir = "./data"
	}
	return inapp.NewFileStorage(cfg.Dir)
}

func InitChannelRegistry(inbox *inapp.Store, email *channel.EmailStrategy,
	sms *channel.SMSStrategy, push *channel.PushStrategy) channel.Registry {
	return channel.Registry{
		InApp: inbox,
		Email: email,
		SMS:   sms,
		Push:  push,
	}
}
