package ioc

import (
	"time"

	"gitee.com/flycash/expense-notification/internal/service/channel"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	"gitee.com/flycash/expense-notification/internal/service/provider/breaker"
	"gitee.com/flycash/expense-notification/internal/service/provider/console"
	"gitee.com/flycash/expense-notification/internal/service/provider/metrics"
	"gitee.com/flycash/expense-notification/internal/service/provider/push"
	"gitee.com/flycash/expense-notification/internal/service/provider/push/gateway"
	"gitee.com/flycash/expense-notification/internal/service/provider/sequential"
	"gitee.com/flycash/expense-notification/internal/service/provider/tracing"
	"gitee.com/flycash/expense-notification/internal/service/provider/webhook"
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/gotomicro/ego/core/econf"
)

type webhookConfig struct {
	Enabled bool          `yaml:"enabled"`
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"`
}

// InitEmailStrategy 邮件走 HTTP 邮件网关，没有开启时输出到日志
func InitEmailStrategy() *channel.EmailStrategy {
	var providers []NamedProvider
	if p, ok := initWebhook("transport.email"); ok {
		providers = append(providers, NamedProvider{Name: "email-gateway", Provider: p})
	}
	return channel.NewEmailStrategy(compose(providers))
}

// InitSMSStrategy 短信先走网关，再按顺序尝试各个短信供应商
func InitSMSStrategy(vendors []NamedProvider) *channel.SMSStrategy {
	var providers []NamedProvider
	if p, ok := initWebhook("transport.sms"); ok {
		providers = append(providers, NamedProvider{Name: "sms-gateway", Provider: p})
	}
	providers = append(providers, vendors...)
	return channel.NewSMSStrategy(compose(providers))
}

// InitPushStrategy 没有开启推送网关时 Supported 返回 false，PUSH 渠道会被跳过
func InitPushStrategy() *channel.PushStrategy {
	var cfg webhookConfig
	if err := econf.UnmarshalKey("push", &cfg); err != nil {
		panic(err)
	}
	var platform push.Platform = gateway.NewGateway(nil, cfg.Timeout)
	if cfg.Enabled {
		platform = gateway.NewGateway(ehttp.Load("push.http").Build(), cfg.Timeout)
	}
	return channel.NewPushStrategy(platform)
}

func initWebhook(key string) (provider.Provider, bool) {
	var cfg webhookConfig
	if err := econf.UnmarshalKey(key, &cfg); err != nil {
		panic(err)
	}
	if !cfg.Enabled {
		return nil, false
	}
	return webhook.NewProvider(ehttp.Load(key+".http").Build(), cfg.Path, cfg.Timeout), true
}

// compose 每个传输通道依次加上熔断、指标和链路追踪，再按顺序组成故障转移
func compose(providers []NamedProvider) provider.Provider {
	if len(providers) == 0 {
		return console.NewProvider()
	}
	decorated := make([]provider.Provider, 0, len(providers))
	for _, np := range providers {
		var p provider.Provider = breaker.NewProvider(np.Provider)
		p = metrics.NewProvider(np.Name, p)
		p = tracing.NewProvider(np.Name, p)
		decorated = append(decorated, p)
	}
	if len(decorated) == 1 {
		return decorated[0]
	}
	return sequential.NewProvider(decorated...)
}
