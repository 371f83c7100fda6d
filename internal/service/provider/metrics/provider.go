// Package metrics 为传输通道添加指标收集
package metrics

import (
	"context"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/pkg/prometheusx"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 为供应商实现添加指标收集的装饰器
type Provider struct {
	provider            provider.Provider
	sendDurationSummary *prometheus.SummaryVec
	sendStatusCounter   *prometheus.CounterVec
	name                string
}

// NewProvider 创建一个新的带有指标收集的供应商
// 同名指标只注册一次，多个供应商共享同一组指标，通过 provider 标签区分
func NewProvider(name string, p provider.Provider) *Provider {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "provider_send_duration_seconds",
			Help:       "供应商发送通知耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"provider", "channel", "status"},
	)

	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_status_total",
			Help: "供应商发送通知状态统计",
		},
		[]string{"provider", "channel", "status"},
	)

	return &Provider{
		provider:            p,
		sendDurationSummary: prometheusx.Register(sendDurationSummary),
		sendStatusCounter:   prometheusx.Register(sendStatusCounter),
		name:                name,
	}
}

// Send 发送通知并记录指标
func (p *Provider) Send(ctx context.Context, msg domain.Message) error {
	startTime := time.Now()

	err := p.provider.Send(ctx, msg)

	status := statusSucceeded
	if err != nil {
		status = statusFailed
	}
	p.sendStatusCounter.WithLabelValues(p.name, string(msg.Channel), status).Inc()
	p.sendDurationSummary.WithLabelValues(p.name, string(msg.Channel), status).
		Observe(time.Since(startTime).Seconds())
	return err
}
