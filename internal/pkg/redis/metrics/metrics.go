package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"gitee.com/flycash/expense-notification/internal/pkg/prometheusx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var _ redis.Hook = (*Hook)(nil)

// Hook 为 Redis 命令添加耗时和状态统计，redis.Nil 不算失败
type Hook struct {
	commandCounter  *prometheus.CounterVec
	commandDuration *prometheus.SummaryVec
}

func NewMetricsHook() *Hook {
	return &Hook{
		commandCounter: prometheusx.Register(prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redis_commands_total",
				Help: "Redis 命令执行次数",
			},
			[]string{"command", "status"},
		)),
		commandDuration: prometheusx.Register(prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "redis_command_duration_seconds",
				Help:       "Redis 命令执行耗时（秒）",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{"command"},
		)),
	}
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.observe(cmd.Name(), start, err)
		return err
	}
}

// ProcessPipelineHook 管道按整体统计，命令名固定为 pipeline
func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		if err == nil {
			for _, cmd := range cmds {
				if cmd.Err() != nil && !errors.Is(cmd.Err(), redis.Nil) {
					err = cmd.Err()
					break
				}
			}
		}
		h.observe("pipeline", start, err)
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *Hook) observe(command string, start time.Time, err error) {
	status := statusSuccess
	if err != nil && !errors.Is(err, redis.Nil) {
		status = statusError
	}
	h.commandDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
	h.commandCounter.WithLabelValues(command, status).Inc()
}

// WithMetrics 为Redis客户端添加指标收集功能
func WithMetrics(client *redis.Client) *redis.Client {
	client.AddHook(NewMetricsHook())
	return client
}
