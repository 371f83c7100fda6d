package tracing

import (
	"context"
	"strconv"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 为供应商实现添加链路追踪的装饰器
type Provider struct {
	provider provider.Provider
	name     string
	tracer   trace.Tracer
}

// NewProvider 创建一个新的带有链路追踪的供应商
func NewProvider(name string, p provider.Provider) *Provider {
	return &Provider{
		provider: p,
		name:     name,
		tracer:   otel.Tracer("expense-notification/provider"),
	}
}

func (p *Provider) Send(ctx context.Context, msg domain.Message) error {
	ctx, span := p.tracer.Start(ctx, "Provider.Send",
		trace.WithAttributes(
			attribute.String("provider.name", p.name),
			attribute.String("notification.id", strconv.FormatUint(msg.NotificationID, 10)),
			attribute.String("notification.userId", msg.UserID),
			attribute.String("notification.channel", string(msg.Channel)),
			attribute.String("notification.priority", string(msg.Priority)),
		))
	defer span.End()

	err := p.provider.Send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
