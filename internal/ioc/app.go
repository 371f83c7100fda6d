package ioc

import (
	"context"

	"gitee.com/flycash/expense-notification/internal/event/expense"
	"github.com/gotomicro/ego/server/egin"
	"go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	WebServer *egin.Component
	// Consumer 没有开启 kafka 时为 nil，事件只能通过 HTTP 投递
	Consumer *expense.EventConsumer
	Tracer   *trace.TracerProvider
}

func (a *App) StartTasks(ctx context.Context) {
	if a.Consumer != nil {
		a.Consumer.Start(ctx)
	}
}
