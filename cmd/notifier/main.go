package main

import (
	"context"

	"gitee.com/flycash/expense-notification/cmd/notifier/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

func main() {
	egoApp := ego.New()
	app := ioc.InitApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.StartTasks(ctx)

	if err := egoApp.Serve(
		egovernor.Load("server.governor").Build(),
		app.WebServer,
	).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
	if err := app.Tracer.Shutdown(context.Background()); err != nil {
		elog.Error("Shutdown zipkinTracer", elog.FieldErr(err))
	}
}
