//go:build wireinject

package ioc

import (
	"gitee.com/flycash/expense-notification/internal/api/web"
	"gitee.com/flycash/expense-notification/internal/event/expense"
	"gitee.com/flycash/expense-notification/internal/ioc"
	"gitee.com/flycash/expense-notification/internal/repository"
	"gitee.com/flycash/expense-notification/internal/service/chain"
	"gitee.com/flycash/expense-notification/internal/service/inapp"
	"gitee.com/flycash/expense-notification/internal/service/notification"
	"gitee.com/flycash/expense-notification/internal/service/preference"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitIDGenerator,
		ioc.InitGoCache,
		ioc.InitZipkinTracer,
		ioc.InitPreferenceDAO,
		ioc.InitInAppStorage,
	)
	preferenceSvcSet = wire.NewSet(
		preference.NewResolver,
		repository.NewPreferenceRepository,
	)
	channelSet = wire.NewSet(
		inapp.NewStore,
		ioc.InitSMSVendors,
		ioc.InitEmailStrategy,
		ioc.InitSMSStrategy,
		ioc.InitPushStrategy,
		ioc.InitChannelRegistry,
	)
	notificationSvcSet = wire.NewSet(
		chain.NewBuilder,
		notification.NewManager,
		wire.Bind(new(notification.PreferenceResolver), new(*preference.Resolver)),
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		preferenceSvcSet,
		channelSet,
		notificationSvcSet,

		// 事件消费
		wire.Bind(new(expense.EventHandler), new(*notification.Manager)),
		ioc.InitEventConsumer,

		// HTTP 服务
		wire.Bind(new(web.EventHandler), new(*notification.Manager)),
		wire.Bind(new(web.Inbox), new(*inapp.Store)),
		wire.Bind(new(web.PreferenceService), new(*preference.Resolver)),
		web.NewHandler,
		ioc.InitWebServer,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
