package console

import (
	"context"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 只把消息打印到日志，没有配置真实传输通道时使用
type Provider struct {
	logger *elog.Component
}

func NewProvider() *Provider {
	return &Provider{
		logger: elog.DefaultLogger,
	}
}

func (p *Provider) Send(_ context.Context, msg domain.Message) error {
	p.logger.Info("发送通知",
		elog.String("channel", msg.Channel.String()),
		elog.String("userId", msg.UserID),
		elog.Any("notificationId", msg.NotificationID),
		elog.String("recipient", msg.Recipient),
		elog.String("subject", msg.Subject))
	return nil
}
