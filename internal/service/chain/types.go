package chain

import (
	"context"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/service/channel"
	"github.com/ecodeclub/ekit/slice"
)

// Handler 责任链中的一环
type Handler interface {
	// SetNext 设置下一环，返回 next 方便链式调用
	SetNext(next Handler) Handler
	// Handle 处理通知，返回本环以及后续各环产生的发送结果
	Handle(ctx context.Context, n domain.Notification, preferred []domain.Channel) []domain.DeliveryResult
}

// link 每一环都持有一个渠道策略和下一环
type link struct {
	strategy channel.Strategy
	next     Handler
}

func (l *link) SetNext(next Handler) Handler {
	l.next = next
	return next
}

// eligible 渠道在偏好集合中，并且策略本身愿意处理该通知
func (l *link) eligible(n domain.Notification, preferred []domain.Channel) bool {
	return slice.Contains(preferred, l.strategy.Channel()) && channel.Eligible(l.strategy, n)
}

func (l *link) forward(ctx context.Context, n domain.Notification, preferred []domain.Channel) []domain.DeliveryResult {
	if l.next == nil {
		return nil
	}
	return l.next.Handle(ctx, n, preferred)
}
