package chain

import (
	"context"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/service/channel"
)

var _ Handler = (*MultiChannelHandler)(nil)

// MultiChannelHandler 无论本环是否成功都会继续交给下一环，多个渠道同时触达
type MultiChannelHandler struct {
	link
}

func NewMultiChannelHandler(s channel.Strategy) *MultiChannelHandler {
	return &MultiChannelHandler{link: link{strategy: s}}
}

func (h *MultiChannelHandler) Handle(ctx context.Context, n domain.Notification, preferred []domain.Channel) []domain.DeliveryResult {
	var results []domain.DeliveryResult
	if h.eligible(n, preferred) {
		results = append(results, channel.Deliver(ctx, h.strategy, n))
	}
	return append(results, h.forward(ctx, n, preferred)...)
}
