package chain

import (
	"context"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/service/channel"
)

var _ Handler = (*FallbackHandler)(nil)

// FallbackHandler 本环发送成功就停止传递，失败或者不满足条件时交给下一环
type FallbackHandler struct {
	link
}

func NewFallbackHandler(s channel.Strategy) *FallbackHandler {
	return &FallbackHandler{link: link{strategy: s}}
}

func (h *FallbackHandler) Handle(ctx context.Context, n domain.Notification, preferred []domain.Channel) []domain.DeliveryResult {
	if !h.eligible(n, preferred) {
		return h.forward(ctx, n, preferred)
	}
	res := channel.Deliver(ctx, h.strategy, n)
	if res.Success {
		return []domain.DeliveryResult{res}
	}
	return append([]domain.DeliveryResult{res}, h.forward(ctx, n, preferred)...)
}
