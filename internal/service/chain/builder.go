package chain

import (
	"context"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/service/channel"
)

// Flavor 发送链路的类型
type Flavor string

const (
	FlavorMultiChannel Flavor = "MULTI_CHANNEL"
	FlavorFallback     Flavor = "FALLBACK"
)

// FlavorOf URGENT 和 HIGH 走多渠道冗余，其余走降级链路，遇到第一个成功的渠道就停止
func FlavorOf(p domain.Priority) Flavor {
	if p.IsCritical() {
		return FlavorMultiChannel
	}
	return FlavorFallback
}

// Chain 组装好的发送链路
type Chain struct {
	Flavor Flavor
	head   Handler
}

// Handle 空链路不产生任何发送结果
func (c Chain) Handle(ctx context.Context, n domain.Notification, preferred []domain.Channel) []domain.DeliveryResult {
	if c.head == nil {
		return nil
	}
	return c.head.Handle(ctx, n, preferred)
}

// Builder 根据优先级构建发送链路，渠道顺序完全由调用方决定
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Build(priority domain.Priority, strategies []channel.Strategy) Chain {
	flavor := FlavorOf(priority)
	c := Chain{Flavor: flavor}
	var tail Handler
	for _, s := range strategies {
		var h Handler
		switch flavor {
		case FlavorMultiChannel:
			h = NewMultiChannelHandler(s)
		default:
			h = NewFallbackHandler(s)
		}
		if tail == nil {
			c.head = h
			tail = h
			continue
		}
		tail = tail.SetNext(h)
	}
	return c
}
