package provider

import (
	"context"

	"gitee.com/flycash/expense-notification/internal/domain"
)

// Provider 外部传输通道，邮件网关、短信供应商等
//
//go:generate mockgen -source=./types.go -destination=./mocks/provider.mock.go -package=providermocks -typed Provider
type Provider interface {
	// Send 发送一条已经格式化好的消息，非 nil 的 error 即表示发送失败
	Send(ctx context.Context, msg domain.Message) error
}

// Func 函数式的 Provider，方便组装和测试
type Func func(ctx context.Context, msg domain.Message) error

func (f Func) Send(ctx context.Context, msg domain.Message) error {
	return f(ctx, msg)
}
