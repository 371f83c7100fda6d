package breaker

import (
	"context"
	"fmt"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	"github.com/go-kratos/aegis/circuitbreaker"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 为传输通道加上熔断，供应商持续失败时快速失败，不再占用发送链路
type Provider struct {
	provider provider.Provider
	breaker  circuitbreaker.CircuitBreaker
}

func NewProvider(p provider.Provider, opts ...sre.Option) *Provider {
	return &Provider{
		provider: p,
		breaker:  sre.NewBreaker(opts...),
	}
}

func (p *Provider) Send(ctx context.Context, msg domain.Message) error {
	if err := p.breaker.Allow(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrProviderUnavailable, err)
	}
	err := p.provider.Send(ctx, msg)
	if err != nil {
		p.breaker.MarkFailed()
		return err
	}
	p.breaker.MarkSuccess()
	return nil
}
