package sequential

import (
	"context"
	"fmt"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	"github.com/hashicorp/go-multierror"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 按顺序尝试多个供应商，第一个成功即返回
type Provider struct {
	providers []provider.Provider
}

func NewProvider(providers ...provider.Provider) *Provider {
	return &Provider{providers: providers}
}

func (p *Provider) Send(ctx context.Context, msg domain.Message) error {
	if len(p.providers) == 0 {
		return fmt.Errorf("%w: 未配置供应商", errs.ErrProviderUnavailable)
	}
	var err error
	for _, pv := range p.providers {
		err1 := pv.Send(ctx, msg)
		if err1 == nil {
			return nil
		}
		err = multierror.Append(err, err1)
		if ctx.Err() != nil {
			break
		}
	}
	return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
}
