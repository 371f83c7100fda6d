package webhook

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	"github.com/gotomicro/ego/client/ehttp"
)

const defaultTimeout = 5 * time.Second

var _ provider.Provider = (*Provider)(nil)

// Provider 通过 HTTP 接口把消息投递给外部的邮件/短信网关
// 非 2xx 的响应一律视为发送失败
type Provider struct {
	client  *ehttp.Component
	path    string
	timeout time.Duration
}

func NewProvider(client *ehttp.Component, path string, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		client:  client,
		path:    path,
		timeout: timeout,
	}
}

type request struct {
	NotificationID uint64          `json:"notificationId"`
	UserID         string          `json:"userId"`
	Channel        domain.Channel  `json:"channel"`
	Recipient      string          `json:"recipient,omitempty"`
	Subject        string          `json:"subject"`
	Message        string          `json:"message"`
	Priority       domain.Priority `json:"priority"`
}

func (p *Provider) Send(ctx context.Context, msg domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request{
			NotificationID: msg.NotificationID,
			UserID:         msg.UserID,
			Channel:        msg.Channel,
			Recipient:      msg.Recipient,
			Subject:        msg.Subject,
			Message:        msg.Body,
			Priority:       msg.Priority,
		}).
		Post(p.path)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: StatusCode = %d, Body = %s", errs.ErrSendNotificationFailed, resp.StatusCode(), resp.String())
	}
	return nil
}
