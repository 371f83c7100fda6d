package sms

import (
	"context"
	"fmt"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	"gitee.com/flycash/expense-notification/internal/service/provider/sms/client"
)

// ContentParam 短信模版中承载正文的参数名
const ContentParam = "content"

var _ provider.Provider = (*smsProvider)(nil)

// smsProvider 基于短信供应商 SDK 的传输通道，正文作为模版参数下发
type smsProvider struct {
	name       string
	signName   string
	templateID string
	client     client.Client
}

// NewSMSProvider SMS供应商
func NewSMSProvider(name, signName, templateID string, c client.Client) provider.Provider {
	return &smsProvider{
		name:       name,
		signName:   signName,
		templateID: templateID,
		client:     c,
	}
}

// Send 发送短信
func (p *smsProvider) Send(_ context.Context, msg domain.Message) error {
	if msg.Recipient == "" {
		return fmt.Errorf("%w: %s 缺少手机号, UserID = %s", errs.ErrSendNotificationFailed, p.name, msg.UserID)
	}

	resp, err := p.client.Send(client.SendReq{
		PhoneNumbers:  []string{msg.Recipient},
		SignName:      p.signName,
		TemplateID:    p.templateID,
		TemplateParam: map[string]string{ContentParam: msg.Body},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}

	status, ok := resp.PhoneNumbers[msg.Recipient]
	if !ok {
		return fmt.Errorf("%w: %s 未返回手机号的发送状态", errs.ErrSendNotificationFailed, p.name)
	}
	if status.Code != client.OK {
		return fmt.Errorf("%w: Code = %s, Message = %s", errs.ErrSendNotificationFailed, status.Code, status.Message)
	}
	return nil
}
