package channel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

const (
	EmailSubjectMaxLen = 200
	// emailRecipientKey 通知数据里的收件地址，缺省时由网关按 userId 解析
	emailRecipientKey = "email"
	actionURLKey      = "actionUrl"
)

var _ Strategy = (*EmailStrategy)(nil)

// EmailStrategy 邮件渠道
type EmailStrategy struct {
	provider provider.Provider
	now      func() time.Time
	logger   *elog.Component
}

func NewEmailStrategy(p provider.Provider) *EmailStrategy {
	return &EmailStrategy{
		provider: p,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *EmailStrategy) Channel() domain.Channel {
	return domain.ChannelEmail
}

func (s *EmailStrategy) CanHandle(n domain.Notification) bool {
	return n.EligibleFor(domain.ChannelEmail)
}

func (s *EmailStrategy) SupportedPriorities() []domain.Priority {
	return domain.AllPriorities
}

func (s *EmailStrategy) Validate(n domain.Notification) error {
	return CheckLength(domain.ChannelEmail,
		LengthRule{Field: "subject", Value: n.Title, Required: true, Max: EmailSubjectMaxLen},
		LengthRule{Field: "body", Value: n.Message, Required: true},
	)
}

func (s *EmailStrategy) Send(ctx context.Context, n domain.Notification) domain.DeliveryResult {
	msg := toMessage(n, domain.ChannelEmail, s.format(n))
	msg.Recipient = recipient(n, emailRecipientKey)
	if err := s.provider.Send(ctx, msg); err != nil {
		s.logger.Warn("邮件发送失败",
			elog.FieldErr(err),
			elog.Any("notificationId", n.ID),
			elog.String("userId", n.UserID))
		return domain.FailedResult(domain.ChannelEmail, err)
	}
	return domain.SucceededResult(domain.ChannelEmail, s.now())
}

// format 邮件正文附带跳转链接
func (s *EmailStrategy) format(n domain.Notification) string {
	var sb strings.Builder
	sb.WriteString(n.Message)
	if u, ok := n.Data[actionURLKey].(string); ok && u != "" {
		sb.WriteString(fmt.Sprintf("\n\nView details: %s", u))
	}
	return sb.String()
}
