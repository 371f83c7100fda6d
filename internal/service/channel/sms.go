package channel

import (
	"context"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

const (
	SMSMessageMaxLen = 160
	SMSTitleMaxLen   = 50
	smsRecipientKey  = "phone"
)

var _ Strategy = (*SMSStrategy)(nil)

// SMSStrategy 短信渠道，成本最高，只接收高优先级的通知
type SMSStrategy struct {
	provider provider.Provider
	now      func() time.Time
	logger   *elog.Component
}

func NewSMSStrategy(p provider.Provider) *SMSStrategy {
	return &SMSStrategy{
		provider: p,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *SMSStrategy) Channel() domain.Channel {
	return domain.ChannelSMS
}

func (s *SMSStrategy) CanHandle(n domain.Notification) bool {
	return n.EligibleFor(domain.ChannelSMS)
}

func (s *SMSStrategy) SupportedPriorities() []domain.Priority {
	return []domain.Priority{domain.PriorityHigh, domain.PriorityUrgent}
}

func (s *SMSStrategy) Validate(n domain.Notification) error {
	return CheckLength(domain.ChannelSMS,
		LengthRule{Field: "title", Value: n.Title, Max: SMSTitleMaxLen},
		LengthRule{Field: "message", Value: n.Message, Required: true, Max: SMSMessageMaxLen},
	)
}

func (s *SMSStrategy) Send(ctx context.Context, n domain.Notification) domain.DeliveryResult {
	msg := toMessage(n, domain.ChannelSMS, n.Message)
	msg.Recipient = recipient(n, smsRecipientKey)
	if err := s.provider.Send(ctx, msg); err != nil {
		s.logger.Warn("短信发送失败",
			elog.FieldErr(err),
			elog.Any("notificationId", n.ID),
			elog.String("userId", n.UserID))
		return domain.FailedResult(domain.ChannelSMS, err)
	}
	return domain.SucceededResult(domain.ChannelSMS, s.now())
}
