package channel

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/service/provider/push"
	"github.com/gotomicro/ego/core/elog"
)

const (
	PushTitleMaxLen   = 65
	PushMessageMaxLen = 240
)

var _ Strategy = (*PushStrategy)(nil)

// PushStrategy 原生推送渠道，不接收低优先级的通知
type PushStrategy struct {
	platform push.Platform
	now      func() time.Time
	logger   *elog.Component
}

func NewPushStrategy(platform push.Platform) *PushStrategy {
	return &PushStrategy{
		platform: platform,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *PushStrategy) Channel() domain.Channel {
	return domain.ChannelPush
}

// CanHandle 额外要求宿主环境具备原生推送能力
func (s *PushStrategy) CanHandle(n domain.Notification) bool {
	return n.EligibleFor(domain.ChannelPush) && s.platform.Supported()
}

func (s *PushStrategy) SupportedPriorities() []domain.Priority {
	return []domain.Priority{domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent}
}

func (s *PushStrategy) Validate(n domain.Notification) error {
	return CheckLength(domain.ChannelPush,
		LengthRule{Field: "title", Value: n.Title, Required: true, Max: PushTitleMaxLen},
		LengthRule{Field: "message", Value: n.Message, Max: PushMessageMaxLen},
	)
}

func (s *PushStrategy) Send(ctx context.Context, n domain.Notification) domain.DeliveryResult {
	if err := s.ensurePermission(ctx, n.UserID); err != nil {
		s.logger.Warn("推送授权失败",
			elog.FieldErr(err),
			elog.Any("notificationId", n.ID),
			elog.String("userId", n.UserID))
		return domain.FailedResult(domain.ChannelPush, err)
	}
	if err := s.platform.Show(ctx, toMessage(n, domain.ChannelPush, n.Message)); err != nil {
		s.logger.Warn("推送发送失败",
			elog.FieldErr(err),
			elog.Any("notificationId", n.ID),
			elog.String("userId", n.UserID))
		return domain.FailedResult(domain.ChannelPush, err)
	}
	return domain.SucceededResult(domain.ChannelPush, s.now())
}

// ensurePermission 未授权时先申请一次
func (s *PushStrategy) ensurePermission(ctx context.Context, userID string) error {
	perm, err := s.platform.Permission(ctx, userID)
	if err != nil {
		return err
	}
	if perm == push.PermissionDefault {
		perm, err = s.platform.RequestPermission(ctx, userID)
		if err != nil {
			return err
		}
	}
	if perm != push.PermissionGranted {
		return fmt.Errorf("%w: UserID = %s", errs.ErrPushPermissionDenied, userID)
	}
	return nil
}
