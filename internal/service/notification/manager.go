package notification

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/pkg/prometheusx"
	"gitee.com/flycash/expense-notification/internal/service/chain"
	"gitee.com/flycash/expense-notification/internal/service/channel"
	"gitee.com/flycash/expense-notification/internal/service/preference"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/sonyflake"
	"golang.org/x/sync/errgroup"
)

const (
	outcomeDelivered  = "delivered"
	outcomeFailed     = "failed"
	outcomeSuppressed = "suppressed"

	unknownType = "unknown"
)

// PreferenceResolver 管理器只依赖偏好解析的只读部分
type PreferenceResolver interface {
	Get(ctx context.Context, userID string) (domain.Preferences, error)
	ChannelsFor(prefs domain.Preferences, category domain.Category) []domain.Channel
	Decide(prefs domain.Preferences, priority domain.Priority, now time.Time) preference.Decision
	Now() time.Time
}

// RecipientResult 单个接收者的处理结果
type RecipientResult struct {
	UserID       string                  `json:"userId"`
	Notification domain.Notification     `json:"notification"`
	Results      []domain.DeliveryResult `json:"results"`
	// Delivered 至少一个渠道发送成功
	Delivered bool `json:"delivered"`
	// Suppressed 被偏好策略拦截，这不是错误
	Suppressed bool              `json:"suppressed"`
	Reason     preference.Reason `json:"reason,omitempty"`
}

// Manager 通知编排，把一个业务事件展开成每个接收者的通知并按优先级选择发送链路
type Manager struct {
	resolver    PreferenceResolver
	registry    channel.Registry
	builder     *chain.Builder
	idGenerator *sonyflake.Sonyflake

	eventCounter   *prometheus.CounterVec
	outcomeCounter *prometheus.CounterVec
	logger         *elog.Component
}

func NewManager(resolver PreferenceResolver, registry channel.Registry,
	builder *chain.Builder, idGenerator *sonyflake.Sonyflake) *Manager {
	return &Manager{
		resolver:    resolver,
		registry:    registry,
		builder:     builder,
		idGenerator: idGenerator,
		eventCounter: prometheusx.Register(prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_events_total",
			Help: "处理的通知事件数量",
		}, []string{"type", "status"})),
		outcomeCounter: prometheusx.Register(prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_recipient_outcomes_total",
			Help: "每个接收者的处理结果",
		}, []string{"type", "priority", "outcome", "reason"})),
		logger: elog.DefaultLogger,
	}
}

// HandleEvent 处理一个通知事件
// 只有结构性错误会返回 error，单个渠道或者单个接收者的失败只记录在结果里
// 结果的顺序和事件中接收者的顺序一致
func (m *Manager) HandleEvent(ctx context.Context, evt domain.NotificationEvent) ([]RecipientResult, error) {
	if err := evt.Validate(); err != nil {
		m.eventCounter.WithLabelValues(typeLabel(evt.Type), "rejected").Inc()
		return nil, err
	}
	drafts, err := m.drafts(evt)
	if err != nil {
		m.eventCounter.WithLabelValues(typeLabel(evt.Type), "rejected").Inc()
		return nil, err
	}
	category, _ := evt.Type.Category()

	results := make([]RecipientResult, len(drafts))
	var eg errgroup.Group
	for i := range drafts {
		eg.Go(func() error {
			results[i] = m.handleRecipient(ctx, category, drafts[i])
			return nil
		})
	}
	_ = eg.Wait()
	m.eventCounter.WithLabelValues(string(evt.Type), "handled").Inc()
	return results, nil
}

// drafts 每个接收者一条独立的通知
func (m *Manager) drafts(evt domain.NotificationEvent) ([]domain.Notification, error) {
	priority := evt.Priority
	if priority == "" {
		priority = DefaultPriority(evt.Type, evt.Data)
	}
	content := Render(evt.Type, evt.Data)
	now := m.resolver.Now()
	res := make([]domain.Notification, 0, len(evt.UserIDs))
	for _, uid := range evt.UserIDs {
		id, err := m.idGenerator.NextID()
		if err != nil {
			return nil, fmt.Errorf("%w: 生成通知 ID 失败，原因: %w", errs.ErrSendNotificationFailed, err)
		}
		n := domain.Notification{
			ID:        id,
			UserID:    uid,
			Type:      evt.Type,
			Priority:  priority,
			Title:     content.Title,
			Message:   content.Message,
			Status:    domain.SendStatusPending,
			Data:      domain.CopyData(evt.Data),
			CreatedAt: now,
		}
		res = append(res, n)
	}
	return res, nil
}

func (m *Manager) handleRecipient(ctx context.Context, category domain.Category, n domain.Notification) (res RecipientResult) {
	res = RecipientResult{UserID: n.UserID, Notification: n}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("处理接收者通知时发生 panic",
				elog.String("userId", n.UserID),
				elog.Any("notificationId", n.ID),
				elog.Any("panic", r))
			_ = res.Notification.MarkStatus(domain.SendStatusFailed, m.resolver.Now())
			res.Delivered = false
		}
		m.record(res)
	}()

	prefs, err := m.resolver.Get(ctx, n.UserID)
	if err != nil {
		m.logger.Warn("获取用户偏好失败，使用默认偏好",
			elog.String("userId", n.UserID), elog.FieldErr(err))
		prefs = domain.DefaultPreferences(n.UserID)
	}

	channels := m.resolver.ChannelsFor(prefs, category)
	if len(channels) == 0 {
		return m.suppress(res, preference.ReasonNoChannels)
	}
	res.Notification.Channels = channels

	if d := m.resolver.Decide(prefs, n.Priority, m.resolver.Now()); !d.Deliver {
		return m.suppress(res, d.Reason)
	}

	strategies, err := m.registry.Strategies(channels)
	if err != nil {
		m.logger.Warn("部分渠道没有可用的发送策略",
			elog.String("userId", n.UserID), elog.FieldErr(err))
	}
	c := m.builder.Build(n.Priority, strategies)
	res.Results = c.Handle(ctx, res.Notification, channels)

	var failures *multierror.Error
	for _, r := range res.Results {
		if r.Success {
			res.Delivered = true
			continue
		}
		failures = multierror.Append(failures, fmt.Errorf("%s: %s", r.Channel, r.Error))
	}

	status := domain.SendStatusFailed
	if res.Delivered {
		status = domain.SendStatusSent
	}
	_ = res.Notification.MarkStatus(status, m.resolver.Now())

	if err = failures.ErrorOrNil(); err != nil {
		m.logger.Warn("部分渠道发送失败",
			elog.String("userId", n.UserID),
			elog.Any("notificationId", n.ID),
			elog.String("flavor", string(c.Flavor)),
			elog.Any("delivered", res.Delivered),
			elog.FieldErr(err))
	}
	return res
}

// suppress 策略拦截只记录日志，通知保持未发送状态
func (m *Manager) suppress(res RecipientResult, reason preference.Reason) RecipientResult {
	res.Suppressed = true
	res.Reason = reason
	m.logger.Info("通知被用户偏好拦截",
		elog.String("userId", res.UserID),
		elog.Any("notificationId", res.Notification.ID),
		elog.String("reason", string(reason)))
	return res
}

// typeLabel 事件类型来自外部输入，未知类型统一记为 unknown
func typeLabel(t domain.NotificationType) string {
	if !t.IsValid() {
		return unknownType
	}
	return string(t)
}

func (m *Manager) record(res RecipientResult) {
	outcome := outcomeFailed
	switch {
	case res.Suppressed:
		outcome = outcomeSuppressed
	case res.Delivered:
		outcome = outcomeDelivered
	}
	n := res.Notification
	m.outcomeCounter.WithLabelValues(string(n.Type), string(n.Priority), outcome, string(res.Reason)).Inc()
}
