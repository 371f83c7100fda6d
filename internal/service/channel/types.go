package channel

import (
	"context"
	"fmt"
	"unicode/utf8"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"github.com/ecodeclub/ekit/slice"
)

// Strategy 单个渠道的发送策略，不感知其他渠道
//
//go:generate mockgen -source=./types.go -destination=./mocks/strategy.mock.go -package=channelmocks -typed Strategy
type Strategy interface {
	// Channel 当前策略负责的渠道
	Channel() domain.Channel
	// CanHandle 通知允许走该渠道，并且渠道自身的前置条件满足
	CanHandle(n domain.Notification) bool
	// SupportedPriorities 渠道接受的优先级
	SupportedPriorities() []domain.Priority
	// Validate 校验内容是否符合渠道的限制，不符合时返回 errs.ErrValidationFailed
	Validate(n domain.Notification) error
	// Send 发送通知，任何错误都转换成失败的 DeliveryResult，不会向上抛出
	Send(ctx context.Context, n domain.Notification) domain.DeliveryResult
}

// Eligible 发送链路只会对满足条件的渠道发起发送
func Eligible(s Strategy, n domain.Notification) bool {
	return s.CanHandle(n) && slice.Contains(s.SupportedPriorities(), n.Priority)
}

// Deliver 先校验再发送，校验失败直接返回失败结果，不会真正发起传输
func Deliver(ctx context.Context, s Strategy, n domain.Notification) domain.DeliveryResult {
	if err := s.Validate(n); err != nil {
		return domain.FailedResult(s.Channel(), err)
	}
	return s.Send(ctx, n)
}

// Registry 四个渠道各自的策略实例
type Registry struct {
	InApp Strategy
	Email Strategy
	SMS   Strategy
	Push  Strategy
}

// Strategy 渠道集合是封闭的，这里穷举所有渠道
func (r Registry) Strategy(c domain.Channel) (Strategy, error) {
	var s Strategy
	switch c {
	case domain.ChannelInApp:
		s = r.InApp
	case domain.ChannelEmail:
		s = r.Email
	case domain.ChannelSMS:
		s = r.SMS
	case domain.ChannelPush:
		s = r.Push
	default:
		return nil, fmt.Errorf("%w: Channel = %q", errs.ErrInvalidParameter, c)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: 渠道 %s 未配置发送策略", errs.ErrInvalidParameter, c)
	}
	return s, nil
}

// Strategies 按给定顺序返回渠道对应的策略，未配置的渠道会被跳过并返回错误
func (r Registry) Strategies(channels []domain.Channel) ([]Strategy, error) {
	res := make([]Strategy, 0, len(channels))
	var err error
	for _, c := range channels {
		s, err1 := r.Strategy(c)
		if err1 != nil {
			err = err1
			continue
		}
		res = append(res, s)
	}
	return res, err
}

// LengthRule 单个字段的长度限制，Max 为 0 表示不限制长度
type LengthRule struct {
	Field    string
	Value    string
	Required bool
	Max      int
}

// CheckLength 按字符数而不是字节数校验长度，所有渠道共用
func CheckLength(c domain.Channel, rules ...LengthRule) error {
	for _, r := range rules {
		if r.Required && r.Value == "" {
			return fmt.Errorf("%w: %s 的 %s 不能为空", errs.ErrValidationFailed, c, r.Field)
		}
		if r.Max > 0 {
			if l := utf8.RuneCountInString(r.Value); l > r.Max {
				return fmt.Errorf("%w: %s 的 %s 长度 %d 超过上限 %d", errs.ErrValidationFailed, c, r.Field, l, r.Max)
			}
		}
	}
	return nil
}

// recipient 从通知数据中取出渠道需要的联系方式，例如 email、phone
func recipient(n domain.Notification, key string) string {
	if v, ok := n.Data[key].(string); ok {
		return v
	}
	return ""
}

func toMessage(n domain.Notification, c domain.Channel, body string) domain.Message {
	return domain.Message{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Channel:        c,
		Subject:        n.Title,
		Body:           body,
		Priority:       n.Priority,
		Data:           n.Data,
	}
}
