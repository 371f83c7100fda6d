package domain

import (
	"fmt"
	"time"

	"gitee.com/flycash/expense-notification/internal/errs"
	"github.com/ecodeclub/ekit/slice"
)

// NotificationType 通知类型，是一个封闭集合
type NotificationType string

const (
	TypeBudgetAlert        NotificationType = "BUDGET_ALERT"        // 预算告警
	TypeExpenseAdded       NotificationType = "EXPENSE_ADDED"       // 新增支出
	TypePaymentReminder    NotificationType = "PAYMENT_REMINDER"    // 付款提醒
	TypeFriendRequest      NotificationType = "FRIEND_REQUEST"      // 好友请求
	TypeGroupInvite        NotificationType = "GROUP_INVITE"        // 群组邀请
	TypeSettlementReminder NotificationType = "SETTLEMENT_REMINDER" // 结算提醒
	TypeRecurringExpense   NotificationType = "RECURRING_EXPENSE"   // 周期性支出
	TypeDebtSettled        NotificationType = "DEBT_SETTLED"        // 债务已结清
)

func (t NotificationType) IsValid() bool {
	switch t {
	case TypeBudgetAlert, TypeExpenseAdded, TypePaymentReminder, TypeFriendRequest,
		TypeGroupInvite, TypeSettlementReminder, TypeRecurringExpense, TypeDebtSettled:
		return true
	default:
		return false
	}
}

// Category 返回通知类型所属的偏好分类
func (t NotificationType) Category() (Category, error) {
	switch t {
	case TypeBudgetAlert:
		return CategoryBudgetAlerts, nil
	case TypeExpenseAdded, TypeRecurringExpense:
		return CategoryExpenseUpdates, nil
	case TypePaymentReminder, TypeSettlementReminder, TypeDebtSettled:
		return CategoryPaymentReminders, nil
	case TypeFriendRequest, TypeGroupInvite:
		return CategorySocialUpdates, nil
	default:
		return "", fmt.Errorf("%w: Type = %q", errs.ErrUnknownEventType, t)
	}
}

// Priority 通知优先级
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// AllPriorities 所有优先级，由低到高
var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) IsValid() bool {
	return slice.Contains(AllPriorities, p)
}

// IsCritical 高优先级的通知需要多渠道冗余发送
func (p Priority) IsCritical() bool {
	return p == PriorityUrgent || p == PriorityHigh
}

// SendStatus 通知状态
type SendStatus string

const (
	SendStatusPending SendStatus = "PENDING" // 待发送
	SendStatusSent    SendStatus = "SENT"    // 已发送
	SendStatusFailed  SendStatus = "FAILED"  // 发送失败
)

// CanTransitTo 状态只能从 PENDING 单向流转到终态
func (s SendStatus) CanTransitTo(target SendStatus) bool {
	if s == target {
		return true
	}
	return s == SendStatusPending && (target == SendStatusSent || target == SendStatusFailed)
}

// Notification 通知领域模型，创建之后除了状态和时间戳以外不再变化
type Notification struct {
	ID        uint64           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Priority  Priority         `json:"priority"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Data      map[string]any   `json:"data,omitempty"`
	Channels  []Channel        `json:"channels"`
	Status    SendStatus       `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	SentAt    time.Time        `json:"sentAt,omitzero"`
	ReadAt    time.Time        `json:"readAt,omitzero"`
	ExpiresAt time.Time        `json:"expiresAt,omitzero"`
}

func (n Notification) IsRead() bool {
	return !n.ReadAt.IsZero()
}

func (n Notification) IsExpired(now time.Time) bool {
	return !n.ExpiresAt.IsZero() && !now.Before(n.ExpiresAt)
}

// EligibleFor 通知是否可以通过该渠道发送
func (n Notification) EligibleFor(c Channel) bool {
	return slice.Contains(n.Channels, c)
}

// MarkStatus 推进发送状态，非法的回退会被拒绝
func (n *Notification) MarkStatus(status SendStatus, at time.Time) error {
	if !n.Status.CanTransitTo(status) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, n.Status, status)
	}
	n.Status = status
	if status == SendStatusSent && n.SentAt.IsZero() {
		n.SentAt = at
	}
	return nil
}

// MarkRead 标记已读，已读的通知保持第一次的已读时间
func (n *Notification) MarkRead(at time.Time) error {
	if n.Status != SendStatusSent {
		return fmt.Errorf("%w: 未发送的通知不能标记已读, Status = %s", errs.ErrInvalidStatusTransition, n.Status)
	}
	if n.ReadAt.IsZero() {
		n.ReadAt = at
	}
	return nil
}

// Clone 深拷贝，给订阅者或者调用方使用，避免共享内部状态
func (n Notification) Clone() Notification {
	res := n
	if n.Channels != nil {
		res.Channels = make([]Channel, len(n.Channels))
		copy(res.Channels, n.Channels)
	}
	res.Data = CopyData(n.Data)
	return res
}

// CopyData 深拷贝通知数据，JSON 解析出来的嵌套对象和数组也会逐层复制
func CopyData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	res := make(map[string]any, len(data))
	for k, v := range data {
		res[k] = copyValue(v)
	}
	return res
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CopyData(val)
	case []any:
		if val == nil {
			return val
		}
		res := make([]any, len(val))
		for i, item := range val {
			res[i] = copyValue(item)
		}
		return res
	default:
		return v
	}
}
