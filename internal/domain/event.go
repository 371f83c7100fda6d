package domain

import (
	"encoding/json"
	"fmt"

	"gitee.com/flycash/expense-notification/internal/errs"
)

// NotificationEvent 业务侧触发的通知事件，只会被消费一次，不落库
type NotificationEvent struct {
	Type NotificationType `json:"type"`
	// UserIDs 接收者，JSON 中的 userId 既可以是单个字符串也可以是数组
	UserIDs  Recipients     `json:"userId"`
	Data     map[string]any `json:"data,omitempty"`
	Priority Priority       `json:"priority,omitempty"`
}

// Validate 只校验结构性错误，这类错误说明调用方集成有问题
func (e NotificationEvent) Validate() error {
	if !e.Type.IsValid() {
		return fmt.Errorf("%w: Type = %q", errs.ErrUnknownEventType, e.Type)
	}
	if len(e.UserIDs) == 0 {
		return fmt.Errorf("%w: 接收者不能为空", errs.ErrInvalidEvent)
	}
	for i, uid := range e.UserIDs {
		if uid == "" {
			return fmt.Errorf("%w: UserIDs[%d] 为空", errs.ErrInvalidEvent, i)
		}
	}
	if e.Priority != "" && !e.Priority.IsValid() {
		return fmt.Errorf("%w: Priority = %q", errs.ErrInvalidEvent, e.Priority)
	}
	return nil
}

// Recipients 兼容单个接收者和多个接收者两种写法
type Recipients []string

func (r *Recipients) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = Recipients{single}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err != nil {
		return fmt.Errorf("%w: userId 既不是字符串也不是字符串数组", errs.ErrInvalidEvent)
	}
	*r = multi
	return nil
}
