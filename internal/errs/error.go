package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter        = errors.New("参数错误")
	ErrUnknownEventType        = errors.New("未知的通知事件类型")
	ErrInvalidEvent            = errors.New("通知事件格式错误")
	ErrInvalidStatusTransition = errors.New("通知状态流转非法")
	ErrNotificationNotFound    = errors.New("通知记录不存在")

	ErrValidationFailed       = errors.New("通知内容校验失败")
	ErrSendNotificationFailed = errors.New("发送通知失败")
	ErrProviderUnavailable    = errors.New("传输通道不可用")

	ErrPushNotSupported     = errors.New("当前环境不支持推送")
	ErrPushPermissionDenied = errors.New("用户未授予推送权限")

	ErrPreferencesNotFound = errors.New("通知偏好不存在")
)
