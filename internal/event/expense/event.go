package expense

const (
	// EventName 业务侧投递通知事件的 topic，消息体是 JSON 格式的 domain.NotificationEvent
	EventName = "expense_notification_events"
)
