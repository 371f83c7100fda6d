package domain

import "time"

// DeliveryResult 单个渠道的一次发送结果，只在内存里聚合
type DeliveryResult struct {
	Channel     Channel   `json:"channel"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	DeliveredAt time.Time `json:"deliveredAt,omitzero"`
}

func SucceededResult(c Channel, at time.Time) DeliveryResult {
	return DeliveryResult{Channel: c, Success: true, DeliveredAt: at}
}

func FailedResult(c Channel, err error) DeliveryResult {
	res := DeliveryResult{Channel: c}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

// Message 交给外部传输通道的消息，已经按渠道格式化过
type Message struct {
	NotificationID uint64         `json:"notificationId"`
	UserID         string         `json:"userId"`
	Channel        Channel        `json:"channel"`
	Recipient      string         `json:"recipient,omitempty"`
	Subject        string         `json:"subject"`
	Body           string         `json:"message"`
	Priority       Priority       `json:"priority"`
	Data           map[string]any `json:"data,omitempty"`
}
