package domain

import "github.com/ecodeclub/ekit/slice"

// Channel 通知渠道
type Channel string

const (
	ChannelInApp Channel = "IN_APP" // 站内信
	ChannelEmail Channel = "EMAIL"  // 邮件
	ChannelSMS   Channel = "SMS"    // 短信
	ChannelPush  Channel = "PUSH"   // 推送
)

// CanonicalChannels 构建发送链路时使用的固定顺序，先便宜后兜底
var CanonicalChannels = []Channel{ChannelPush, ChannelEmail, ChannelSMS, ChannelInApp}

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelInApp, ChannelEmail, ChannelSMS, ChannelPush:
		return true
	default:
		return false
	}
}

// OrderChannels 按照 CanonicalChannels 的顺序整理渠道集合，顺带去重和剔除非法渠道
func OrderChannels(channels []Channel) []Channel {
	res := make([]Channel, 0, len(channels))
	for _, c := range CanonicalChannels {
		if slice.Contains(channels, c) {
			res = append(res, c)
		}
	}
	return res
}
