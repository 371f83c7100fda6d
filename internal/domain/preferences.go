package domain

// Category 偏好设置中的通知分类
type Category string

const (
	CategoryBudgetAlerts     Category = "budgetAlerts"
	CategoryExpenseUpdates   Category = "expenseUpdates"
	CategoryPaymentReminders Category = "paymentReminders"
	CategorySocialUpdates    Category = "socialUpdates"
)

var AllCategories = []Category{
	CategoryBudgetAlerts,
	CategoryExpenseUpdates,
	CategoryPaymentReminders,
	CategorySocialUpdates,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBudgetAlerts, CategoryExpenseUpdates, CategoryPaymentReminders, CategorySocialUpdates:
		return true
	default:
		return false
	}
}

// DoNotDisturb 免打扰时间段，Start 和 End 都是 HH:MM 格式的本地时间
type DoNotDisturb struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Digest 摘要模式，开启后非紧急通知会累积到 DeliveryTime 统一下发
type Digest struct {
	Enabled      bool   `json:"enabled"`
	DeliveryTime string `json:"deliveryTime"`
}

// Preferences 用户的通知偏好
type Preferences struct {
	UserID       string                 `json:"userId"`
	Channels     map[Category][]Channel `json:"channels"`
	DoNotDisturb DoNotDisturb           `json:"doNotDisturb"`
	Digest       Digest                 `json:"digest"`
	// Timezone IANA 时区名，为空时使用进程所在时区
	Timezone string `json:"timezone,omitempty"`
}

// DefaultPreferences 用户第一次访问时使用的默认偏好
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID: userID,
		Channels: map[Category][]Channel{
			CategoryBudgetAlerts:     {ChannelInApp, ChannelEmail, ChannelPush},
			CategoryExpenseUpdates:   {ChannelInApp, ChannelPush},
			CategoryPaymentReminders: {ChannelInApp, ChannelEmail, ChannelPush},
			CategorySocialUpdates:    {ChannelInApp, ChannelPush},
		},
		DoNotDisturb: DoNotDisturb{Enabled: false, Start: "22:00", End: "08:00"},
		Digest:       Digest{Enabled: false, DeliveryTime: "09:00"},
	}
}

// ChannelsOf 返回分类允许的渠道，返回值是副本
func (p Preferences) ChannelsOf(category Category) []Channel {
	chs := p.Channels[category]
	res := make([]Channel, len(chs))
	copy(res, chs)
	return res
}

// ToggleChannel 翻转分类下某个渠道的开关
func (p *Preferences) ToggleChannel(category Category, channel Channel) {
	if p.Channels == nil {
		p.Channels = make(map[Category][]Channel, len(AllCategories))
	}
	chs := p.Channels[category]
	for i, c := range chs {
		if c == channel {
			p.Channels[category] = append(chs[:i:i], chs[i+1:]...)
			return
		}
	}
	p.Channels[category] = append(chs[:len(chs):len(chs)], channel)
}

// Clone 深拷贝，避免调用方修改缓存中的对象
func (p Preferences) Clone() Preferences {
	res := p
	res.Channels = make(map[Category][]Channel, len(p.Channels))
	for k, v := range p.Channels {
		chs := make([]Channel, len(v))
		copy(chs, v)
		res.Channels[k] = chs
	}
	return res
}
