package domain

import (
	"encoding/json"
	"testing"
	"time"

	"gitee.com/flycash/expense-notification/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationEvent_Unmarshal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		body    string
		want    Recipients
		wantErr error
	}{
		{
			name: "单个接收者",
			body: `{"type":"FRIEND_REQUEST","userId":"u1"}`,
			want: Recipients{"u1"},
		},
		{
			name: "多个接收者",
			body: `{"type":"FRIEND_REQUEST","userId":["u1","u2"]}`,
			want: Recipients{"u1", "u2"},
		},
		{
			name:    "接收者格式错误",
			body:    `{"type":"FRIEND_REQUEST","userId":123}`,
			wantErr: errs.ErrInvalidEvent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var evt NotificationEvent
			err := json.Unmarshal([]byte(tc.body), &evt)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, evt.UserIDs)
		})
	}
}

func TestNotificationEvent_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		evt     NotificationEvent
		wantErr error
	}{
		{
			name: "合法",
			evt:  NotificationEvent{Type: TypeBudgetAlert, UserIDs: Recipients{"u1"}, Priority: PriorityHigh},
		},
		{
			name:    "未知类型",
			evt:     NotificationEvent{Type: "UNKNOWN", UserIDs: Recipients{"u1"}},
			wantErr: errs.ErrUnknownEventType,
		},
		{
			name:    "没有接收者",
			evt:     NotificationEvent{Type: TypeBudgetAlert},
			wantErr: errs.ErrInvalidEvent,
		},
		{
			name:    "接收者为空字符串",
			evt:     NotificationEvent{Type: TypeBudgetAlert, UserIDs: Recipients{"u1", ""}},
			wantErr: errs.ErrInvalidEvent,
		},
		{
			name:    "非法优先级",
			evt:     NotificationEvent{Type: TypeBudgetAlert, UserIDs: Recipients{"u1"}, Priority: "CRITICAL"},
			wantErr: errs.ErrInvalidEvent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tc.evt.Validate(), tc.wantErr)
		})
	}
}

func TestNotificationType_Category(t *testing.T) {
	t.Parallel()
	for _, typ := range []NotificationType{
		TypeBudgetAlert, TypeExpenseAdded, TypePaymentReminder, TypeFriendRequest,
		TypeGroupInvite, TypeSettlementReminder, TypeRecurringExpense, TypeDebtSettled,
	} {
		c, err := typ.Category()
		require.NoError(t, err)
		assert.True(t, c.IsValid())
	}
	_, err := NotificationType("UNKNOWN").Category()
	assert.ErrorIs(t, err, errs.ErrUnknownEventType)
}

func TestNotification_Status(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	n := Notification{ID: 1, Status: SendStatusPending}
	// 未发送的通知不能已读
	assert.ErrorIs(t, n.MarkRead(now), errs.ErrInvalidStatusTransition)

	require.NoError(t, n.MarkStatus(SendStatusSent, now))
	assert.Equal(t, now, n.SentAt)
	// 不能回退
	assert.ErrorIs(t, n.MarkStatus(SendStatusPending, now), errs.ErrInvalidStatusTransition)
	assert.ErrorIs(t, n.MarkStatus(SendStatusFailed, now), errs.ErrInvalidStatusTransition)

	require.NoError(t, n.MarkRead(now))
	require.NoError(t, n.MarkRead(now.Add(time.Hour)))
	assert.Equal(t, now, n.ReadAt)
	assert.True(t, n.IsRead())
}

func TestNotification_Clone(t *testing.T) {
	t.Parallel()
	n := Notification{
		Channels: []Channel{ChannelInApp},
		Data:     map[string]any{"category": "food"},
	}
	c := n.Clone()
	c.Channels[0] = ChannelSMS
	c.Data["category"] = "rent"
	assert.Equal(t, ChannelInApp, n.Channels[0])
	assert.Equal(t, "food", n.Data["category"])
}

func TestNotification_CloneNestedData(t *testing.T) {
	t.Parallel()
	n := Notification{
		Data: map[string]any{
			"action": map[string]any{"target": "/budgets/food"},
			"tags":   []any{"food", map[string]any{"k": "v"}},
			"empty":  []any(nil),
		},
	}
	c := n.Clone()
	c.Data["action"].(map[string]any)["target"] = "/changed"
	c.Data["tags"].([]any)[0] = "rent"
	c.Data["tags"].([]any)[1].(map[string]any)["k"] = "changed"

	assert.Equal(t, "/budgets/food", n.Data["action"].(map[string]any)["target"])
	assert.Equal(t, []any{"food", map[string]any{"k": "v"}}, n.Data["tags"])
	assert.Nil(t, c.Data["empty"])
	assert.Nil(t, CopyData(nil))
}

func TestNotification_IsExpired(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.False(t, Notification{}.IsExpired(now))
	assert.False(t, Notification{ExpiresAt: now.Add(time.Second)}.IsExpired(now))
	assert.True(t, Notification{ExpiresAt: now}.IsExpired(now))
}

func TestOrderChannels(t *testing.T) {
	t.Parallel()
	got := OrderChannels([]Channel{ChannelInApp, "FAX", ChannelEmail, ChannelPush, ChannelInApp})
	assert.Equal(t, []Channel{ChannelPush, ChannelEmail, ChannelInApp}, got)
	assert.Empty(t, OrderChannels(nil))
}

func TestPreferences_ToggleChannel(t *testing.T) {
	t.Parallel()
	p := DefaultPreferences("u1")
	origin := p.Clone()

	p.ToggleChannel(CategoryBudgetAlerts, ChannelSMS)
	assert.Contains(t, p.ChannelsOf(CategoryBudgetAlerts), ChannelSMS)
	p.ToggleChannel(CategoryBudgetAlerts, ChannelSMS)
	assert.ElementsMatch(t, origin.ChannelsOf(CategoryBudgetAlerts), p.ChannelsOf(CategoryBudgetAlerts))

	p.ToggleChannel(CategorySocialUpdates, ChannelPush)
	assert.Equal(t, []Channel{ChannelInApp}, p.ChannelsOf(CategorySocialUpdates))
	// 副本不受影响
	assert.Equal(t, []Channel{ChannelInApp, ChannelPush}, origin.ChannelsOf(CategorySocialUpdates))

	var empty Preferences
	empty.ToggleChannel(CategoryExpenseUpdates, ChannelEmail)
	assert.Equal(t, []Channel{ChannelEmail}, empty.ChannelsOf(CategoryExpenseUpdates))
}
