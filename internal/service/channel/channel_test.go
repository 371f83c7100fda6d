package channel

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/service/provider"
	providermocks "gitee.com/flycash/expense-notification/internal/service/provider/mocks"
	"gitee.com/flycash/expense-notification/internal/service/provider/push"
	pushmocks "gitee.com/flycash/expense-notification/internal/service/provider/push/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotification(p domain.Priority, channels ...domain.Channel) domain.Notification {
	return domain.Notification{
		ID:       1,
		UserID:   "u1",
		Type:     domain.TypePaymentReminder,
		Priority: p,
		Title:    "Payment reminder",
		Message:  "Rent of 1200.00 is due on 2025-03-05.",
		Data:     map[string]any{"email": "u1@example.com", "phone": "13800138000", "actionUrl": "https://example.com/pay"},
		Channels: channels,
		Status:   domain.SendStatusPending,
	}
}

func TestEligible(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sms := NewSMSStrategy(providermocks.NewMockProvider(ctrl))
	assert.False(t, Eligible(sms, newNotification(domain.PriorityLow, domain.ChannelSMS)))
	assert.False(t, Eligible(sms, newNotification(domain.PriorityMedium, domain.ChannelSMS)))
	assert.True(t, Eligible(sms, newNotification(domain.PriorityHigh, domain.ChannelSMS)))
	// 通知不允许走短信
	assert.False(t, Eligible(sms, newNotification(domain.PriorityUrgent, domain.ChannelEmail)))

	platform := pushmocks.NewMockPlatform(ctrl)
	platform.EXPECT().Supported().Return(false).AnyTimes()
	// 宿主环境不支持推送
	assert.False(t, Eligible(NewPushStrategy(platform), newNotification(domain.PriorityUrgent, domain.ChannelPush)))
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := NewEmailStrategy(providermocks.NewMockProvider(ctrl))
	sms := NewSMSStrategy(providermocks.NewMockProvider(ctrl))
	pushStrategy := NewPushStrategy(pushmocks.NewMockPlatform(ctrl))

	with := func(title, message string) domain.Notification {
		n := newNotification(domain.PriorityHigh)
		n.Title, n.Message = title, message
		return n
	}

	testCases := []struct {
		name     string
		strategy Strategy
		n        domain.Notification
		wantErr  error
	}{
		{name: "邮件合法", strategy: email, n: with("subject", "body")},
		{name: "邮件主题为空", strategy: email, n: with("", "body"), wantErr: errs.ErrValidationFailed},
		{name: "邮件主题过长", strategy: email, n: with(strings.Repeat("s", EmailSubjectMaxLen+1), "body"), wantErr: errs.ErrValidationFailed},
		{name: "邮件正文为空", strategy: email, n: with("subject", ""), wantErr: errs.ErrValidationFailed},
		{name: "短信合法", strategy: sms, n: with("", strings.Repeat("短", SMSMessageMaxLen))},
		{name: "短信正文过长", strategy: sms, n: with("", strings.Repeat("m", SMSMessageMaxLen+1)), wantErr: errs.ErrValidationFailed},
		{name: "短信标题过长", strategy: sms, n: with(strings.Repeat("t", SMSTitleMaxLen+1), "m"), wantErr: errs.ErrValidationFailed},
		{name: "推送合法", strategy: pushStrategy, n: with("title", "")},
		{name: "推送标题为空", strategy: pushStrategy, n: with("", "m"), wantErr: errs.ErrValidationFailed},
		{name: "推送正文过长", strategy: pushStrategy, n: with("t", strings.Repeat("m", PushMessageMaxLen+1)), wantErr: errs.ErrValidationFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tc.strategy.Validate(tc.n), tc.wantErr)
		})
	}
}

func TestEmailStrategy_Send(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) provider.Provider
		wantSuccess bool
	}{
		{
			name: "发送成功",
			mock: func(ctrl *gomock.Controller) provider.Provider {
				p := providermocks.NewMockProvider(ctrl)
				p.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg domain.Message) error {
					if msg.Recipient != "u1@example.com" || msg.Channel != domain.ChannelEmail ||
						msg.Body != "Rent of 1200.00 is due on 2025-03-05.\n\nView details: https://example.com/pay" {
						return errors.New("unexpected message")
					}
					return nil
				})
				return p
			},
			wantSuccess: true,
		},
		{
			name: "发送失败",
			mock: func(ctrl *gomock.Controller) provider.Provider {
				p := providermocks.NewMockProvider(ctrl)
				p.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				return p
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			res := NewEmailStrategy(tc.mock(ctrl)).Send(t.Context(), newNotification(domain.PriorityMedium, domain.ChannelEmail))
			assert.Equal(t, domain.ChannelEmail, res.Channel)
			assert.Equal(t, tc.wantSuccess, res.Success)
			if !tc.wantSuccess {
				assert.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestSMSStrategy_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := providermocks.NewMockProvider(ctrl)
	p.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg domain.Message) error {
		assert.Equal(t, "13800138000", msg.Recipient)
		return nil
	})
	res := NewSMSStrategy(p).Send(t.Context(), newNotification(domain.PriorityUrgent, domain.ChannelSMS))
	assert.True(t, res.Success)
}

func TestPushStrategy_Send(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) push.Platform
		wantSuccess bool
		wantErr     string
	}{
		{
			name: "已授权",
			mock: func(ctrl *gomock.Controller) push.Platform {
				p := pushmocks.NewMockPlatform(ctrl)
				p.EXPECT().Permission(gomock.Any(), "u1").Return(push.PermissionGranted, nil)
				p.EXPECT().RequestPermission(gomock.Any(), gomock.Any()).Times(0)
				p.EXPECT().Show(gomock.Any(), gomock.Any()).Return(nil)
				return p
			},
			wantSuccess: true,
		},
		{
			name: "尚未询问时先申请授权",
			mock: func(ctrl *gomock.Controller) push.Platform {
				p := pushmocks.NewMockPlatform(ctrl)
				p.EXPECT().Permission(gomock.Any(), "u1").Return(push.PermissionDefault, nil)
				p.EXPECT().RequestPermission(gomock.Any(), "u1").Return(push.PermissionGranted, nil)
				p.EXPECT().Show(gomock.Any(), gomock.Any()).Return(nil)
				return p
			},
			wantSuccess: true,
		},
		{
			name: "用户拒绝授权",
			mock: func(ctrl *gomock.Controller) push.Platform {
				p := pushmocks.NewMockPlatform(ctrl)
				p.EXPECT().Permission(gomock.Any(), "u1").Return(push.PermissionDefault, nil)
				p.EXPECT().RequestPermission(gomock.Any(), "u1").Return(push.PermissionDenied, nil)
				p.EXPECT().Show(gomock.Any(), gomock.Any()).Times(0)
				return p
			},
			wantErr: errs.ErrPushPermissionDenied.Error(),
		},
		{
			name: "查询授权失败",
			mock: func(ctrl *gomock.Controller) push.Platform {
				p := pushmocks.NewMockPlatform(ctrl)
				p.EXPECT().Permission(gomock.Any(), "u1").Return(push.PermissionDefault, errors.New("mock error"))
				p.EXPECT().Show(gomock.Any(), gomock.Any()).Times(0)
				return p
			},
			wantErr: "mock error",
		},
		{
			name: "展示失败",
			mock: func(ctrl *gomock.Controller) push.Platform {
				p := pushmocks.NewMockPlatform(ctrl)
				p.EXPECT().Permission(gomock.Any(), "u1").Return(push.PermissionGranted, nil)
				p.EXPECT().Show(gomock.Any(), gomock.Any()).Return(errors.New("mock show error"))
				return p
			},
			wantErr: "mock show error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			res := NewPushStrategy(tc.mock(ctrl)).Send(t.Context(), newNotification(domain.PriorityHigh, domain.ChannelPush))
			assert.Equal(t, tc.wantSuccess, res.Success)
			assert.Contains(t, res.Error, tc.wantErr)
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := NewEmailStrategy(providermocks.NewMockProvider(ctrl))
	sms := NewSMSStrategy(providermocks.NewMockProvider(ctrl))
	r := Registry{Email: email, SMS: sms}

	s, err := r.Strategy(domain.ChannelEmail)
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelEmail, s.Channel())

	_, err = r.Strategy(domain.ChannelPush)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	_, err = r.Strategy("FAX")
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	// 未配置的渠道被跳过，其余的保持顺序
	list, err := r.Strategies([]domain.Channel{domain.ChannelPush, domain.ChannelEmail, domain.ChannelSMS})
	assert.Error(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.ChannelEmail, list[0].Channel())
	assert.Equal(t, domain.ChannelSMS, list[1].Channel())
}

func TestCheckLength(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		rules   []LengthRule
		wantErr error
		wantMsg string
	}{
		{name: "不限制长度", rules: []LengthRule{{Field: "body", Value: strings.Repeat("b", 10000)}}},
		{name: "按字符计算", rules: []LengthRule{{Field: "title", Value: strings.Repeat("标", 3), Max: 3}}},
		{
			name:    "必填",
			rules:   []LengthRule{{Field: "title", Required: true}},
			wantErr: errs.ErrValidationFailed,
			wantMsg: "IN_APP 的 title 不能为空",
		},
		{
			name:    "超长",
			rules:   []LengthRule{{Field: "title", Value: "ok"}, {Field: "message", Value: "abcd", Max: 3}},
			wantErr: errs.ErrValidationFailed,
			wantMsg: "IN_APP 的 message 长度 4 超过上限 3",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := CheckLength(domain.ChannelInApp, tc.rules...)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}
