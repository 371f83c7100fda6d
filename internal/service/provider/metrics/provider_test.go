package metrics

import (
	"errors"
	"testing"

	"gitee.com/flycash/expense-notification/internal/domain"
	providermocks "gitee.com/flycash/expense-notification/internal/service/provider/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProvider_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := providermocks.NewMockProvider(ctrl)
	gomock.InOrder(
		mock.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
		mock.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("mock error")),
	)
	p := NewProvider("metrics-test", mock)
	// 重复创建共享同一组指标
	same := NewProvider("metrics-test", mock)
	assert.Same(t, p.sendStatusCounter, same.sendStatusCounter)

	msg := domain.Message{Channel: domain.ChannelEmail}
	assert.NoError(t, p.Send(t.Context(), msg))
	assert.Error(t, p.Send(t.Context(), msg))

	assert.InDelta(t, 1, testutil.ToFloat64(p.sendStatusCounter.WithLabelValues("metrics-test", "EMAIL", statusSucceeded)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.sendStatusCounter.WithLabelValues("metrics-test", "EMAIL", statusFailed)), 0)
}
