package inapp

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// memoryStorage 内存快照，记录保存次数
type memoryStorage struct {
	mu    sync.Mutex
	data  []byte
	saves int
	err   error
}

func (m *memoryStorage) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrSnapshotNotFound
	}
	return m.data, nil
}

func (m *memoryStorage) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.data = data
	return nil
}

func (m *memoryStorage) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newNotification(id uint64, userID string) domain.Notification {
	return domain.Notification{
		ID:        id,
		UserID:    userID,
		Type:      domain.TypeExpenseAdded,
		Priority:  domain.PriorityMedium,
		Title:     "New expense",
		Message:   "Lunch 12.50",
		Channels:  []domain.Channel{domain.ChannelInApp},
		Status:    domain.SendStatusPending,
		CreatedAt: baseTime,
	}
}

type StoreTestSuite struct {
	suite.Suite
	storage *memoryStorage
	store   *Store
}

func TestStore(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.storage = &memoryStorage{}
	s.store = NewStore(s.storage)
	s.store.now = func() time.Time { return baseTime }
}

func (s *StoreTestSuite) TestSend() {
	t := s.T()
	ctx := t.Context()

	for i := uint64(1); i <= 3; i++ {
		res := s.store.Send(ctx, newNotification(i, "u1"))
		require.True(t, res.Success)
		assert.Equal(t, domain.ChannelInApp, res.Channel)
		assert.Equal(t, baseTime, res.DeliveredAt)
	}

	list := s.store.Notifications()
	require.Len(t, list, 3)
	// 最新的在前
	assert.Equal(t, uint64(3), list[0].ID)
	assert.Equal(t, uint64(1), list[2].ID)
	assert.Equal(t, domain.SendStatusSent, list[0].Status)
	assert.Equal(t, baseTime, list[0].SentAt)
	assert.Equal(t, 3, s.store.UnreadCount())
	assert.Equal(t, 3, s.storage.saveCount())

	// 相同 ID 重复插入只保留一条
	s.store.Send(ctx, newNotification(1, "u1"))
	list = s.store.Notifications()
	require.Len(t, list, 3)
	assert.Equal(t, uint64(1), list[0].ID)
}

func (s *StoreTestSuite) TestCapacity() {
	t := s.T()
	ctx := t.Context()

	for i := uint64(1); i <= DefaultCapacity+5; i++ {
		s.store.Send(ctx, newNotification(i, "u1"))
	}
	list := s.store.Notifications()
	require.Len(t, list, DefaultCapacity)
	assert.Equal(t, uint64(DefaultCapacity+5), list[0].ID)
	// 最旧的 5 条被淘汰
	assert.Equal(t, uint64(6), list[DefaultCapacity-1].ID)
	_, err := s.store.Get(5)
	assert.ErrorIs(t, err, errs.ErrNotificationNotFound)
}

func (s *StoreTestSuite) TestMarkAsRead() {
	t := s.T()
	ctx := t.Context()

	s.store.Send(ctx, newNotification(1, "u1"))
	s.store.Send(ctx, newNotification(2, "u1"))
	require.Equal(t, 2, s.store.UnreadCount())

	var published int
	unsubscribe := s.store.Subscribe(func([]domain.Notification) { published++ })
	defer unsubscribe()
	published = 0

	require.NoError(t, s.store.MarkAsRead(ctx, 1))
	assert.Equal(t, 1, s.store.UnreadCount())
	assert.Equal(t, 1, published)
	n, err := s.store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, baseTime, n.ReadAt)

	// 重复标记不改变已读时间，也不会再次通知
	s.store.now = func() time.Time { return baseTime.Add(time.Hour) }
	require.NoError(t, s.store.MarkAsRead(ctx, 1))
	assert.Equal(t, 1, s.store.UnreadCount())
	assert.Equal(t, 1, published)
	n, err = s.store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, baseTime, n.ReadAt)

	assert.ErrorIs(t, s.store.MarkAsRead(ctx, 404), errs.ErrNotificationNotFound)
}

func (s *StoreTestSuite) TestMarkAllAsRead() {
	t := s.T()
	ctx := t.Context()

	s.store.Send(ctx, newNotification(1, "u1"))
	s.store.Send(ctx, newNotification(2, "u2"))
	s.store.Send(ctx, newNotification(3, "u1"))

	s.store.MarkAllAsReadOf(ctx, "u1")
	assert.Equal(t, 0, s.store.UnreadCountOf("u1"))
	assert.Equal(t, 1, s.store.UnreadCountOf("u2"))

	saves := s.storage.saveCount()
	s.store.MarkAllAsReadOf(ctx, "u1")
	// 没有变化不会持久化
	assert.Equal(t, saves, s.storage.saveCount())

	s.store.MarkAllAsRead(ctx)
	assert.Equal(t, 0, s.store.UnreadCount())
}

// 快照中恢复出来的未发送通知不能标记已读，也不会触发推送和持久化
func (s *StoreTestSuite) TestMarkAsRead_PendingFromSnapshot() {
	t := s.T()
	ctx := t.Context()

	storage := &memoryStorage{}
	pending := newNotification(1, "u1")
	data, err := json.Marshal([]domain.Notification{pending})
	require.NoError(t, err)
	require.NoError(t, storage.Save(ctx, data))
	store := NewStore(storage)
	saves := storage.saveCount()

	var published int
	unsubscribe := store.Subscribe(func([]domain.Notification) { published++ })
	defer unsubscribe()
	published = 0

	store.MarkAllAsRead(ctx)
	store.MarkAllAsReadOf(ctx, "u1")
	assert.Equal(t, 0, published)
	assert.Equal(t, saves, storage.saveCount())

	assert.ErrorIs(t, store.MarkAsRead(ctx, 1), errs.ErrInvalidStatusTransition)
	assert.Equal(t, 0, published)
	assert.Equal(t, saves, storage.saveCount())
	n, err := store.Get(1)
	require.NoError(t, err)
	assert.False(t, n.IsRead())
}

func (s *StoreTestSuite) TestClear() {
	t := s.T()
	ctx := t.Context()

	s.store.Send(ctx, newNotification(1, "u1"))
	s.store.Send(ctx, newNotification(2, "u2"))
	s.store.Send(ctx, newNotification(3, "u1"))

	require.NoError(t, s.store.Clear(ctx, 1))
	assert.ErrorIs(t, s.store.Clear(ctx, 1), errs.ErrNotificationNotFound)
	assert.Len(t, s.store.Notifications(), 2)

	s.store.ClearAllOf(ctx, "u1")
	list := s.store.Notifications()
	require.Len(t, list, 1)
	assert.Equal(t, "u2", list[0].UserID)
	assert.Empty(t, s.store.NotificationsOf("u1"))

	s.store.ClearAll(ctx)
	assert.Empty(t, s.store.Notifications())
	assert.Equal(t, 0, s.store.UnreadCount())
}

func (s *StoreTestSuite) TestSubscribe() {
	t := s.T()
	ctx := t.Context()

	s.store.Send(ctx, newNotification(1, "u1"))

	var first, second [][]domain.Notification
	unsubscribeFirst := s.store.Subscribe(func(list []domain.Notification) {
		// 修改收到的副本不影响其他订阅者和收件箱
		if len(list) > 0 {
			list[0].Title = "changed"
			list[0].Channels[0] = domain.ChannelSMS
		}
		first = append(first, list)
	})
	unsubscribeSecond := s.store.Subscribe(func(list []domain.Notification) {
		second = append(second, list)
	})
	// 订阅时立即收到一次当前快照
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	s.store.Send(ctx, newNotification(2, "u1"))
	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, "New expense", second[1][0].Title)
	assert.Equal(t, domain.ChannelInApp, second[1][0].Channels[0])
	n, err := s.store.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "New expense", n.Title)

	unsubscribeFirst()
	// 重复取消订阅没有副作用
	unsubscribeFirst()
	s.store.Send(ctx, newNotification(3, "u1"))
	assert.Len(t, first, 2)
	assert.Len(t, second, 3)
	unsubscribeSecond()
}

func (s *StoreTestSuite) TestSubscribe_NestedData() {
	t := s.T()
	ctx := t.Context()

	n := newNotification(1, "u1")
	n.Data = map[string]any{
		"action": map[string]any{"target": "/budgets/food"},
		"tags":   []any{"food"},
	}
	s.store.Send(ctx, n)
	// 调用方之后修改自己的数据不影响收件箱
	n.Data["action"].(map[string]any)["target"] = "/caller"

	var second []domain.Notification
	unsubscribeFirst := s.store.Subscribe(func(list []domain.Notification) {
		for _, item := range list {
			if action, ok := item.Data["action"].(map[string]any); ok {
				action["target"] = "/changed"
			}
			if tags, ok := item.Data["tags"].([]any); ok {
				tags[0] = "changed"
			}
		}
	})
	defer unsubscribeFirst()
	unsubscribeSecond := s.store.Subscribe(func(list []domain.Notification) {
		second = list
	})
	defer unsubscribeSecond()

	got, err := s.store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "/budgets/food", got.Data["action"].(map[string]any)["target"])
	assert.Equal(t, []any{"food"}, got.Data["tags"])

	s.store.Send(ctx, newNotification(2, "u1"))
	require.Len(t, second, 2)
	assert.Equal(t, "/budgets/food", second[1].Data["action"].(map[string]any)["target"])
	assert.Equal(t, []any{"food"}, second[1].Data["tags"])
}

// 订阅者在回调中直接标记已读，不会阻塞收件箱
func (s *StoreTestSuite) TestSubscribe_MutateInListener() {
	t := s.T()
	ctx := t.Context()

	s.store.Send(ctx, newNotification(1, "u1"))

	var (
		deliveries int
		markErr    error
		last       []domain.Notification
	)
	unsubscribe := s.store.Subscribe(func(list []domain.Notification) {
		deliveries++
		last = list
		if deliveries == 2 && len(list) > 0 && !list[0].IsRead() {
			markErr = s.store.MarkAsRead(ctx, list[0].ID)
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.store.Send(ctx, newNotification(2, "u1"))
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "收件箱被订阅者的回调阻塞")
	}

	require.NoError(t, markErr)
	// 订阅时一次，新通知一次，标记已读之后一次
	assert.Equal(t, 3, deliveries)
	require.Len(t, last, 2)
	assert.True(t, last[0].IsRead())
	assert.False(t, last[1].IsRead())
	assert.Equal(t, 1, s.store.UnreadCount())

	// 收件箱之后仍然可以正常使用
	s.store.Send(ctx, newNotification(3, "u1"))
	assert.Equal(t, 4, deliveries)
	assert.Equal(t, 2, s.store.UnreadCount())
}

func (s *StoreTestSuite) TestSubscribe_Panic() {
	t := s.T()
	ctx := t.Context()

	var received int
	unsubscribePanic := s.store.Subscribe(func([]domain.Notification) { panic("mock panic") })
	defer unsubscribePanic()
	unsubscribe := s.store.Subscribe(func([]domain.Notification) { received++ })
	defer unsubscribe()

	s.store.Send(ctx, newNotification(1, "u1"))
	assert.Equal(t, 2, received)
	assert.Len(t, s.store.Notifications(), 1)
}

func (s *StoreTestSuite) TestPersistFailure() {
	t := s.T()
	ctx := t.Context()

	s.storage.err = errors.New("mock error")
	// 持久化失败不影响内存中的列表
	res := s.store.Send(ctx, newNotification(1, "u1"))
	assert.True(t, res.Success)
	assert.Len(t, s.store.Notifications(), 1)
}

func (s *StoreTestSuite) TestValidate() {
	t := s.T()
	testCases := []struct {
		name    string
		n       domain.Notification
		wantErr error
	}{
		{name: "合法", n: newNotification(1, "u1")},
		{
			name: "标题为空",
			n: func() domain.Notification {
				n := newNotification(1, "u1")
				n.Title = ""
				return n
			}(),
			wantErr: errs.ErrValidationFailed,
		},
		{
			name: "标题过长",
			n: func() domain.Notification {
				n := newNotification(1, "u1")
				n.Title = strings.Repeat("标", TitleMaxLen+1)
				return n
			}(),
			wantErr: errs.ErrValidationFailed,
		},
		{
			name: "正文按字符计算长度",
			n: func() domain.Notification {
				n := newNotification(1, "u1")
				n.Message = strings.Repeat("文", MessageMaxLen)
				return n
			}(),
		},
		{
			name: "正文过长",
			n: func() domain.Notification {
				n := newNotification(1, "u1")
				n.Message = strings.Repeat("a", MessageMaxLen+1)
				return n
			}(),
			wantErr: errs.ErrValidationFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, s.store.Validate(tc.n), tc.wantErr)
		})
	}
}

func TestStore_FileStorage(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	dir := t.TempDir()

	store := NewStore(NewFileStorage(dir))
	for i := uint64(1); i <= 5; i++ {
		n := newNotification(i, "u1")
		n.Data = map[string]any{"amount": 12.5}
		require.True(t, store.Send(ctx, n).Success)
	}
	require.NoError(t, store.MarkAsRead(ctx, 3))
	want := store.Notifications()

	// 重启之后恢复出相同的列表
	restored := NewStore(NewFileStorage(dir))
	got := restored.Notifications()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Status, got[i].Status)
		assert.Equal(t, want[i].Data, got[i].Data)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
		assert.True(t, want[i].SentAt.Equal(got[i].SentAt))
		assert.True(t, want[i].ReadAt.Equal(got[i].ReadAt))
	}
	assert.Equal(t, 4, restored.UnreadCount())

	// Reload 读取其他实例写入的快照
	require.NoError(t, restored.Clear(ctx, 5))
	store.Reload(ctx)
	assert.Len(t, store.Notifications(), 4)
}

func TestStore_CorruptSnapshot(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	storage := NewFileStorage(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, StorageKey+".json"), []byte("{not json"), 0o644))

	store := NewStore(storage)
	assert.Empty(t, store.Notifications())

	// 损坏的快照会被下一次写入覆盖
	require.True(t, store.Send(t.Context(), newNotification(1, "u1")).Success)
	assert.Len(t, NewStore(storage).Notifications(), 1)
}

func TestFilterByUser(t *testing.T) {
	t.Parallel()
	list := []domain.Notification{newNotification(1, "u1"), newNotification(2, "u2"), newNotification(3, "u1")}
	got := FilterByUser(list, "u1")
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(3), got[1].ID)
	assert.Empty(t, FilterByUser(list, "u3"))
}
