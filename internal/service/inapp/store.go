package inapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/service/channel"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
)

const (
	// DefaultCapacity 最多保留最近的 100 条，超出时淘汰最旧的
	DefaultCapacity = 100
	TitleMaxLen     = 100
	MessageMaxLen   = 1000

	persistTimeout = 3 * time.Second
)

var _ channel.Strategy = (*Store)(nil)

// Listener 订阅者，每次收到的都是独立的副本
// 回调中可以直接调用 Store 的修改方法，新的快照会在回调返回后推送
type Listener func(notifications []domain.Notification)

type subscription struct {
	token    string
	listener Listener
	// pending 还没有收到最新的快照
	pending bool
}

// Store 站内信收件箱，同时是 IN_APP 渠道的发送策略
// 列表按时间倒序排列，下标 0 是最新的通知
type Store struct {
	// mu 保护列表、订阅者以及下面的推送状态
	mu            sync.RWMutex
	notifications []domain.Notification
	subscriptions []*subscription
	// publishing 同一时刻只有一个 goroutine 负责推送快照和持久化，订阅者的回调因此是串行的
	publishing bool
	// dirty 列表有变化但还没有持久化
	dirty bool

	storage  Storage
	capacity int
	now      func() time.Time
	logger   *elog.Component
}

// NewStore 创建收件箱并从持久化快照中恢复，快照损坏或者不存在时从空列表开始
func NewStore(storage Storage) *Store {
	s := &Store{
		storage:  storage,
		capacity: DefaultCapacity,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	s.notifications = s.load(ctx)
	return s
}

func (s *Store) Channel() domain.Channel {
	return domain.ChannelInApp
}

func (s *Store) CanHandle(n domain.Notification) bool {
	return n.EligibleFor(domain.ChannelInApp)
}

func (s *Store) SupportedPriorities() []domain.Priority {
	return domain.AllPriorities
}

func (s *Store) Validate(n domain.Notification) error {
	return channel.CheckLength(domain.ChannelInApp,
		channel.LengthRule{Field: "title", Value: n.Title, Required: true, Max: TitleMaxLen},
		channel.LengthRule{Field: "message", Value: n.Message, Max: MessageMaxLen})
}

// Send 插入收件箱，副本的状态直接置为已发送
func (s *Store) Send(ctx context.Context, n domain.Notification) domain.DeliveryResult {
	now := s.now()
	inserted := n.Clone()
	if err := inserted.MarkStatus(domain.SendStatusSent, now); err != nil {
		return domain.FailedResult(domain.ChannelInApp, err)
	}
	s.mutate(ctx, func(list []domain.Notification) ([]domain.Notification, bool) {
		list = slice.FilterDelete(list, func(_ int, src domain.Notification) bool {
			return src.ID == inserted.ID
		})
		res := make([]domain.Notification, 0, min(len(list)+1, s.capacity))
		res = append(res, inserted)
		for i := 0; i < len(list) && len(res) < s.capacity; i++ {
			res = append(res, list[i])
		}
		return res, true
	})
	return domain.SucceededResult(domain.ChannelInApp, now)
}

// MarkAsRead 幂等，已读的通知保持第一次的已读时间，也不会再次通知订阅者
// 从快照恢复出来的未发送通知不能标记已读
func (s *Store) MarkAsRead(ctx context.Context, id uint64) error {
	var (
		found bool
		err   error
	)
	s.mutate(ctx, func(list []domain.Notification) ([]domain.Notification, bool) {
		for i := range list {
			if list[i].ID != id {
				continue
			}
			found = true
			if list[i].IsRead() {
				return list, false
			}
			err = list[i].MarkRead(s.now())
			return list, err == nil
		}
		return list, false
	})
	if !found {
		return fmt.Errorf("%w: ID = %d", errs.ErrNotificationNotFound, id)
	}
	return err
}

func (s *Store) MarkAllAsRead(ctx context.Context) {
	s.markAllWhere(ctx, func(domain.Notification) bool { return true })
}

// MarkAllAsReadOf 只标记某个用户的通知
func (s *Store) MarkAllAsReadOf(ctx context.Context, userID string) {
	s.markAllWhere(ctx, func(n domain.Notification) bool { return n.UserID == userID })
}

func (s *Store) markAllWhere(ctx context.Context, match func(n domain.Notification) bool) {
	s.mutate(ctx, func(list []domain.Notification) ([]domain.Notification, bool) {
		now := s.now()
		changed := false
		for i := range list {
			if !match(list[i]) || list[i].IsRead() {
				continue
			}
			if err := list[i].MarkRead(now); err == nil {
				changed = true
			}
		}
		return list, changed
	})
}

// Clear 删除一条通知
func (s *Store) Clear(ctx context.Context, id uint64) error {
	var found bool
	s.mutate(ctx, func(list []domain.Notification) ([]domain.Notification, bool) {
		before := len(list)
		list = slice.FilterDelete(list, func(_ int, src domain.Notification) bool {
			return src.ID == id
		})
		found = len(list) != before
		return list, found
	})
	if !found {
		return fmt.Errorf("%w: ID = %d", errs.ErrNotificationNotFound, id)
	}
	return nil
}

func (s *Store) ClearAll(ctx context.Context) {
	s.mutate(ctx, func(list []domain.Notification) ([]domain.Notification, bool) {
		return []domain.Notification{}, len(list) > 0
	})
}

// ClearAllOf 只删除某个用户的通知
func (s *Store) ClearAllOf(ctx context.Context, userID string) {
	s.mutate(ctx, func(list []domain.Notification) ([]domain.Notification, bool) {
		before := len(list)
		list = slice.FilterDelete(list, func(_ int, src domain.Notification) bool {
			return src.UserID == userID
		})
		return list, len(list) != before
	})
}

// Reload 丢弃内存中的列表，重新从持久化快照中恢复
func (s *Store) Reload(ctx context.Context) {
	loaded := s.load(ctx)
	s.mu.Lock()
	s.notifications = loaded
	s.markPendingLocked()
	s.mu.Unlock()
	s.flush(ctx)
}

// Notifications 当前列表的副本
func (s *Store) Notifications() []domain.Notification {
	return s.snapshot()
}

func (s *Store) Get(id uint64) (domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			return s.notifications[i].Clone(), nil
		}
	}
	return domain.Notification{}, fmt.Errorf("%w: ID = %d", errs.ErrNotificationNotFound, id)
}

func (s *Store) UnreadCount() int {
	return s.unreadWhere(func(domain.Notification) bool { return true })
}

// NotificationsOf 某个用户的通知，仍然是最新的在前
func (s *Store) NotificationsOf(userID string) []domain.Notification {
	return FilterByUser(s.snapshot(), userID)
}

func (s *Store) UnreadCountOf(userID string) int {
	return s.unreadWhere(func(n domain.Notification) bool { return n.UserID == userID })
}

func (s *Store) unreadWhere(match func(n domain.Notification) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cnt := 0
	for i := range s.notifications {
		if match(s.notifications[i]) && !s.notifications[i].IsRead() {
			cnt++
		}
	}
	return cnt
}

// FilterByUser 从快照中筛选某个用户的通知
func FilterByUser(list []domain.Notification, userID string) []domain.Notification {
	res := make([]domain.Notification, 0, len(list))
	for _, n := range list {
		if n.UserID == userID {
			res = append(res, n)
		}
	}
	return res
}

// Subscribe 注册订阅者并推送一次当前快照，返回取消订阅的函数
// 没有其他 goroutine 正在推送时，快照在返回之前就已经送达
func (s *Store) Subscribe(listener Listener) (unsubscribe func()) {
	sub := &subscription{
		token:    uuid.Must(uuid.NewV4()).String(),
		listener: listener,
		pending:  true,
	}

	s.mu.Lock()
	s.subscriptions = append(s.subscriptions, sub)
	s.mu.Unlock()
	s.flush(context.Background())

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subscriptions = slice.FilterDelete(s.subscriptions, func(_ int, src *subscription) bool {
				return src.token == sub.token
			})
		})
	}
}

// mutate 修改列表，有变化时通知所有订阅者并持久化
func (s *Store) mutate(ctx context.Context, fn func(list []domain.Notification) ([]domain.Notification, bool)) {
	s.mu.Lock()
	list, changed := fn(s.notifications)
	if !changed {
		s.mu.Unlock()
		return
	}
	s.notifications = list
	s.dirty = true
	s.markPendingLocked()
	s.mu.Unlock()

	s.flush(ctx)
}

// markPendingLocked 调用方必须持有 mu
func (s *Store) markPendingLocked() {
	for _, sub := range s.subscriptions {
		sub.pending = true
	}
}

// flush 把最新的快照推给还没收到的订阅者并持久化，直到没有新的变化为止
// 已经有 goroutine 在推送时直接返回，这次的变化由它负责推送
func (s *Store) flush(ctx context.Context) {
	s.mu.Lock()
	if s.publishing {
		s.mu.Unlock()
		return
	}
	s.publishing = true
	for {
		var subs []*subscription
		for _, sub := range s.subscriptions {
			if sub.pending {
				sub.pending = false
				subs = append(subs, sub)
			}
		}
		dirty := s.dirty
		s.dirty = false
		if len(subs) == 0 && !dirty {
			s.publishing = false
			s.mu.Unlock()
			return
		}
		list := cloneAll(s.notifications)
		s.mu.Unlock()

		for _, sub := range subs {
			s.deliver(sub, list)
		}
		if dirty {
			s.persist(ctx, list)
		}
		s.mu.Lock()
	}
}

// deliver 每个订阅者拿到独立的副本，某个订阅者 panic 不影响其他订阅者
func (s *Store) deliver(sub *subscription, list []domain.Notification) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("站内信订阅者处理失败",
				elog.String("token", sub.token),
				elog.Any("panic", r))
		}
	}()
	sub.listener(cloneAll(list))
}

func (s *Store) snapshot() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.notifications)
}

func cloneAll(list []domain.Notification) []domain.Notification {
	return slice.Map(list, func(_ int, src domain.Notification) domain.Notification {
		return src.Clone()
	})
}

// persist 尽力而为，失败只记录日志
func (s *Store) persist(ctx context.Context, list []domain.Notification) {
	data, err := json.Marshal(list)
	if err != nil {
		s.logger.Error("序列化站内信失败", elog.FieldErr(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err = s.storage.Save(ctx, data); err != nil {
		s.logger.Error("持久化站内信失败", elog.FieldErr(err))
	}
}

func (s *Store) load(ctx context.Context) []domain.Notification {
	data, err := s.storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrSnapshotNotFound) {
			s.logger.Warn("读取站内信快照失败，从空列表开始", elog.FieldErr(err))
		}
		return []domain.Notification{}
	}
	var list []domain.Notification
	if err = json.Unmarshal(data, &list); err != nil {
		s.logger.Warn("站内信快照已损坏，从空列表开始", elog.FieldErr(err))
		return []domain.Notification{}
	}
	if len(list) > s.capacity {
		list = list[:s.capacity]
	}
	return list
}
