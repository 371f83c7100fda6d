package preference

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// Reason 通知被拦截的原因
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonNoChannels Reason = "no_channels"
	ReasonDND        Reason = "dnd"
	ReasonDigest     Reason = "digest"
)

// Decision 是否立即发送的决定
type Decision struct {
	Deliver bool
	Reason  Reason
}

// Resolver 偏好解析，偏好只能通过它的更新方法修改
type Resolver struct {
	// mu 保证 读取-修改-保存 是一个整体，懒创建默认偏好也走这把锁
	mu     sync.Mutex
	repo   repository.PreferenceRepository
	now    func() time.Time
	logger *elog.Component
}

func NewResolver(repo repository.PreferenceRepository) *Resolver {
	return &Resolver{
		repo:   repo,
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

// Now 解析器使用的当前时间
func (r *Resolver) Now() time.Time {
	return r.now()
}

// Get 获取用户偏好，从未设置过的用户会得到默认偏好
func (r *Resolver) Get(ctx context.Context, userID string) (domain.Preferences, error) {
	if userID == "" {
		return domain.Preferences{}, fmt.Errorf("%w: userID 不能为空", errs.ErrInvalidParameter)
	}
	prefs, err := r.repo.Get(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, errs.ErrPreferencesNotFound) {
		return domain.Preferences{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreate(ctx, userID)
}

// Update 在锁内修改用户偏好并保存，返回修改后的偏好
func (r *Resolver) Update(ctx context.Context, userID string, fn func(prefs *domain.Preferences)) (domain.Preferences, error) {
	if userID == "" {
		return domain.Preferences{}, fmt.Errorf("%w: userID 不能为空", errs.ErrInvalidParameter)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	prefs, err := r.getOrCreate(ctx, userID)
	if err != nil {
		return domain.Preferences{}, err
	}
	fn(&prefs)
	prefs.UserID = userID
	if err = r.repo.Save(ctx, prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

// Replace 整体替换用户偏好
func (r *Resolver) Replace(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error) {
	if err := validate(prefs); err != nil {
		return domain.Preferences{}, err
	}
	return r.Update(ctx, prefs.UserID, func(p *domain.Preferences) {
		*p = prefs.Clone()
	})
}

func (r *Resolver) ToggleChannel(ctx context.Context, userID string, category domain.Category, channel domain.Channel) (domain.Preferences, error) {
	if !category.IsValid() || !channel.IsValid() {
		return domain.Preferences{}, fmt.Errorf("%w: category = %q, channel = %q", errs.ErrInvalidParameter, category, channel)
	}
	return r.Update(ctx, userID, func(prefs *domain.Preferences) {
		prefs.ToggleChannel(category, channel)
	})
}

func (r *Resolver) SetDoNotDisturb(ctx context.Context, userID string, dnd domain.DoNotDisturb) (domain.Preferences, error) {
	if _, err := parseClock(dnd.Start); err != nil {
		return domain.Preferences{}, err
	}
	if _, err := parseClock(dnd.End); err != nil {
		return domain.Preferences{}, err
	}
	return r.Update(ctx, userID, func(prefs *domain.Preferences) {
		prefs.DoNotDisturb = dnd
	})
}

func (r *Resolver) SetDigest(ctx context.Context, userID string, digest domain.Digest) (domain.Preferences, error) {
	if _, err := parseClock(digest.DeliveryTime); err != nil {
		return domain.Preferences{}, err
	}
	return r.Update(ctx, userID, func(prefs *domain.Preferences) {
		prefs.Digest = digest
	})
}

// ChannelsFor 分类允许的渠道，已经按照固定顺序排好
func (r *Resolver) ChannelsFor(prefs domain.Preferences, category domain.Category) []domain.Channel {
	return domain.OrderChannels(prefs.ChannelsOf(category))
}

// Decide 判断此刻是否应该发送，URGENT 不受免打扰和摘要模式影响
func (r *Resolver) Decide(prefs domain.Preferences, priority domain.Priority, now time.Time) Decision {
	if priority == domain.PriorityUrgent {
		return Decision{Deliver: true}
	}
	if r.inDoNotDisturb(prefs, now) {
		return Decision{Reason: ReasonDND}
	}
	if prefs.Digest.Enabled {
		return Decision{Reason: ReasonDigest}
	}
	return Decision{Deliver: true}
}

func (r *Resolver) inDoNotDisturb(prefs domain.Preferences, now time.Time) bool {
	dnd := prefs.DoNotDisturb
	if !dnd.Enabled {
		return false
	}
	start, err := parseClock(dnd.Start)
	if err != nil {
		r.logger.Warn("免打扰开始时间格式错误，忽略免打扰设置",
			elog.String("userId", prefs.UserID), elog.FieldErr(err))
		return false
	}
	end, err := parseClock(dnd.End)
	if err != nil {
		r.logger.Warn("免打扰结束时间格式错误，忽略免打扰设置",
			elog.String("userId", prefs.UserID), elog.FieldErr(err))
		return false
	}
	local := now
	if prefs.Timezone != "" {
		loc, err1 := time.LoadLocation(prefs.Timezone)
		if err1 != nil {
			r.logger.Warn("时区不存在，使用进程时区",
				elog.String("userId", prefs.UserID), elog.String("timezone", prefs.Timezone), elog.FieldErr(err1))
		} else {
			local = now.In(loc)
		}
	}
	return inWindow(local.Hour()*60+local.Minute(), start, end)
}

// getOrCreate 调用方必须持有 mu
func (r *Resolver) getOrCreate(ctx context.Context, userID string) (domain.Preferences, error) {
	prefs, err := r.repo.Get(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, errs.ErrPreferencesNotFound) {
		return domain.Preferences{}, err
	}
	prefs = domain.DefaultPreferences(userID)
	if err = r.repo.Save(ctx, prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

func validate(prefs domain.Preferences) error {
	for category, chs := range prefs.Channels {
		if !category.IsValid() {
			return fmt.Errorf("%w: category = %q", errs.ErrInvalidParameter, category)
		}
		for _, c := range chs {
			if !c.IsValid() {
				return fmt.Errorf("%w: channel = %q", errs.ErrInvalidParameter, c)
			}
		}
	}
	if _, err := parseClock(prefs.DoNotDisturb.Start); err != nil {
		return err
	}
	if _, err := parseClock(prefs.DoNotDisturb.End); err != nil {
		return err
	}
	if _, err := parseClock(prefs.Digest.DeliveryTime); err != nil {
		return err
	}
	if prefs.Timezone != "" {
		if _, err := time.LoadLocation(prefs.Timezone); err != nil {
			return fmt.Errorf("%w: timezone = %q", errs.ErrInvalidParameter, prefs.Timezone)
		}
	}
	return nil
}
