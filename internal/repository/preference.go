package repository

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/repository/dao"
	pkgdao "gitee.com/flycash/expense-notification/internal/pkg/dao"
	ca "github.com/patrickmn/go-cache"
)

// PreferenceRepository 用户通知偏好仓库，不存在时返回 errs.ErrPreferencesNotFound
//
//go:generate mockgen -source=./preference.go -destination=./mocks/preference.mock.go -package=repomocks -typed PreferenceRepository
type PreferenceRepository interface {
	Get(ctx context.Context, userID string) (domain.Preferences, error)
	Save(ctx context.Context, prefs domain.Preferences) error
}

type preferenceRepository struct {
	// cache 进程内缓存，永不过期
	cache *ca.Cache
	// dao 可以为 nil，此时偏好只保存在内存中
	dao dao.PreferenceDAO
}

// NewPreferenceRepository 创建偏好仓库，preferenceDAO 为 nil 时退化为纯内存实现
func NewPreferenceRepository(c *ca.Cache, preferenceDAO dao.PreferenceDAO) PreferenceRepository {
	return &preferenceRepository{
		cache: c,
		dao:   preferenceDAO,
	}
}

func (r *preferenceRepository) Get(ctx context.Context, userID string) (domain.Preferences, error) {
	if v, ok := r.cache.Get(cacheKey(userID)); ok {
		return v.(domain.Preferences).Clone(), nil
	}
	if r.dao == nil {
		return domain.Preferences{}, fmt.Errorf("%w: userID = %s", errs.ErrPreferencesNotFound, userID)
	}
	p, err := r.dao.GetByUserID(ctx, userID)
	if errors.Is(err, dao.ErrRecordNotFound) || (err == nil && !p.Preferences.Valid) {
		return domain.Preferences{}, fmt.Errorf("%w: userID = %s", errs.ErrPreferencesNotFound, userID)
	}
	if err != nil {
		return domain.Preferences{}, err
	}
	prefs := p.Preferences.Val
	prefs.UserID = userID
	r.cache.Set(cacheKey(userID), prefs.Clone(), ca.NoExpiration)
	return prefs, nil
}

// Save 先落库再更新缓存，落库失败时缓存保持原样
func (r *preferenceRepository) Save(ctx context.Context, prefs domain.Preferences) error {
	if r.dao != nil {
		err := r.dao.Upsert(ctx, dao.Preference{
			UserID:      prefs.UserID,
			Preferences: pkgdao.NewJSONColumn(prefs),
		})
		if err != nil {
			return err
		}
	}
	r.cache.Set(cacheKey(prefs.UserID), prefs.Clone(), ca.NoExpiration)
	return nil
}

func cacheKey(userID string) string {
	return "preferences:" + userID
}
