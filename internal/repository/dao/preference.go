package dao

import (
	"context"
	"errors"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	pkgdao "gitee.com/flycash/expense-notification/internal/pkg/dao"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// Preference 用户通知偏好表，偏好整体作为一个 JSON 列存储
type Preference struct {
	UserID      string                               `gorm:"primaryKey;type:VARCHAR(64);comment:'用户ID'"`
	Preferences pkgdao.JSONColumn[domain.Preferences] `gorm:"type:JSON;comment:'渠道映射、免打扰和摘要设置'"`
	Ctime       int64
	Utime       int64
}

// TableName 重命名表
func (Preference) TableName() string {
	return "notification_preferences"
}

// PreferenceDAO 偏好表的读写
//
//go:generate mockgen -source=./preference.go -destination=./mocks/preference.mock.go -package=daomocks -typed PreferenceDAO
type PreferenceDAO interface {
	GetByUserID(ctx context.Context, userID string) (Preference, error)
	Upsert(ctx context.Context, p Preference) error
}

type preferenceDAO struct {
	db *egorm.Component
}

func NewPreferenceDAO(db *egorm.Component) PreferenceDAO {
	return &preferenceDAO{db: db}
}

func (d *preferenceDAO) GetByUserID(ctx context.Context, userID string) (Preference, error) {
	var p Preference
	err := d.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Preference{}, ErrRecordNotFound
	}
	return p, err
}

// Upsert 记录存在时只更新偏好和更新时间
func (d *preferenceDAO) Upsert(ctx context.Context, p Preference) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"preferences", "utime"}),
	}).Create(&p).Error
}
