package dao

import (
	"errors"
	"regexp"
	"testing"

	"gitee.com/flycash/expense-notification/internal/domain"
	pkgdao "gitee.com/flycash/expense-notification/internal/pkg/dao"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return gormDB, mock
}

func TestPreferenceDAO_GetByUserID(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta("SELECT * FROM `notification_preferences` WHERE user_id = ?")
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    Preference
		wantErr error
	}{
		{
			name: "查询成功",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"user_id", "preferences", "ctime", "utime"}).
					AddRow("u1", `{"userId":"u1","channels":{"budgetAlerts":["EMAIL"]},"doNotDisturb":{"enabled":true,"start":"22:00","end":"08:00"},"digest":{"enabled":false,"deliveryTime":"09:00"}}`, 1, 2)
				mock.ExpectQuery(query).WillReturnRows(rows)
			},
			want: Preference{
				UserID: "u1",
				Preferences: pkgdao.NewJSONColumn(domain.Preferences{
					UserID:       "u1",
					Channels:     map[domain.Category][]domain.Channel{domain.CategoryBudgetAlerts: {domain.ChannelEmail}},
					DoNotDisturb: domain.DoNotDisturb{Enabled: true, Start: "22:00", End: "08:00"},
					Digest:       domain.Digest{DeliveryTime: "09:00"},
				}),
				Ctime: 1,
				Utime: 2,
			},
		},
		{
			name: "记录不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"user_id", "preferences", "ctime", "utime"}))
			},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "数据库错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnError(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			tc.mock(mock)

			got, err := NewPreferenceDAO(db).GetByUserID(t.Context(), "u1")
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPreferenceDAO_Upsert(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "插入或者更新",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `notification_preferences`") + ".*" +
					regexp.QuoteMeta("ON DUPLICATE KEY UPDATE `preferences`=VALUES(`preferences`),`utime`=VALUES(`utime`)")).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "数据库错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `notification_preferences`")).
					WillReturnError(errors.New("mock db error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			tc.mock(mock)

			err := NewPreferenceDAO(db).Upsert(t.Context(), Preference{
				UserID:      "u1",
				Preferences: pkgdao.NewJSONColumn(domain.DefaultPreferences("u1")),
			})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
