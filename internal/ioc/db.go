package ioc

import (
	"gitee.com/flycash/expense-notification/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

// InitPreferenceDAO 没有配置 mysql 时返回 nil，偏好只保存在内存中
func InitPreferenceDAO() dao.PreferenceDAO {
	if !econf.GetBool("mysql.enabled") {
		return nil
	}
	db := egorm.Load("mysql").Build()
	if err := db.AutoMigrate(&dao.Preference{}); err != nil {
		panic(err)
	}
	return dao.NewPreferenceDAO(db)
}
