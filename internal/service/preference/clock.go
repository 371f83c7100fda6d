package preference

import (
	"fmt"
	"time"

	"gitee.com/flycash/expense-notification/internal/errs"
)

// parseClock 把 HH:MM 解析成一天中的第几分钟
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: 时间 %q 不是 HH:MM 格式", errs.ErrInvalidParameter, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// inWindow 判断 minute 是否落在 [start, end) 内，start > end 表示跨越午夜
// start == end 视为空窗口
func inWindow(minute, start, end int) bool {
	switch {
	case start == end:
		return false
	case start < end:
		return minute >= start && minute < end
	default:
		return minute >= start || minute < end
	}
}
