package ioc

import (
	"time"

	ca "github.com/patrickmn/go-cache"
)

// InitGoCache 偏好缓存永不过期，清理间隔只是兜底
func InitGoCache() *ca.Cache {
	const cleanupInterval = 10 * time.Minute
	return ca.New(ca.NoExpiration, cleanupInterval)
}
