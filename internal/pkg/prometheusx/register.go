package prometheusx

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Register 注册指标，重复注册时复用已经注册的同名指标
func Register[T prometheus.Collector](c T) T {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
