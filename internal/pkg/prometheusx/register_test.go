package prometheusx

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	opts := prometheus.CounterOpts{Name: "prometheusx_register_test_total", Help: "test"}
	first := Register(prometheus.NewCounterVec(opts, []string{"label"}))
	second := Register(prometheus.NewCounterVec(opts, []string{"label"}))
	assert.Same(t, first, second)

	// 同名但是标签不同的指标无法复用
	assert.Panics(t, func() {
		Register(prometheus.NewCounterVec(opts, []string{"other"}))
	})
}
