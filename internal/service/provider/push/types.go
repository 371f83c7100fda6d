package push

import (
	"context"

	"gitee.com/flycash/expense-notification/internal/domain"
)

// Permission 推送授权状态
type Permission string

const (
	PermissionDefault Permission = "default" // 尚未询问
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Platform 宿主环境提供的原生推送能力
//
//go:generate mockgen -source=./types.go -destination=./mocks/platform.mock.go -package=pushmocks -typed Platform
type Platform interface {
	// Supported 当前环境是否具备原生推送能力
	Supported() bool
	// Permission 查询用户当前的授权状态
	Permission(ctx context.Context, userID string) (Permission, error)
	// RequestPermission 向用户申请授权，返回申请之后的状态
	RequestPermission(ctx context.Context, userID string) (Permission, error)
	// Show 展示一条原生推送
	Show(ctx context.Context, msg domain.Message) error
}
