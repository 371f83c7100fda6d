package gateway

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/service/provider/push"
	"github.com/ecodeclub/ekit/syncx"
	"github.com/gotomicro/ego/client/ehttp"
)

const defaultTimeout = 5 * time.Second

var _ push.Platform = (*Gateway)(nil)

// Gateway 通过推送网关的 HTTP 接口实现原生推送
// 授权结果只缓存 granted/denied，default 每次都会重新查询
type Gateway struct {
	client      *ehttp.Component
	timeout     time.Duration
	permissions syncx.Map[string, push.Permission]
}

// NewGateway client 为 nil 时表示当前环境没有推送能力
func NewGateway(client *ehttp.Component, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Gateway{
		client:  client,
		timeout: timeout,
	}
}

func (g *Gateway) Supported() bool {
	return g.client != nil
}

type permissionReq struct {
	UserID string `json:"userId"`
}

type permissionResp struct {
	Permission push.Permission `json:"permission"`
}

func (g *Gateway) Permission(ctx context.Context, userID string) (push.Permission, error) {
	if p, ok := g.permissions.Load(userID); ok {
		return p, nil
	}
	if !g.Supported() {
		return push.PermissionDenied, errs.ErrPushNotSupported
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var res permissionResp
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("userId", userID).
		SetResult(&res).
		Get("/permissions")
	if err != nil {
		return push.PermissionDefault, fmt.Errorf("查询推送授权失败: %w", err)
	}
	if !resp.IsSuccess() {
		return push.PermissionDefault, fmt.Errorf("查询推送授权失败: StatusCode = %d", resp.StatusCode())
	}
	g.remember(userID, res.Permission)
	return normalize(res.Permission), nil
}

func (g *Gateway) RequestPermission(ctx context.Context, userID string) (push.Permission, error) {
	if !g.Supported() {
		return push.PermissionDenied, errs.ErrPushNotSupported
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var res permissionResp
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(permissionReq{UserID: userID}).
		SetResult(&res).
		Post("/permissions")
	if err != nil {
		return push.PermissionDefault, fmt.Errorf("申请推送授权失败: %w", err)
	}
	if !resp.IsSuccess() {
		return push.PermissionDefault, fmt.Errorf("申请推送授权失败: StatusCode = %d", resp.StatusCode())
	}
	g.remember(userID, res.Permission)
	return normalize(res.Permission), nil
}

type showReq struct {
	NotificationID uint64          `json:"notificationId"`
	UserID         string          `json:"userId"`
	Title          string          `json:"title"`
	Body           string          `json:"body"`
	Priority       domain.Priority `json:"priority"`
	Data           map[string]any  `json:"data,omitempty"`
}

func (g *Gateway) Show(ctx context.Context, msg domain.Message) error {
	if !g.Supported() {
		return errs.ErrPushNotSupported
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(showReq{
			NotificationID: msg.NotificationID,
			UserID:         msg.UserID,
			Title:          msg.Subject,
			Body:           msg.Body,
			Priority:       msg.Priority,
			Data:           msg.Data,
		}).
		Post("/push")
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: StatusCode = %d, Body = %s", errs.ErrSendNotificationFailed, resp.StatusCode(), resp.String())
	}
	return nil
}

func (g *Gateway) remember(userID string, p push.Permission) {
	if p == push.PermissionGranted || p == push.PermissionDenied {
		g.permissions.Store(userID, p)
	}
}

func normalize(p push.Permission) push.Permission {
	switch p {
	case push.PermissionGranted, push.PermissionDenied:
		return p
	default:
		return push.PermissionDefault
	}
}
