package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/service/inapp"
	"gitee.com/flycash/expense-notification/internal/service/notification"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// UserIDHeader 网关鉴权之后透传的用户ID
const UserIDHeader = "X-User-ID"

type EventHandler interface {
	HandleEvent(ctx context.Context, evt domain.NotificationEvent) ([]notification.RecipientResult, error)
}

// Inbox 站内信收件箱，所有用户共用一个列表，按用户筛选
type Inbox interface {
	NotificationsOf(userID string) []domain.Notification
	UnreadCountOf(userID string) int
	Get(id uint64) (domain.Notification, error)
	MarkAsRead(ctx context.Context, id uint64) error
	MarkAllAsReadOf(ctx context.Context, userID string)
	Clear(ctx context.Context, id uint64) error
	ClearAllOf(ctx context.Context, userID string)
	Subscribe(listener inapp.Listener) (unsubscribe func())
}

type PreferenceService interface {
	Get(ctx context.Context, userID string) (domain.Preferences, error)
	Replace(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error)
	ToggleChannel(ctx context.Context, userID string, category domain.Category, channel domain.Channel) (domain.Preferences, error)
}

type Handler struct {
	events EventHandler
	inbox  Inbox
	prefs  PreferenceService
	logger *elog.Component
}

func NewHandler(events EventHandler, inbox Inbox, prefs PreferenceService) *Handler {
	return &Handler{
		events: events,
		inbox:  inbox,
		prefs:  prefs,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) RegisterRoutes(server gin.IRouter) {
	server.POST("/events", h.HandleEvent)

	inbox := server.Group("/inbox")
	inbox.Use(requireUser)
	inbox.GET("", h.List)
	inbox.GET("/unread", h.UnreadCount)
	inbox.GET("/stream", h.Stream)
	inbox.POST("/read", h.MarkAllAsRead)
	inbox.POST("/:id/read", h.MarkAsRead)
	inbox.DELETE("", h.ClearAll)
	inbox.DELETE("/:id", h.Clear)

	prefs := server.Group("/preferences/:uid")
	prefs.GET("", h.GetPreferences)
	prefs.PUT("", h.PutPreferences)
	prefs.POST("/channels/:category/:channel/toggle", h.ToggleChannel)
}

func (h *Handler) HandleEvent(ctx *gin.Context) {
	var evt domain.NotificationEvent
	if err := ctx.ShouldBindJSON(&evt); err != nil {
		h.fail(ctx, errors.Join(errs.ErrInvalidEvent, err))
		return
	}
	results, err := h.events.HandleEvent(ctx.Request.Context(), evt)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *Handler) List(ctx *gin.Context) {
	list := h.inbox.NotificationsOf(userID(ctx))
	if ctx.Query("unread") == "true" {
		unread := make([]domain.Notification, 0, len(list))
		for _, n := range list {
			if !n.IsRead() {
				unread = append(unread, n)
			}
		}
		list = unread
	}
	ctx.JSON(http.StatusOK, gin.H{"notifications": list})
}

func (h *Handler) UnreadCount(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"unread": h.inbox.UnreadCountOf(userID(ctx))})
}

func (h *Handler) MarkAsRead(ctx *gin.Context) {
	id, ok := h.ownedNotification(ctx)
	if !ok {
		return
	}
	if err := h.inbox.MarkAsRead(ctx.Request.Context(), id); err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *Handler) MarkAllAsRead(ctx *gin.Context) {
	h.inbox.MarkAllAsReadOf(ctx.Request.Context(), userID(ctx))
	ctx.Status(http.StatusNoContent)
}

func (h *Handler) Clear(ctx *gin.Context) {
	id, ok := h.ownedNotification(ctx)
	if !ok {
		return
	}
	if err := h.inbox.Clear(ctx.Request.Context(), id); err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *Handler) ClearAll(ctx *gin.Context) {
	h.inbox.ClearAllOf(ctx.Request.Context(), userID(ctx))
	ctx.Status(http.StatusNoContent)
}

// Stream 以 SSE 的形式推送收件箱快照，订阅时先推送一次当前快照
func (h *Handler) Stream(ctx *gin.Context) {
	uid := userID(ctx)
	// 只保留最新的快照，慢的客户端会跳过中间状态
	updates := make(chan []domain.Notification, 1)
	unsubscribe := h.inbox.Subscribe(func(list []domain.Notification) {
		latest := inapp.FilterByUser(list, uid)
		for {
			select {
			case updates <- latest:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	defer unsubscribe()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Request.Context().Done():
			return false
		case list := <-updates:
			unread := 0
			for _, n := range list {
				if !n.IsRead() {
					unread++
				}
			}
			ctx.SSEvent("notifications", gin.H{"notifications": list, "unread": unread})
			return true
		}
	})
}

func (h *Handler) GetPreferences(ctx *gin.Context) {
	prefs, err := h.prefs.Get(ctx.Request.Context(), ctx.Param("uid"))
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, prefs)
}

func (h *Handler) PutPreferences(ctx *gin.Context) {
	var prefs domain.Preferences
	if err := ctx.ShouldBindJSON(&prefs); err != nil {
		h.fail(ctx, errors.Join(errs.ErrInvalidParameter, err))
		return
	}
	prefs.UserID = ctx.Param("uid")
	res, err := h.prefs.Replace(ctx.Request.Context(), prefs)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

func (h *Handler) ToggleChannel(ctx *gin.Context) {
	res, err := h.prefs.ToggleChannel(ctx.Request.Context(), ctx.Param("uid"),
		domain.Category(ctx.Param("category")), domain.Channel(ctx.Param("channel")))
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// ownedNotification 通知不存在或者不属于当前用户时都返回 404
func (h *Handler) ownedNotification(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.fail(ctx, errors.Join(errs.ErrInvalidParameter, err))
		return 0, false
	}
	n, err := h.inbox.Get(id)
	if err != nil {
		h.fail(ctx, err)
		return 0, false
	}
	if n.UserID != userID(ctx) {
		h.fail(ctx, errs.ErrNotificationNotFound)
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(ctx *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrUnknownEventType),
		errors.Is(err, errs.ErrInvalidEvent),
		errors.Is(err, errs.ErrInvalidParameter):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotificationNotFound),
		errors.Is(err, errs.ErrPreferencesNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		code = http.StatusConflict
	default:
		h.logger.Error("处理请求失败",
			elog.String("path", ctx.FullPath()),
			elog.FieldErr(err))
	}
	ctx.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}

func requireUser(ctx *gin.Context) {
	if ctx.GetHeader(UserIDHeader) == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "缺少用户标识"})
		return
	}
	ctx.Next()
}

func userID(ctx *gin.Context) string {
	return ctx.GetHeader(UserIDHeader)
}
