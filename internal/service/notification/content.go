package notification

import (
	"fmt"
	"math"

	"gitee.com/flycash/expense-notification/internal/domain"
	"github.com/spf13/cast"
)

const (
	// budgetWarnRatio 预算使用达到 90% 时提升为 HIGH
	budgetWarnRatio = 0.9
	// budgetExceededRatio 超出预算时提升为 URGENT
	budgetExceededRatio = 1.0
)

// Content 渲染好的通知标题和正文
type Content struct {
	Title   string
	Message string
}

// DefaultPriority 事件没有指定优先级时按类型推导
func DefaultPriority(t domain.NotificationType, data map[string]any) domain.Priority {
	switch t {
	case domain.TypeBudgetAlert:
		ratio, ok := budgetRatio(data)
		switch {
		case !ok:
			return domain.PriorityMedium
		case ratio >= budgetExceededRatio:
			return domain.PriorityUrgent
		case ratio >= budgetWarnRatio:
			return domain.PriorityHigh
		default:
			return domain.PriorityMedium
		}
	case domain.TypePaymentReminder:
		return domain.PriorityHigh
	case domain.TypeRecurringExpense, domain.TypeFriendRequest:
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

// Render 按事件类型从数据中渲染标题和正文，数据里显式给出的 title、message 优先
func Render(t domain.NotificationType, data map[string]any) Content {
	c := render(t, data)
	if v := text(data, "title", ""); v != "" {
		c.Title = v
	}
	if v := text(data, "message", ""); v != "" {
		c.Message = v
	}
	return c
}

func render(t domain.NotificationType, data map[string]any) Content {
	switch t {
	case domain.TypeBudgetAlert:
		category := text(data, "category", "overall")
		spent, limit := amount(data, "spent"), amount(data, "limit")
		ratio, ok := budgetRatio(data)
		if !ok {
			return Content{
				Title:   fmt.Sprintf("Budget alert: %s", category),
				Message: fmt.Sprintf("Your %s budget needs attention.", category),
			}
		}
		title := fmt.Sprintf("Budget alert: %s", category)
		if ratio >= budgetExceededRatio {
			title = fmt.Sprintf("Budget exceeded: %s", category)
		}
		return Content{
			Title: title,
			Message: fmt.Sprintf("You have spent %.2f of your %.2f %s budget (%d%%).",
				spent, limit, category, int(math.Round(ratio*100))),
		}
	case domain.TypeExpenseAdded:
		msg := fmt.Sprintf("%s added \"%s\" (%.2f)",
			text(data, "addedByName", "Someone"), text(data, "description", "an expense"), amount(data, "amount"))
		if g := text(data, "groupName", ""); g != "" {
			msg += " in " + g
		}
		return Content{Title: "New expense added", Message: msg + "."}
	case domain.TypePaymentReminder:
		msg := fmt.Sprintf("%s of %.2f is due", text(data, "description", "A payment"), amount(data, "amount"))
		if due := text(data, "dueDate", ""); due != "" {
			msg += " on " + due
		}
		return Content{Title: "Payment reminder", Message: msg + "."}
	case domain.TypeFriendRequest:
		return Content{
			Title:   "New friend request",
			Message: fmt.Sprintf("%s sent you a friend request.", text(data, "fromUserName", "Someone")),
		}
	case domain.TypeGroupInvite:
		return Content{
			Title: "Group invitation",
			Message: fmt.Sprintf("%s invited you to join %s.",
				text(data, "inviterName", "Someone"), text(data, "groupName", "a group")),
		}
	case domain.TypeSettlementReminder:
		return Content{
			Title: "Settlement reminder",
			Message: fmt.Sprintf("You owe %s %.2f. Settle up when you can.",
				text(data, "toUserName", "a friend"), amount(data, "amount")),
		}
	case domain.TypeRecurringExpense:
		return Content{
			Title: "Recurring expense recorded",
			Message: fmt.Sprintf("\"%s\" (%.2f) was added automatically.",
				text(data, "description", "A recurring expense"), amount(data, "amount")),
		}
	case domain.TypeDebtSettled:
		return Content{
			Title: "Debt settled",
			Message: fmt.Sprintf("%s settled %.2f with you.",
				text(data, "fromUserName", "Someone"), amount(data, "amount")),
		}
	default:
		return Content{Title: string(t)}
	}
}

// budgetRatio 已花费 / 预算上限，上限缺失或者不为正数时无法计算
func budgetRatio(data map[string]any) (float64, bool) {
	limit := amount(data, "limit")
	if limit <= 0 {
		return 0, false
	}
	return amount(data, "spent") / limit, true
}

// amount JSON 解码出来的数字是 float64，也兼容字符串形式的金额
func amount(data map[string]any, key string) float64 {
	v, err := cast.ToFloat64E(data[key])
	if err != nil {
		return 0
	}
	return v
}

func text(data map[string]any, key, fallback string) string {
	v, err := cast.ToStringE(data[key])
	if err != nil || v == "" {
		return fallback
	}
	return v
}
