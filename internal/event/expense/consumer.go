package expense

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/expense-notification/internal/domain"
	"gitee.com/flycash/expense-notification/internal/errs"
	"gitee.com/flycash/expense-notification/internal/pkg/mqx"
	"gitee.com/flycash/expense-notification/internal/service/notification"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultReadTimeout   = time.Second
	defaultHandleTimeout = 30 * time.Second

	defaultBackoffInitial = 100 * time.Millisecond
	defaultBackoffMax     = 10 * time.Second
	backoffMaxRetries     = 10
)

// EventHandler 消费到的事件交给它处理
type EventHandler interface {
	HandleEvent(ctx context.Context, evt domain.NotificationEvent) ([]notification.RecipientResult, error)
}

type EventConsumer struct {
	handler  EventHandler
	consumer mqx.Consumer

	readTimeout   time.Duration
	handleTimeout time.Duration
	// 连续失败时按指数退避，成功消费一次之后重新计算
	backoffInitial time.Duration
	backoffMax     time.Duration
	logger         *elog.Component
}

func NewEventConsumer(handler EventHandler, consumer *kafka.Consumer) (*EventConsumer, error) {
	return NewEventConsumerWithTopic(handler, consumer, EventName)
}

func NewEventConsumerWithTopic(handler EventHandler, consumer *kafka.Consumer, topic string) (*EventConsumer, error) {
	err := consumer.SubscribeTopics([]string{topic}, nil)
	if err != nil {
		return nil, err
	}
	return newEventConsumer(handler, consumer), nil
}

func newEventConsumer(handler EventHandler, consumer mqx.Consumer) *EventConsumer {
	return &EventConsumer{
		handler:       handler,
		consumer:      consumer,
		readTimeout:    defaultReadTimeout,
		handleTimeout:  defaultHandleTimeout,
		backoffInitial: defaultBackoffInitial,
		backoffMax:     defaultBackoffMax,
		logger:         elog.DefaultLogger,
	}
}

// Start 在后台持续消费，直到 ctx 被取消
// 消费失败之后等待一段时间再继续，broker 不可用时不会空转
func (c *EventConsumer) Start(ctx context.Context) {
	go func() {
		backoff := c.newBackoff()
		for ctx.Err() == nil {
			er := c.Consume(ctx)
			if er == nil {
				backoff = c.newBackoff()
				continue
			}
			interval, ok := backoff.Next()
			if !ok {
				backoff = c.newBackoff()
				interval = c.backoffMax
			}
			c.logger.Error("消费通知事件失败",
				elog.FieldErr(er),
				elog.String("backoff", interval.String()))
			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
		}
	}()
}

func (c *EventConsumer) newBackoff() retry.Strategy {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(c.backoffInitial, c.backoffMax, backoffMaxRetries)
	if err == nil {
		return strategy
	}
	c.logger.Warn("退避参数非法，使用固定间隔", elog.FieldErr(err))
	fixed, _ := retry.NewFixedIntervalRetryStrategy(defaultBackoffMax, backoffMaxRetries)
	return fixed
}

// Consume 读取并处理一条消息
// 无法解析或者结构错误的事件重放也不会成功，记录日志后直接提交
func (c *EventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.ReadMessage(c.readTimeout)
	if err != nil {
		if mqx.IsTimeout(err) {
			return nil
		}
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt domain.NotificationEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		c.logger.Warn("解析消息失败，跳过",
			elog.FieldErr(err),
			elog.Any("partition", msg.TopicPartition.Partition),
			elog.Any("offset", msg.TopicPartition.Offset))
		return c.commit(msg)
	}

	hctx, cancel := context.WithTimeout(ctx, c.handleTimeout)
	results, err := c.handler.HandleEvent(hctx, evt)
	cancel()
	switch {
	case errors.Is(err, errs.ErrUnknownEventType), errors.Is(err, errs.ErrInvalidEvent):
		c.logger.Warn("通知事件格式错误，跳过",
			elog.FieldErr(err),
			elog.String("type", string(evt.Type)),
			elog.Any("offset", msg.TopicPartition.Offset))
		return c.commit(msg)
	case err != nil:
		return fmt.Errorf("处理通知事件失败: %w", err)
	}

	delivered := 0
	for _, r := range results {
		if r.Delivered {
			delivered++
		}
	}
	c.logger.Debug("通知事件处理完成",
		elog.String("type", string(evt.Type)),
		elog.Int("recipients", len(results)),
		elog.Int("delivered", delivered))
	return c.commit(msg)
}

func (c *EventConsumer) commit(msg *kafka.Message) error {
	if _, err := c.consumer.CommitMessage(msg); err != nil {
		c.logger.Warn("提交消息失败",
			elog.FieldErr(err),
			elog.Any("partition", msg.TopicPartition.Partition),
			elog.Any("offset", msg.TopicPartition.Offset))
		return err
	}
	return nil
}
