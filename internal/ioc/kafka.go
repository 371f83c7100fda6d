package ioc

import (
	"gitee.com/flycash/expense-notification/internal/event/expense"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/econf"
)

func InitKafkaConsumer() *kafka.Consumer {
	type Config struct {
		Addr    string `yaml:"addr"`
		GroupID string `yaml:"groupId"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.Addr,
		"group.id":           cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": "false",
	})
	if err != nil {
		panic(err)
	}
	return consumer
}

func InitEventConsumer(handler expense.EventHandler) *expense.EventConsumer {
	if !econf.GetBool("kafka.enabled") {
		return nil
	}
	consumer, err := expense.NewEventConsumer(handler, InitKafkaConsumer())
	if err != nil {
		panic(err)
	}
	return consumer
}
