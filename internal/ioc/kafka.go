package ioc

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/econf"

	"hr-notification/internal/event/domainevent"
)

type kafkaConfig struct {
	BootstrapServers string `yaml:"bootstrapServers"`
	GroupID          string `yaml:"groupId"`
}

func loadKafkaConfig() kafkaConfig {
	var cfg kafkaConfig
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func InitKafkaProducer() *kafka.Producer {
	cfg := loadKafkaConfig()
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.BootstrapServers,
		"acks":              "all",
	})
	if err != nil {
		panic(err)
	}
	return producer
}

func InitKafkaConsumer() *kafka.Consumer {
	cfg := loadKafkaConfig()
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.BootstrapServers,
		"group.id":           cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		panic(err)
	}
	if err := consumer.SubscribeTopics([]string{domainevent.EventName}, nil); err != nil {
		panic(err)
	}
	return consumer
}
