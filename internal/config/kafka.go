package config

import "github.com/segmentio/kafka-go"

// NewKafkaWriter returns an async writer so publishing never holds up a
// request.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{}, // Balancer for selecting partition
		AllowAutoTopicCreation: true,
		Async:                  true,
	}
}
