// Package events publishes catalog domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// CountryDetected is emitted when geolocation assigns a country to a session.
type CountryDetected struct {
	SessionID  string    `json:"session_id"`
	Country    string    `json:"country"`
	IP         string    `json:"ip"`
	DetectedAt time.Time `json:"detected_at"`
}

// Publisher sends domain events.
type Publisher interface {
	PublishCountryDetected(ctx context.Context, evt CountryDetected) error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher writes events as JSON messages keyed
// "country.detected.<sessionID>".
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) PublishCountryDetected(ctx context.Context, evt CountryDetected) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal country detected event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte("country.detected." + evt.SessionID),
		Value: value,
		Time:  evt.DetectedAt,
	})
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishCountryDetected(context.Context, CountryDetected) error { return nil }
