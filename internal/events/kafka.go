package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"linkpulse/internal/config"
	"linkpulse/internal/domain"
)

// ClickMessage is the payload published for every persisted click.
type ClickMessage struct {
	ID              string    `json:"id"`
	LinkID          string    `json:"link_id"`
	ClickedAt       time.Time `json:"clicked_at"`
	Browser         string    `json:"browser"`
	DeviceType      string    `json:"device_type"`
	OperatingSystem string    `json:"operating_system"`
	Bot             bool      `json:"is_bot"`
	Country         string    `json:"country"`
	CountryCode     string    `json:"country_code,omitempty"`
	City            string    `json:"city"`
	UTMSource       *string   `json:"utm_source,omitempty"`
	UTMMedium       *string   `json:"utm_medium,omitempty"`
	UTMCampaign     *string   `json:"utm_campaign,omitempty"`
}

func NewClickMessage(c *domain.ClickEvent) ClickMessage {
	return ClickMessage{
		ID:              c.ID.String(),
		LinkID:          c.LinkID.String(),
		ClickedAt:       c.ClickedAt,
		Browser:         c.Browser,
		DeviceType:      c.DeviceType,
		OperatingSystem: c.OperatingSystem,
		Bot:             c.Bot,
		Country:         c.Country,
		CountryCode:     c.CountryCode,
		City:            c.City,
		UTMSource:       c.UTMSource,
		UTMMedium:       c.UTMMedium,
		UTMCampaign:     c.UTMCampaign,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

func NewKafkaPublisher(cfg *config.EventsConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
		timeout: cfg.Timeout,
	}
}

// Publish writes one message keyed by link id, so clicks for a link stay in
// order within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, c *domain.ClickEvent) error {
	value, err := json.Marshal(NewClickMessage(c))
	if err != nil {
		return fmt.Errorf("failed to encode click event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(c.LinkID.String()),
		Value: value,
		Time:  c.ClickedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to publish click event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
