package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"master-student-chatbot/internal/models"
)

const SupportTicketChannel = "support:tickets"

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink publishes support tickets for any subscriber (admin dashboard, mail worker).
// Nothing is stored; tickets published while nobody listens are dropped.
type RedisSink struct {
	client  publisher
	channel string
}

func NewRedisSink(client *redis.Client) *RedisSink {
	return &RedisSink{client: client, channel: SupportTicketChannel}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Deliver(ctx context.Context, ticket models.SupportTicket, subject, body string) error {
	payload, err := json.Marshal(struct {
		models.SupportTicket
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}{ticket, subject, body})
	if err != nil {
		return fmt.Errorf("failed to encode ticket %s: %w", ticket.ID, err)
	}
	if err := s.client.Publish(ctx, s.channel, string(payload)).Err(); err != nil {
		return fmt.Errorf("failed to publish ticket %s: %w", ticket.ID, err)
	}
	return nil
}
