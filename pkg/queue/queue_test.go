package queue_test

import (
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ecotrackhq/ecotrack/pkg/queue"
)

// capturePublisher 记录发布的消息，供断言.
type capturePublisher struct {
	topic string
	msgs  []*message.Message
}

func (p *capturePublisher) Publish(topic string, msgs ...*message.Message) error {
	p.topic = topic
	p.msgs = append(p.msgs, msgs...)

	return nil
}

func (p *capturePublisher) Close() error { return nil }

func TestNewWatermillMessageMetadata(t *testing.T) {
	payload := queue.WasteRecordedPayload{
		Record: queue.WasteRef{ID: "w-1", UserID: "alice", Type: "recyclable", Weight: 2.5},
		Source: "api",
	}

	msg, err := queue.NewWatermillMessage(queue.TopicWasteRecorded, payload,
		queue.WithTraceID("trace-123"), queue.WithProducer("ecotrack"))
	if err != nil {
		t.Fatalf("build message: %v", err)
	}

	if msg.UUID == "" {
		t.Error("expected non-empty message UUID")
	}

	if got := msg.Metadata.Get("topic"); got != queue.TopicWasteRecorded {
		t.Errorf("metadata topic = %q, want %q", got, queue.TopicWasteRecorded)
	}

	if got := msg.Metadata.Get("trace_id"); got != "trace-123" {
		t.Errorf("metadata trace_id = %q, want trace-123", got)
	}

	if got := msg.Metadata.Get("producer"); got != "ecotrack" {
		t.Errorf("metadata producer = %q, want ecotrack", got)
	}

	if got := msg.Metadata.Get("version"); got != queue.PayloadVersionV1 {
		t.Errorf("metadata version = %q, want %q", got, queue.PayloadVersionV1)
	}

	occurred := msg.Metadata.Get("occurred_at")
	if _, err := time.Parse(time.RFC3339Nano, occurred); err != nil {
		t.Errorf("metadata occurred_at %q is not RFC3339Nano: %v", occurred, err)
	}
}

func TestPublishAndParseWasteRecorded(t *testing.T) {
	pub := &capturePublisher{}

	payload := queue.WasteRecordedPayload{
		Record: queue.WasteRef{ID: "w-9", UserID: "bob", Type: "non-recyclable", Weight: 1.2, Location: "pier"},
		Source: "api",
	}

	if err := queue.PublishWasteRecorded(pub, payload, queue.WithProducer("ecotrack")); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if pub.topic != queue.TopicWasteRecorded {
		t.Fatalf("published topic = %q, want %q", pub.topic, queue.TopicWasteRecorded)
	}

	if len(pub.msgs) != 1 {
		t.Fatalf("published %d messages, want 1", len(pub.msgs))
	}

	env, err := queue.ParseWasteRecorded(pub.msgs[0])
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if env.Header.Topic != queue.TopicWasteRecorded {
		t.Errorf("header topic = %q, want %q", env.Header.Topic, queue.TopicWasteRecorded)
	}

	if env.Header.Producer != "ecotrack" {
		t.Errorf("header producer = %q, want ecotrack", env.Header.Producer)
	}

	if env.Header.OccurredAt.Location() != time.UTC {
		t.Errorf("occurred_at not UTC: %v", env.Header.OccurredAt)
	}

	if env.Payload.Record != payload.Record {
		t.Errorf("payload record = %+v, want %+v", env.Payload.Record, payload.Record)
	}
}

func TestParseAuditMissing(t *testing.T) {
	checked := time.Date(2025, 3, 4, 2, 30, 0, 0, time.UTC)
	payload := queue.AuditMissingPayload{
		Records: []queue.WasteRef{
			{ID: "w-1", UserID: "alice", Type: "recyclable", Weight: 3},
			{ID: "w-2", UserID: "bob", Type: "non-recyclable", Weight: 0.5},
		},
		CheckedAt: checked,
	}

	pub := &capturePublisher{}
	if err := queue.PublishAuditMissing(pub, payload); err != nil {
		t.Fatalf("publish: %v", err)
	}

	env, err := queue.ParseAuditMissing(pub.msgs[0])
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(env.Payload.Records) != 2 {
		t.Fatalf("parsed %d records, want 2", len(env.Payload.Records))
	}

	if !env.Payload.CheckedAt.Equal(checked) {
		t.Errorf("checked_at = %v, want %v", env.Payload.CheckedAt, checked)
	}

	if env.Payload.Records[1].ID != "w-2" {
		t.Errorf("second record id = %q, want w-2", env.Payload.Records[1].ID)
	}
}
