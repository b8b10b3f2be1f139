// Package queue 定义废弃物领域事件的统一信封并封装 watermill 消息构造，
// 用于向下游（报表、积分、告警）广播 et.* 主题事件.
//
// 信封 JSON 结构
//
//	{
//	  "header": {
//	    "topic": "et.waste.recorded",
//	    "trace_id": "optional-trace-id",
//	    "producer": "ecotrack",
//	    "occurred_at": "2025-01-02T03:04:05.123456Z",
//	    "version": "v1"
//	  },
//	  "payload": { ... 取决于具体主题 ... }
//	}
//
// occurred_at 为 UTC RFC3339；version 便于负载演进，消费者应忽略未知字段；
// header.topic 与中间件 Subject 冗余，为的是消息转储后仍可定位来源.
// 主题常量见 topics.go，负载结构体见 payloads.go，编解码使用 bytedance/sonic.
package queue

import (
	"time"

	watermill "github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bytedance/sonic"
)

const (
	PayloadVersionV1 string = "v1"
)

// HeaderOption 修改事件头的可选项.
type HeaderOption func(*EventHeader)

// WithTraceID 设置 TraceID.
func WithTraceID(id string) HeaderOption { return func(h *EventHeader) { h.TraceID = id } }

// WithProducer 设置 Producer.
func WithProducer(p string) HeaderOption { return func(h *EventHeader) { h.Producer = p } }

// NewEventHeader 创建事件头，OccurredAt 取当前 UTC 时间.
func NewEventHeader(topic string, opts ...HeaderOption) EventHeader {
	hdr := EventHeader{
		Topic:      topic,
		OccurredAt: time.Now().UTC(),
		Version:    PayloadVersionV1,
	}
	for _, opt := range opts {
		opt(&hdr)
	}

	return hdr
}

// Encode 将信封序列化为 JSON.
func Encode[T any](msg Message[T]) ([]byte, error) { return sonic.Marshal(msg) }

// Decode 从 JSON 反序列化信封.
func Decode[T any](b []byte) (Message[T], error) {
	var m Message[T]

	err := sonic.Unmarshal(b, &m)

	return m, err
}

// NewWatermillMessage 构造 watermill 消息：信封进 Payload，头部字段同步进 Metadata，
// 订阅方无需解码负载即可按元数据路由或过滤.
func NewWatermillMessage[T any](topic string, payload T, opts ...HeaderOption) (*message.Message, error) {
	header := NewEventHeader(topic, opts...)

	data, err := Encode(Message[T]{Header: header, Payload: payload})
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)

	meta := map[string]string{
		"topic":       topic,
		"trace_id":    header.TraceID,
		"producer":    header.Producer,
		"occurred_at": header.OccurredAt.Format(time.RFC3339Nano),
		"version":     header.Version,
	}
	for k, v := range meta {
		if v != "" {
			msg.Metadata.Set(k, v)
		}
	}

	return msg, nil
}

// ParseWatermillMessage 从 watermill 消息解出强类型信封.
func ParseWatermillMessage[T any](msg *message.Message) (Message[T], error) {
	return Decode[T](msg.Payload)
}
