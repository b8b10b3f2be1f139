// NATS 后端：按配置组装连接选项（重连、认证）与可选的 JetStream 持久化，
// 事件负载使用 JSON 编解码.
package mq

import (
	"context"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
)

const (
	natsDrainTimeout   = 30 * time.Second
	natsFlusherTimeout = 10 * time.Second
)

func init() {
	RegisterFactory(configs.MQTypeNATS, natsFactory)
}

// natsFactory 创建共享同一套连接选项的 Publisher 与 Subscriber.
func natsFactory(
	ctx context.Context,
	cfg *configs.MQConfig,
	logger watermill.LoggerAdapter,
) (message.Publisher, message.Subscriber, error) {
	opts := connectOptions(cfg)
	jsCfg := jetStreamConfig(cfg, logger)
	url := serverURL(cfg)
	marshaler := &nats.JSONMarshaler{}

	pub, err := nats.NewPublisher(nats.PublisherConfig{
		URL:         url,
		NatsOptions: opts,
		JetStream:   jsCfg,
		Marshaler:   marshaler,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	sub, err := nats.NewSubscriber(nats.SubscriberConfig{
		URL:         url,
		NatsOptions: opts,
		JetStream:   jsCfg,
		Unmarshaler: marshaler,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	return pub, sub, nil
}

// connectOptions 连接与重连选项，认证按 JWT > NKey > 用户名/密码 的优先级取一种.
func connectOptions(cfg *configs.MQConfig) []nc.Option {
	opts := []nc.Option{
		nc.Name(cfg.ClientID),
		nc.MaxReconnects(cfg.MaxReconnects),
		nc.ReconnectWait(time.Duration(cfg.ReconnectWait) * time.Second),
		nc.PingInterval(time.Duration(cfg.PingInterval) * time.Second),
		nc.ReconnectBufSize(cfg.BufferSize),
		nc.DrainTimeout(natsDrainTimeout),
		nc.FlusherTimeout(natsFlusherTimeout),
		nc.RetryOnFailedConnect(true),
	}

	switch {
	case cfg.JWT != "":
		opts = append(opts, nc.UserJWTAndSeed(cfg.JWT, cfg.NKey))
	case cfg.NKey != "":
		opts = append(opts, nc.Nkey(cfg.NKey, nil))
	case cfg.User != "":
		opts = append(opts, nc.UserInfo(cfg.User, cfg.Password))
	}

	return opts
}

// jetStreamConfig 组装 JetStream 配置，未启用时返回 Disabled.
func jetStreamConfig(cfg *configs.MQConfig, logger watermill.LoggerAdapter) nats.JetStreamConfig {
	if !cfg.JetStreamEnabled {
		return nats.JetStreamConfig{Disabled: true}
	}

	logger.Info("JetStream enabled", watermill.LogFields{
		"auto_provision": cfg.JetStreamAutoProvision,
		"track_msg_id":   cfg.JetStreamTrackMsgID,
		"ack_async":      cfg.JetStreamAckAsync,
		"durable_prefix": cfg.JetStreamDurablePrefix,
		"stream_name":    cfg.StreamName,
		"subject_prefix": cfg.SubjectPrefix,
	})

	return nats.JetStreamConfig{
		AutoProvision: cfg.JetStreamAutoProvision,
		TrackMsgId:    cfg.JetStreamTrackMsgID,
		AckAsync:      cfg.JetStreamAckAsync,
		DurablePrefix: cfg.JetStreamDurablePrefix,
	}
}

// serverURL 集群地址优先，逗号拼接供客户端轮询.
func serverURL(cfg *configs.MQConfig) string {
	if len(cfg.ClusterURLs) > 0 {
		return strings.Join(cfg.ClusterURLs, ",")
	}

	return cfg.URL
}
