// Package mq 基于 Watermill 封装消息发布/订阅，承载 et.* 领域事件的投递.
// 后端通过工厂注册接入，当前编入 NATS（可选 JetStream）.
// 指标开启时，Publisher/Subscriber 会被 Prometheus 装饰器包裹.
package mq

import (
	"context"
	"fmt"
	"sync"

	watermill "github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
	nlog "github.com/ecotrackhq/ecotrack/pkg/log"
)

// Factory 定义创建 Publisher + Subscriber 的工厂函数.
type Factory func(ctx context.Context, cfg *configs.MQConfig, logger watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error)

var factories = map[configs.MQType]Factory{}

// RegisterFactory 注册指定 MQType 的工厂.
func RegisterFactory(t configs.MQType, f Factory) {
	factories[t] = f
}

// GetRegisteredMQTypes 返回所有已注册的 MQ 类型.
func GetRegisteredMQTypes() []configs.MQType {
	types := make([]configs.MQType, 0, len(factories))
	for t := range factories {
		types = append(types, t)
	}

	return types
}

// Client 封装 watermill Publisher 与 Subscriber.
type Client struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	router     *message.Router
	closeFunc  func() // 关闭 metrics 服务
}

// Publish 依次发布消息，任一失败即返回.
func (c *Client) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	if c == nil || c.publisher == nil {
		return fmt.Errorf("mq publisher not initialized")
	}

	for _, m := range msgs {
		if err := c.publisher.Publish(topic, m); err != nil {
			return err
		}
	}

	return nil
}

// Publisher 返回底层 Publisher，供 queue 包的事件封装使用.
func (c *Client) Publisher() message.Publisher {
	if c == nil {
		return nil
	}

	return c.publisher
}

// Subscribe 订阅主题，返回消息通道.
func (c *Client) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	if c == nil || c.subscriber == nil {
		return nil, fmt.Errorf("mq subscriber not initialized")
	}

	return c.subscriber.Subscribe(ctx, topic)
}

// Close 依次关闭 publisher、subscriber、router 与 metrics 服务，返回最后一个错误.
func (c *Client) Close() error {
	var err error

	if c.publisher != nil {
		if e := c.publisher.Close(); e != nil {
			err = e
		}
	}

	if c.subscriber != nil {
		if e := c.subscriber.Close(); e != nil {
			err = e
		}
	}

	if c.router != nil {
		if e := c.router.Close(); e != nil {
			err = e
		}
	}

	if c.closeFunc != nil {
		c.closeFunc()
	}

	return err
}

var (
	mqOnce sync.Once
	mqInst *Client
	mqErr  error
)

// New 返回进程级 MQ 客户端，首次调用时按配置初始化.
func New(ctx context.Context) (*Client, error) {
	mqOnce.Do(func() {
		mqInst, mqErr = connect(ctx)
	})

	return mqInst, mqErr
}

func connect(ctx context.Context) (*Client, error) {
	cfg := configs.GetConfig().MQ

	factory, ok := factories[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported mq type: %s", cfg.Type)
	}

	logger := &zerologAdapter{l: nlog.Logger()}

	pub, sub, err := factory(ctx, &cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init mq (%s): %w", cfg.Type, err)
	}

	client := &Client{publisher: pub, subscriber: sub}

	if configs.GetConfig().Metrics.Enabled {
		if err := client.enableMetrics(ctx, logger); err != nil {
			return nil, err
		}
	}

	nlog.Logger().Info().Str("type", string(cfg.Type)).Msg("MQ 客户端已就绪")

	return client, nil
}

// enableMetrics 用 Prometheus 装饰器包裹 Publisher/Subscriber，
// 并在独立端口暴露 watermill 指标.
func (c *Client) enableMetrics(ctx context.Context, logger watermill.LoggerAdapter) error {
	metricsCfg := configs.GetConfig().Metrics

	registry, closeMetricsServer := metrics.CreateRegistryAndServeHTTP(metricsCfg.Endpoint)
	c.closeFunc = closeMetricsServer

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return fmt.Errorf("create router: %w", err)
	}

	c.router = router

	go func() {
		if runErr := router.Run(ctx); runErr != nil {
			nlog.Logger().Error().Err(runErr).Msg("router run error")
		}
	}()

	builder := metrics.NewPrometheusMetricsBuilder(registry, "", "")
	builder.AddPrometheusRouterMetrics(router)

	if c.publisher, err = builder.DecoratePublisher(c.publisher); err != nil {
		return fmt.Errorf("decorate publisher with metrics: %w", err)
	}

	if c.subscriber, err = builder.DecorateSubscriber(c.subscriber); err != nil {
		return fmt.Errorf("decorate subscriber with metrics: %w", err)
	}

	nlog.Logger().Info().Str("endpoint", metricsCfg.Endpoint).Msg("MQ metrics enabled")

	return nil
}
