package configs

import (
	"github.com/spf13/viper"
)

// MQType 消息队列类型.
type MQType string

const (
	MQTypeNATS MQType = "nats"

	DefaultMQURL         = "nats://localhost:4222"
	DefaultMaxReconnects = 5                  // 默认最大重连次数
	DefaultReconnectWait = 5                  // 默认重连等待时间（秒）
	DefaultPingInterval  = 20                 // 默认ping间隔（秒）
	DefaultBufferSize    = 32768              // 默认重连缓冲区大小（32KB）
	DefaultMQClientID    = "ecotrack-app"     // 默认客户端ID
	DefaultStreamName    = "ECOTRACK"         // 默认 JetStream 流名
	DefaultSubjectPrefix = "et"               // 默认主题前缀
)

// MQConfig 消息队列配置. 摄入事件与审计巡检告警经由此队列发布，均为尽力而为.
type MQConfig struct {
	Type          MQType   `mapstructure:"type"           rule:"oneof=nats"`
	URL           string   `mapstructure:"url"`
	ClusterURLs   []string `mapstructure:"cluster_urls"`
	User          string   `mapstructure:"user"`
	Password      string   `mapstructure:"password"`
	JWT           string   `mapstructure:"jwt"`
	NKey          string   `mapstructure:"nkey"`
	ClientID      string   `mapstructure:"client_id"`
	MaxReconnects int      `mapstructure:"max_reconnects" rule:"min=0,max=100"`
	ReconnectWait int      `mapstructure:"reconnect_wait" rule:"min=1,max=300"`
	PingInterval  int      `mapstructure:"ping_interval"  rule:"min=1,max=300"`
	BufferSize    int      `mapstructure:"buffer_size"    rule:"min=1024,max=1048576"`

	// JetStream 相关
	JetStreamEnabled       bool   `mapstructure:"jetstream_enabled"`
	JetStreamAutoProvision bool   `mapstructure:"jetstream_auto_provision"`
	JetStreamTrackMsgID    bool   `mapstructure:"jetstream_track_msg_id"`
	JetStreamAckAsync      bool   `mapstructure:"jetstream_ack_async"`
	JetStreamDurablePrefix string `mapstructure:"jetstream_durable_prefix"`
	StreamName             string `mapstructure:"stream_name"`
	SubjectPrefix          string `mapstructure:"subject_prefix"`
}

func (c *MQConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mq.type", MQTypeNATS)
	v.SetDefault("mq.url", DefaultMQURL)
	v.SetDefault("mq.client_id", DefaultMQClientID)
	v.SetDefault("mq.max_reconnects", DefaultMaxReconnects)
	v.SetDefault("mq.reconnect_wait", DefaultReconnectWait)
	v.SetDefault("mq.ping_interval", DefaultPingInterval)
	v.SetDefault("mq.buffer_size", DefaultBufferSize)
	v.SetDefault("mq.jetstream_enabled", false)
	v.SetDefault("mq.jetstream_auto_provision", true)
	v.SetDefault("mq.stream_name", DefaultStreamName)
	v.SetDefault("mq.subject_prefix", DefaultSubjectPrefix)
}
