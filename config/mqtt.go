package config

import (
	"crypto/tls"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/tempconv/log"
)

// MQTTConfig is the configuration for publishing conversions to an MQTT
// broker. Publishing is disabled when Broker is empty.
//
// See [mqtt.ClientOptions]
type MQTTConfig struct {
	// Broker is the URI of the broker. The format should be scheme://host:port
	// where "scheme" is one of "tcp", "ssl", or "ws".
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id,omitempty"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// TopicPrefix is the first level of every topic. Conversions are
	// published to <prefix>/<source>/<target>, e.g. "tempconv/F/C".
	TopicPrefix string `yaml:"topic_prefix"`
	// QoS is the Quality of Service of published conversions (0, 1 or 2).
	QoS      byte `yaml:"qos"`
	Retained bool `yaml:"retained"`
	// KeepAlive is the duration that the client should wait before pinging the broker.
	KeepAlive time.Duration `yaml:"keep_alive,omitempty"`
	// ConnectTimeout bounds how long connecting to the broker may take.
	// A duration of 0 means the client will never time out.
	ConnectTimeout time.Duration `yaml:"connect_timeout,omitempty"`
	WriteTimeout   time.Duration `yaml:"write_timeout,omitempty"`
	// CertFile and KeyFile are the paths to the PEM-encoded TLS certificate
	// and private key. TLS is only used when both are given.
	CertFile string `yaml:"cert_file,omitempty"`
	KeyFile  string `yaml:"key_file,omitempty"`
	// LogLevel is the log level to provide to the backing MQTT client package.
	// See [mqtt.Logger]
	LogLevel log.Level `yaml:"log_level"`

	tlsCert *tls.Certificate
}

var DefaultMQTT = MQTTConfig{
	Broker:         "$TEMPCONV_BROKER_ADDRESS",
	ClientID:       "tempconv",
	Username:       "$TEMPCONV_BROKER_USERNAME",
	Password:       "$TEMPCONV_BROKER_PASSWORD",
	TopicPrefix:    "tempconv",
	ConnectTimeout: 5 * time.Second,
	WriteTimeout:   5 * time.Second,
	LogLevel:       log.LevelDisabled,
}

// Enabled reports whether a broker has been configured.
func (cfg *MQTTConfig) Enabled() bool {
	return cfg.Broker != ""
}

// ClientOptions returns cfg formatted as [mqtt.ClientOptions] to provide to
// the backing MQTT client when calling [mqtt.NewClient].
func (cfg *MQTTConfig) ClientOptions() *mqtt.ClientOptions {
	o := mqtt.NewClientOptions()
	o.AddBroker(cfg.Broker)
	o.SetClientID(cfg.ClientID)
	o.SetUsername(cfg.Username).SetPassword(cfg.Password)
	o.SetAutoReconnect(false)

	if cfg.KeepAlive > 0 {
		o.SetKeepAlive(cfg.KeepAlive)
	}

	if cfg.ConnectTimeout > 0 {
		o.SetConnectTimeout(cfg.ConnectTimeout)
	}

	if cfg.WriteTimeout > 0 {
		o.SetWriteTimeout(cfg.WriteTimeout)
	}

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		o.SetTLSConfig(&tls.Config{
			GetClientCertificate: cfg.getCertificate,
		})
	}

	return o
}

func (cfg *MQTTConfig) getCertificate(_ *tls.CertificateRequestInfo) (*tls.Certificate, error) {
	if cfg.tlsCert == nil {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, err
		}

		cfg.tlsCert = &cert
	}

	return cfg.tlsCert, nil
}
