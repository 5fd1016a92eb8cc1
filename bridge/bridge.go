// Package bridge publishes conversions to an MQTT broker.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/log"
	"github.com/lone-faerie/tempconv/temperature"
)

var ErrNotConnected = errors.New("bridge: not connected")

// Bridge is the mqtt client that publishes conversions to the mqtt broker.
type Bridge struct {
	client mqtt.Client

	topicPrefix string
	qos         byte
	retained    bool

	mu sync.Mutex
}

// New returns a new Bridge with the given config and options. A client is
// created from the config unless one is given with [WithClient]. The bridge
// must have [Bridge.Connect] called on it before it may be used.
func New(cfg *config.MQTTConfig, opts ...Option) *Bridge {
	b := &Bridge{
		topicPrefix: cfg.TopicPrefix,
		qos:         cfg.QoS,
		retained:    cfg.Retained,
	}

	WithLogLevel(cfg.LogLevel)(b)

	for _, opt := range opts {
		opt(b)
	}

	if b.client == nil {
		b.client = mqtt.NewClient(cfg.ClientOptions())
	}

	b.topicPrefix = strings.TrimSuffix(b.topicPrefix, "/")
	if b.topicPrefix == "" {
		b.topicPrefix = config.DefaultMQTT.TopicPrefix
	}

	return b
}

func waitToken(ctx context.Context, t mqtt.Token) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.Done():
	}
	return t.Error()
}

// Connect will create a connection to the message broker with the provided context.
func (b *Bridge) Connect(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.client.IsConnected() {
		return nil
	}
	log.Debug("Connecting to broker")
	return waitToken(ctx, b.client.Connect())
}

// Topic returns the topic t is published to.
func (b *Bridge) Topic(t temperature.Temperature) string {
	return b.topicPrefix + "/" + t.Scale().String() + "/" + t.ConvertTo().String()
}

// Publish publishes t as a JSON payload to [Bridge.Topic] and waits for the
// publish to complete.
func (b *Bridge) Publish(ctx context.Context, t temperature.Temperature) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.client.IsConnectionOpen() {
		return ErrNotConnected
	}

	topic := b.Topic(t)
	log.Debug("Publishing", "topic", topic, "payload", string(data))
	return waitToken(ctx, b.client.Publish(topic, b.qos, b.retained, data))
}

// Disconnect will end the connection with the broker.
func (b *Bridge) Disconnect() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.client.IsConnected() {
		return
	}
	b.client.Disconnect(250)
	log.Debug("Disconnected")
}
