// Package mock provides an in-memory [mqtt.Client] for tests.
package mock

import (
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Message is a message published through a [Client].
type Message struct {
	Topic    string
	QoS      byte
	Retained bool
	Payload  []byte
}

// Client records every published message instead of sending it to a broker.
type Client struct {
	// ConnectErr, if set, is returned by the token of Connect.
	ConnectErr error
	// PublishErr, if set, is returned by the token of Publish.
	PublishErr error

	opts      *mqtt.ClientOptions
	connected bool
	messages  []Message
	mu        sync.Mutex
}

// NewClient returns a disconnected Client. o may be nil.
func NewClient(o *mqtt.ClientOptions) *Client {
	if o == nil {
		o = mqtt.NewClientOptions()
	}
	return &Client{opts: o}
}

// Messages returns a copy of the messages published so far.
func (c *Client) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Client) IsConnectionOpen() bool {
	return c.IsConnected()
}

func (c *Client) Connect() mqtt.Token {
	c.mu.Lock()
	if err := c.ConnectErr; err != nil {
		c.mu.Unlock()
		return newToken(err)
	}
	c.connected = true
	c.mu.Unlock()
	if c.opts.OnConnect != nil {
		c.opts.OnConnect(c)
	}
	return newToken(nil)
}

func (c *Client) Disconnect(_ uint) {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
}

func (c *Client) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.PublishErr != nil {
		return newToken(c.PublishErr)
	}
	var p []byte
	switch v := payload.(type) {
	case []byte:
		p = append(p, v...)
	case string:
		p = []byte(v)
	}
	c.messages = append(c.messages, Message{topic, qos, retained, p})
	return newToken(nil)
}

func (c *Client) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	return newToken(nil)
}

func (c *Client) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	return newToken(nil)
}

func (c *Client) Unsubscribe(topics ...string) mqtt.Token {
	return newToken(nil)
}

func (c *Client) AddRoute(topic string, callback mqtt.MessageHandler) {}

func (c *Client) OptionsReader() mqtt.ClientOptionsReader {
	return mqtt.NewOptionsReader(c.opts)
}

// token is an already completed [mqtt.Token].
type token struct {
	err  error
	done chan struct{}
}

func newToken(err error) *token {
	t := &token{err: err, done: make(chan struct{})}
	close(t.done)
	return t
}

func (t *token) Wait() bool                       { return true }
func (t *token) WaitTimeout(_ time.Duration) bool { return true }
func (t *token) Done() <-chan struct{}            { return t.done }
func (t *token) Error() error                     { return t.err }
