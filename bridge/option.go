package bridge

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/tempconv/log"
)

type Option func(*Bridge)

// WithClient uses c instead of a client created from the config.
func WithClient(c mqtt.Client) Option {
	return func(b *Bridge) {
		b.client = c
	}
}

// WithLogLevel routes the logging of the MQTT client package through the
// log package, at or above the given level.
func WithLogLevel(level log.Level) Option {
	return func(_ *Bridge) {
		mqtt.ERROR = mqtt.NOOPLogger{}
		mqtt.CRITICAL = mqtt.NOOPLogger{}
		mqtt.WARN = mqtt.NOOPLogger{}
		mqtt.DEBUG = mqtt.NOOPLogger{}
		if level <= log.LevelError {
			mqtt.ERROR = log.ErrorLogger()
			mqtt.CRITICAL = log.ErrorLogger()
		}
		if level <= log.LevelWarn {
			mqtt.WARN = log.WarnLogger()
		}
		if level <= log.LevelDebug {
			mqtt.DEBUG = log.DebugLogger()
		}
	}
}
