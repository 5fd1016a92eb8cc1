// Package tempconv converts temperatures given as command-line tokens such
// as "32FC" (32 degrees Fahrenheit to Celsius).
//
// Tokens that cannot be parsed are reported as soon as they are seen:
//
//	ParseError: 10CC, "scale unknown"
//
// Once every token has been read, each successful conversion is printed in
// input order:
//
//	32F => 0C
//
// Conversions may additionally be published to an MQTT broker, see the
// bridge package. Configuration is loaded from YAML files, by default the
// first defined value of $TEMPCONV_CONFIG_PATH, $XDG_CONFIG_HOME/tempconv.yaml,
// or $HOME/.config/tempconv.yaml.
package tempconv

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/log"
	"github.com/lone-faerie/tempconv/temperature"
)

// Sink receives every successful conversion after it has been printed.
type Sink interface {
	Publish(ctx context.Context, t temperature.Temperature) error
}

// Converter parses tokens and writes the results.
type Converter struct {
	w           io.Writer
	quoteErrors bool
	sink        Sink
}

// New returns a Converter writing to w according to cfg.
func New(cfg *config.Config, w io.Writer) *Converter {
	return &Converter{
		w:           w,
		quoteErrors: cfg.Output.QuoteErrors,
	}
}

// WithSink sets the sink that successful conversions are published to.
func (c *Converter) WithSink(s Sink) *Converter {
	c.sink = s
	return c
}

// Run parses each token in order. A token that fails to parse is reported
// immediately; the successes are written once every token has been parsed,
// in the order they were given, and are then published to the sink.
//
// Parse failures are not errors. The returned error is only non-nil if
// writing to the output fails.
func (c *Converter) Run(ctx context.Context, tokens []string) ([]temperature.Temperature, error) {
	var (
		bw    = bufio.NewWriter(c.w)
		temps = make([]temperature.Temperature, 0, len(tokens))
	)

	for _, tok := range tokens {
		t, err := temperature.Parse(tok)
		if err != nil {
			log.Debug("Parse failed", "token", tok, "err", err)
			c.writeError(bw, tok, err)
			// Errors are flushed as they occur.
			if err := bw.Flush(); err != nil {
				return temps, err
			}
			continue
		}
		temps = append(temps, t)
	}

	for _, t := range temps {
		bw.WriteString(t.String())
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return temps, err
	}

	if c.sink != nil {
		for _, t := range temps {
			if err := c.sink.Publish(ctx, t); err != nil {
				log.Error("Unable to publish conversion", err,
					"conversion", t.String(),
					"from", t.Scale().Name(),
					"to", t.ConvertTo().Name(),
				)
			}
		}
	}

	return temps, nil
}

func (c *Converter) writeError(w *bufio.Writer, token string, err error) {
	w.WriteString("ParseError: ")
	w.WriteString(token)
	w.WriteString(", ")
	if c.quoteErrors {
		w.WriteString(strconv.Quote(err.Error()))
	} else {
		w.WriteString(err.Error())
	}
	w.WriteByte('\n')
}
