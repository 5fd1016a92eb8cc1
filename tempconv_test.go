package tempconv

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lone-faerie/tempconv/bridge"
	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/log"
	"github.com/lone-faerie/tempconv/mock"
	"github.com/lone-faerie/tempconv/temperature"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	c := New(config.Default(), &buf)

	temps, err := c.Run(context.Background(), []string{"32FC", "10CC", "212fc", "", "abFC", "-40CF", "5", "X"})
	require.NoError(t, err)
	assert.Len(t, temps, 3)

	want := `ParseError: 10CC, "scale unknown"
ParseError: , "string is empty"
ParseError: abFC, "not a numeric value"
ParseError: 5, "scale unknown"
ParseError: X, "not a numeric value"
32F => 0C
212F => 100C
-40C => -40F
`
	assert.Equal(t, want, buf.String())
}

func TestRunUnquoted(t *testing.T) {
	cfg := config.Default()
	cfg.Output.QuoteErrors = false

	var buf bytes.Buffer
	_, err := New(cfg, &buf).Run(context.Background(), []string{"10XY", "0CF"})
	require.NoError(t, err)
	assert.Equal(t, "ParseError: 10XY, scale unknown\n0C => 32F\n", buf.String())
}

func TestRunOriginalToken(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(config.Default(), &buf).Run(context.Background(), []string{" 1.2.3cf "})
	require.NoError(t, err)
	assert.Equal(t, "ParseError:  1.2.3cf , \"not a numeric value\"\n", buf.String())
}

// recordingWriter keeps each call to Write separately.
type recordingWriter struct {
	writes []string
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func TestRunFlushesErrorsImmediately(t *testing.T) {
	w := &recordingWriter{}
	_, err := New(config.Default(), w).Run(context.Background(), []string{"1CF", "FOO", "2CF", "BAR"})
	require.NoError(t, err)

	require.Len(t, w.writes, 3)
	assert.Equal(t, "ParseError: FOO, \"scale unknown\"\n", w.writes[0])
	assert.Equal(t, "ParseError: BAR, \"scale unknown\"\n", w.writes[1])
	assert.Equal(t, "1C => 33.8F\n2C => 35.6F\n", w.writes[2])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRunWriteError(t *testing.T) {
	_, err := New(config.Default(), failingWriter{}).Run(context.Background(), []string{"32FC"})
	assert.EqualError(t, err, "closed pipe")

	_, err = New(config.Default(), failingWriter{}).Run(context.Background(), []string{"bad"})
	assert.EqualError(t, err, "closed pipe")
}

func TestRunEmpty(t *testing.T) {
	var buf bytes.Buffer
	temps, err := New(config.Default(), &buf).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, temps)
	assert.Empty(t, buf.String())
}

func TestRunSink(t *testing.T) {
	cfg := config.Default()
	client := mock.NewClient(nil)
	b := bridge.New(&cfg.MQTT, bridge.WithClient(client))
	require.NoError(t, b.Connect(context.Background()))
	defer b.Disconnect()

	var buf bytes.Buffer
	_, err := New(cfg, &buf).WithSink(b).Run(context.Background(), []string{"36CK", "nope", "32CF"})
	require.NoError(t, err)

	msgs := client.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "tempconv/C/K", msgs[0].Topic)
	assert.Equal(t, "tempconv/C/F", msgs[1].Topic)
}

type errSink struct{ calls int }

func (s *errSink) Publish(context.Context, temperature.Temperature) error {
	s.calls++
	return errors.New("unavailable")
}

func TestRunSinkError(t *testing.T) {
	var (
		buf    bytes.Buffer
		logBuf bytes.Buffer
		sink   = &errSink{}
	)
	log.SetTextHandler(&logBuf)
	t.Cleanup(func() { log.SetTextHandler(os.Stderr) })

	temps, err := New(config.Default(), &buf).WithSink(sink).Run(context.Background(), []string{"32FC", "0KC"})
	require.NoError(t, err)
	assert.Len(t, temps, 2)
	assert.Equal(t, 2, sink.calls)
	assert.Equal(t, "32F => 0C\n0K => -273.15C\n", buf.String())

	logs := logBuf.String()
	assert.Contains(t, logs, "cause=unavailable")
	assert.Contains(t, logs, "from=Fahrenheit to=Celsius")
	assert.Contains(t, logs, "from=Kelvin to=Celsius")
}
