package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/tempconv"
	"github.com/lone-faerie/tempconv/bridge"
	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/internal/build"
	"github.com/lone-faerie/tempconv/internal/cleanup"
	"github.com/lone-faerie/tempconv/log"
)

const usageExample = "32FC 45FK 36CK 32CF"

var errNoTokens = errors.New("no temperatures given")

// ExitError is an error that should cause the program to exit with the given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewCmdRoot returns the [cobra.Command] that converts each of its arguments.
//
// Flag parsing is disabled so that negative temperatures such as -40CF are
// read as arguments.
//
// Usage:
//
//	tempconv <temperature>...
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tempconv <temperature>...",
		Short: "Convert temperatures between Celsius, Fahrenheit and Kelvin",
		Long: `Convert temperatures between Celsius, Fahrenheit and Kelvin.

Each argument is a number followed by the source and target scale codes,
where the codes are C (Celsius), F (Fahrenheit) and K (Kelvin), ignoring case.
Arguments that cannot be parsed are reported immediately, the conversions are
printed once every argument has been read, in the order they were given.

Configuration is loaded from the first defined value of $TEMPCONV_CONFIG_PATH,
$XDG_CONFIG_HOME/tempconv.yaml, or $HOME/.config/tempconv.yaml. In the case of
$TEMPCONV_CONFIG_PATH, the value may be a comma-separated list of paths.`,
		Example: "  tempconv " + usageExample + "\n  tempconv -40cf 300kc",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Usage exemple:", programName(), usageExample)
				return &ExitError{errNoTokens, 1}
			}
			return nil
		},
		RunE: runConvert,

		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	return cmd
}

// Execute runs the root command with the process arguments and runs any
// registered cleanup before returning.
func Execute() error {
	defer cleanup.Run()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return NewCmdRoot().ExecuteContext(ctx)
}

func buildAttrs() []any {
	return []any{
		"package", build.Package(),
		"version", build.Version(),
		"build_time", build.BuildTime(),
	}
}

func programName() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	return filepath.Base(exe)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath()...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setLogHandler(cfg)
	log.Debug("Starting", append(buildAttrs(), "tokens", len(args))...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c := tempconv.New(cfg, cmd.OutOrStdout())
	if cfg.MQTT.Enabled() {
		if b, err := connectBridge(ctx, &cfg.MQTT); err != nil {
			log.Error("Not connected, conversions will not be published", err, "broker", cfg.MQTT.Broker)
		} else {
			c.WithSink(b)
		}
	}

	_, err = c.Run(ctx, args)
	return err
}

func connectBridge(ctx context.Context, cfg *config.MQTTConfig, opts ...bridge.Option) (*bridge.Bridge, error) {
	b := bridge.New(cfg, opts...)
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := b.Connect(ctx); err != nil {
		return nil, err
	}
	cleanup.Register(b.Disconnect)
	return b, nil
}
