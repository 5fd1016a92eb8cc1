package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/internal/cleanup"
	"github.com/lone-faerie/tempconv/log"
)

const defaultConfigFile = "tempconv.yaml"

// configPath returns the config file(s) to load, which is the first defined
// of $TEMPCONV_CONFIG_PATH, $XDG_CONFIG_HOME/tempconv.yaml, or
// $HOME/.config/tempconv.yaml.
func configPath() []string {
	if env, ok := os.LookupEnv("TEMPCONV_CONFIG_PATH"); ok && env != "" {
		return strings.Split(env, ",")
	}

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdg != "" {
		return []string{filepath.Join(xdg, defaultConfigFile)}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("Unable to find home directory", "err", err)
		return nil
	}

	return []string{filepath.Join(home, ".config", defaultConfigFile)}
}

func setLogHandler(cfg *config.Config) {
	var w io.Writer

	switch strings.ToLower(cfg.Log.Output) {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	case "discard":
		log.SetHandler(log.DiscardHandler)
		return
	default:
		f, err := os.OpenFile(cfg.Log.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			log.Error(
				"Unable to open log file, deferring to stderr",
				err,
			)
			w = os.Stderr
			break
		}

		w = f

		cleanup.Register(func() { f.Close() })
	}

	log.SetLogLevel(cfg.Log.Level)

	switch cfg.Log.Format {
	case "json":
		log.SetJSONHandler(w)
	default:
		log.SetTextHandler(w)
	}
}
