package module

import (
	"time"

	"dagsplott/internal/platform/config"
)

// Options holds configuration settings for the trends module
type Options struct {
	SessionTTL time.Duration
	SearchBase string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	tf := cfg.Prefix("TRENDS_")
	return Options{
		SessionTTL: tf.MayDuration("SESSION_TTL", time.Hour),
		SearchBase: tf.MayString("SEARCH_BASE", ""),
	}
}
