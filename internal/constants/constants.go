package constants

import "time"

const (
	AppName            = "resinabot"
	Version            = "v0.3.0"
	DefaultConfigPath  = "~/.config/resinabot/resinabot.db"
	DefaultKeyringUser = "gateway-token"

	// DateTimeFormat is the timestamp format persisted by the stores.
	DateTimeFormat = time.RFC3339
)

// Resin regeneration parameters. The cap and rate match the game's
// values (1 resin every 8 minutes, capped at 200); both can be
// overridden through serve configuration for private servers.
const (
	DefaultResinCap       = 200
	DefaultRegenPerMin    = 0.125
	DefaultPollInterval   = time.Minute
	DefaultListenAddr     = ":8080"
	DefaultWebhookTimeout = 10 * time.Second
)
