package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/rory/coerce"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Coercion settings.
	MaxDepth     int
	EncodeIndent bool

	// Manifest settings.
	ManifestDir   string
	MaxInlineSize int64

	// Cache settings.
	CacheEnabled bool
	CacheMaxSize int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from RORY_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDepth:      envInt("RORY_MAX_DEPTH", coerce.DefaultMaxDepth),
		EncodeIndent:  envBool("RORY_ENCODE_INDENT", true),
		ManifestDir:   os.Getenv("RORY_MANIFEST_DIR"),
		MaxInlineSize: envInt64("RORY_MAX_INLINE_SIZE", 10*1024*1024),
		CacheEnabled:  envBool("RORY_CACHE_ENABLED", true),
		CacheMaxSize:  envInt("RORY_CACHE_MAX_SIZE", 10),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int64 env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
