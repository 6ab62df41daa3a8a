package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type Config struct {
	Port           int
	AllowedOrigins string
	EngineDepth    int
	EngineDelay    time.Duration
	LogLevel       log.Level
}

// Load parses command line flags. Each flag defaults to an environment
// variable, then to a built-in value.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	port := fs.Int("port", envInt("PORT", 3000), "listen port")
	origins := fs.String("origins", envString("ALLOWED_ORIGINS", "http://localhost:5173"), "comma separated CORS origins")
	depth := fs.Int("depth", envInt("ENGINE_DEPTH", 2), "engine search depth in plies")
	delay := fs.Duration("delay", envDuration("ENGINE_DELAY", 500*time.Millisecond), "pause before an engine move is played")
	level := fs.String("log-level", envString("LOG_LEVEL", "info"), "trace, debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:           *port,
		AllowedOrigins: *origins,
		EngineDepth:    *depth,
		EngineDelay:    *delay,
	}
	var err error
	if cfg.LogLevel, err = ParseLevel(*level); err != nil {
		return Config{}, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.EngineDepth < 1 {
		return Config{}, fmt.Errorf("engine depth must be at least 1, got %d", cfg.EngineDepth)
	}
	if cfg.EngineDelay < 0 {
		return Config{}, fmt.Errorf("engine delay must not be negative, got %v", cfg.EngineDelay)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
