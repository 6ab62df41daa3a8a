package config

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ALLOWED_ORIGINS", "ENGINE_DEPTH", "ENGINE_DELAY", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 3000 || cfg.EngineDepth != 2 || cfg.EngineDelay != 500*time.Millisecond || cfg.LogLevel != log.LevelInfo {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.Addr() != ":3000" {
		t.Fatalf("addr = %s", cfg.Addr())
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ENGINE_DEPTH", "4")
	t.Setenv("PORT", "8080")

	cfg, err := Load([]string{"-depth", "3", "-delay", "0s", "-log-level", "debug"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EngineDepth != 3 || cfg.Port != 8080 || cfg.EngineDelay != 0 || cfg.LogLevel != log.LevelDebug {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero depth", []string{"-depth", "0"}},
		{"port out of range", []string{"-port", "70000"}},
		{"negative delay", []string{"-delay", "-1s"}},
		{"unknown level", []string{"-log-level", "loud"}},
		{"unknown flag", []string{"-colour", "white"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.args); err == nil {
				t.Fatalf("Load(%v) succeeded", tt.args)
			}
		})
	}
}
