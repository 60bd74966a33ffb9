package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "API_PORT", "MONGO_DB", "REDIS_ADDR", "DEFAULT_ISS_RATE", "RATE_CACHE_TTL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8080" || cfg.MongoDB != "calculadorapj" {
		t.Fatalf("defaults: %#v", cfg)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("redis deve vir desligado, got %q", cfg.RedisAddr)
	}
	if cfg.DefaultISSRate != 2 || cfg.RateCacheTTL != 10*time.Minute || cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("defaults: %#v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_PORT", "9000")
	t.Setenv("DEFAULT_ISS_RATE", "3,5")
	t.Setenv("RATE_CACHE_TTL", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_DB", "x") // inválido -> default

	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("port=%q", cfg.Port)
	}
	if cfg.DefaultISSRate != 3.5 {
		t.Fatalf("iss=%v", cfg.DefaultISSRate)
	}
	if cfg.RateCacheTTL != 30*time.Second || cfg.LogLevel != slog.LevelDebug || cfg.RedisDB != 0 {
		t.Fatalf("overrides: %#v", cfg)
	}
}

func TestLoadWSConfig_Prefetch(t *testing.T) {
	t.Setenv("WS_PREFETCH", "10")
	if got := LoadWSConfig().ConsumerPrefetch; got != 10 {
		t.Fatalf("prefetch=%d", got)
	}
}

func TestLoadWSConfig_Origins(t *testing.T) {
	t.Setenv("WS_ALLOWED_ORIGINS", " http://localhost:3000, ,https://app.example.com")
	got := LoadWSConfig().AllowedOrigins
	if len(got) != 2 || got[0] != "http://localhost:3000" || got[1] != "https://app.example.com" {
		t.Fatalf("origins=%#v", got)
	}
	t.Setenv("WS_ALLOWED_ORIGINS", "")
	if got := LoadWSConfig().AllowedOrigins; got != nil {
		t.Fatalf("want nil, got %#v", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{"debug": slog.LevelDebug, " WARN ": slog.LevelWarn, "error": slog.LevelError, "": slog.LevelInfo, "x": slog.LevelInfo}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestInitLogger_JSONWithApp(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := initLogger(&buf, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("calculation_done", "currency", "USD")

	line := strings.TrimSpace(buf.String())
	if strings.Contains(line, "hidden") {
		t.Fatalf("debug should be filtered: %s", line)
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid json log: %v (%s)", err, line)
	}
	if m["app"] != "calculadora-pj" || m["msg"] != "calculation_done" || m["currency"] != "USD" {
		t.Fatalf("unexpected log: %v", m)
	}
	if ts, _ := m["time"].(string); !strings.HasSuffix(ts, "Z") {
		t.Fatalf("time not UTC: %v", m["time"])
	}
}
