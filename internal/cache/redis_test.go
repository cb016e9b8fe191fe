package cache

import (
	"context"
	"testing"
	"time"

	"github.com/eneso-link/internal/config"
)

func resetRedis() {
	redisClient = nil
	redisPrefix = ""
	redisEnabled = false
}

func TestDisabledCacheIsNoOp(t *testing.T) {
	t.Cleanup(resetRedis)

	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("InitRedis failed: %v", err)
	}
	if Enabled() {
		t.Fatal("expected cache disabled")
	}
	if Client() != nil {
		t.Fatal("expected nil client when disabled")
	}

	ctx := context.Background()
	var dest map[string]string
	found, err := GetJSON(ctx, "redirect:demo1", &dest)
	if err != nil || found {
		t.Fatalf("expected miss without error, got found=%v err=%v", found, err)
	}
	if err := SetJSON(ctx, "redirect:demo1", map[string]string{"url": "x"}, time.Minute); err != nil {
		t.Fatalf("SetJSON should be a no-op, got %v", err)
	}
	if err := Delete(ctx, "redirect:demo1"); err != nil {
		t.Fatalf("Delete should be a no-op, got %v", err)
	}
}

func TestInitRedisNilConfig(t *testing.T) {
	t.Cleanup(resetRedis)

	if err := InitRedis(nil); err != nil {
		t.Fatalf("InitRedis failed: %v", err)
	}
	if Enabled() {
		t.Fatal("expected cache disabled for nil config")
	}
}

func TestInitRedisDefaults(t *testing.T) {
	t.Cleanup(resetRedis)

	if err := InitRedis(&config.RedisConfig{Enabled: true}); err != nil {
		t.Fatalf("InitRedis failed: %v", err)
	}
	if !Enabled() {
		t.Fatal("expected cache enabled")
	}
	client := Client()
	if client == nil {
		t.Fatal("expected client")
	}
	if got := client.Options().Addr; got != "127.0.0.1:6379" {
		t.Fatalf("unexpected default addr: %s", got)
	}
	if got := buildKey("redirect:demo1"); got != "eneso:redirect:demo1" {
		t.Fatalf("unexpected default key: %s", got)
	}
}

func TestBuildKeyUsesConfiguredPrefix(t *testing.T) {
	t.Cleanup(resetRedis)

	cfg := &config.RedisConfig{Enabled: true, Host: "redis.internal", Port: 6380, Prefix: "links"}
	if err := InitRedis(cfg); err != nil {
		t.Fatalf("InitRedis failed: %v", err)
	}
	if got := Client().Options().Addr; got != "redis.internal:6380" {
		t.Fatalf("unexpected addr: %s", got)
	}
	if got := buildKey("redirect:demo1"); got != "links:redirect:demo1" {
		t.Fatalf("unexpected key: %s", got)
	}
}
