package config_test

import (
	"testing"
	"time"

	"dagsplott/internal/platform/config"
	"dagsplott/internal/platform/testkit"
)

func TestPrefix_Composes(t *testing.T) {
	t.Setenv("DAGSPLOTT_API_PORT", ":9000")

	cfg := config.New().Prefix("DAGSPLOTT_").Prefix("API_")
	if got := cfg.MayString("PORT", ":8050"); got != ":9000" {
		t.Fatalf("expected composed prefix lookup got %q", got)
	}
}

func TestMustString_PanicsWhenMissing(t *testing.T) {
	cfg := config.New().Prefix("TEST_MISSING_")
	testkit.MustPanic(t, func() { _ = cfg.MustString("NOPE") })
}

func TestMayString_Default(t *testing.T) {
	cfg := config.New().Prefix("TEST_DEF_")
	if got := cfg.MayString("PORT", ":8050"); got != ":8050" {
		t.Fatalf("expected default got %q", got)
	}
}

func TestMayInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("TEST_INT_N", "not-a-number")
	cfg := config.New().Prefix("TEST_INT_")
	if got := cfg.MayInt("N", 7); got != 7 {
		t.Fatalf("expected default on invalid int got %d", got)
	}
}

func TestMayDuration(t *testing.T) {
	t.Setenv("TEST_DUR_TTL", "90s")
	cfg := config.New().Prefix("TEST_DUR_")
	if got := cfg.MayDuration("TTL", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s got %v", got)
	}
	if got := cfg.MayDuration("MISSING", time.Minute); got != time.Minute {
		t.Fatalf("expected default got %v", got)
	}
}

func TestMayBool(t *testing.T) {
	t.Setenv("TEST_BOOL_ON", "true")
	cfg := config.New().Prefix("TEST_BOOL_")
	if !cfg.MayBool("ON", false) {
		t.Fatalf("expected true")
	}
	if cfg.MayBool("OFF", false) {
		t.Fatalf("expected default false")
	}
}
