package auth

import (
	"testing"
	"time"

	"github.com/threadline/storefront-backend/pkg/config"
)

func testJWTConfig() config.AdminJWTConfig {
	return config.AdminJWTConfig{
		Secret:            "test-secret",
		Issuer:            "threadline",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseAdminToken(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	raw, err := MintAdminToken(cfg, time.Now(), "ops@threadline")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAdminToken(cfg, raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	if claims.Subject != "ops@threadline" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
}

func TestParseAdminTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	raw, err := MintAdminToken(cfg, time.Now().Add(-time.Hour), "ops@threadline")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAdminToken(cfg, raw); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestParseAdminTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := MintAdminToken(testJWTConfig(), time.Now(), "ops@threadline")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := testJWTConfig()
	other.Secret = "different"
	if _, err := ParseAdminToken(other, raw); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestMintAdminTokenValidation(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	cfg.Secret = ""
	if _, err := MintAdminToken(cfg, time.Now(), "ops"); err == nil {
		t.Fatal("expected error for missing secret")
	}

	cfg = testJWTConfig()
	if _, err := MintAdminToken(cfg, time.Now(), "  "); err == nil {
		t.Fatal("expected error for blank subject")
	}
}
