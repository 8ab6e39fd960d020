package config_test

import (
	"errors"
	"testing"
	"time"

	"xtreme/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != config.Default() {
		t.Fatalf("defaults differ:\nload    %+v\ndefault %+v", cfg, config.Default())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("XTREME_PORT", "9000")
	t.Setenv("XTREME_CART_DISCOUNT_THRESHOLD", "10000")
	t.Setenv("XTREME_CART_SHIPPING", "250")
	t.Setenv("XTREME_TOAST_DURATION", "3s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9000" || cfg.Toast != 3*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	tot := cfg.Cart.Totals()
	if tot.DiscountThreshold != 10000 || tot.Shipping != 250 || tot.DiscountAmount != 400 {
		t.Fatalf("bad totals config: %+v", tot)
	}
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("XTREME_CART_QUOTA", "lots")
	if _, err := config.Load(); err == nil {
		t.Fatal("want error for non-numeric quota")
	}
}

func TestLoad_RejectsNonFinitePricing(t *testing.T) {
	for _, v := range []string{"NaN", "Inf", "-Inf"} {
		t.Setenv("XTREME_CART_DISCOUNT_THRESHOLD", v)
		_, err := config.Load()
		if !errors.Is(err, config.ErrNotFinite) {
			t.Fatalf("%s: want ErrNotFinite, got %v", v, err)
		}
	}
}

func TestLoad_RejectsNegativeShipping(t *testing.T) {
	t.Setenv("XTREME_CART_SHIPPING", "-1")
	if _, err := config.Load(); !errors.Is(err, config.ErrNegativeFee) {
		t.Fatalf("want ErrNegativeFee, got %v", err)
	}
}

func TestLoad_QuotaWithinCookieLimit(t *testing.T) {
	for _, v := range []string{"0", "5000"} {
		t.Setenv("XTREME_CART_QUOTA", v)
		if _, err := config.Load(); !errors.Is(err, config.ErrCartQuota) {
			t.Fatalf("quota %s: want ErrCartQuota, got %v", v, err)
		}
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := config.Default().Cart.Validate(); err != nil {
		t.Fatal(err)
	}
}
