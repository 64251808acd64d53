package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.EvictionPolicy != PolicyNoEviction {
		t.Errorf("expected default policy noeviction, got %s", cfg.EvictionPolicy)
	}
	if cfg.EmbstrLimit != 44 {
		t.Errorf("expected default embstr limit 44, got %d", cfg.EmbstrLimit)
	}
	if cfg.DefaultSamples != 5 {
		t.Errorf("expected default samples 5, got %d", cfg.DefaultSamples)
	}
}

func TestEvictionPolicyClassification(t *testing.T) {
	cases := []struct {
		policy EvictionPolicy
		lfu    bool
	}{
		{PolicyNoEviction, false},
		{PolicyAllKeysLRU, false},
		{PolicyVolatileLRU, false},
		{PolicyAllKeysLFU, true},
		{PolicyVolatileLFU, true},
		{PolicyAllKeysRandom, false},
	}
	for _, c := range cases {
		if got := c.policy.IsLFU(); got != c.lfu {
			t.Errorf("%s.IsLFU() = %v, want %v", c.policy, got, c.lfu)
		}
		if got := c.policy.IsLRU(); got != !c.lfu {
			t.Errorf("%s.IsLRU() = %v, want %v", c.policy, got, !c.lfu)
		}
	}
}

func TestSetEvictionPolicyDoesNotRewriteHistory(t *testing.T) {
	original := Current().EvictionPolicy
	defer SetEvictionPolicy(original)

	SetEvictionPolicy(PolicyAllKeysLFU)
	if Current().EvictionPolicy != PolicyAllKeysLFU {
		t.Fatalf("expected policy to switch to allkeys-lfu, got %s", Current().EvictionPolicy)
	}
	SetEvictionPolicy(PolicyNoEviction)
	if Current().EvictionPolicy != PolicyNoEviction {
		t.Fatalf("expected policy to switch back to noeviction, got %s", Current().EvictionPolicy)
	}
}
