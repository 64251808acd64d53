package object

import (
	"testing"

	"valuecore/config"
)

func TestIdleTimeUnderLFUIsAnError(t *testing.T) {
	orig := config.Current().EvictionPolicy
	defer config.SetEvictionPolicy(orig)

	config.SetEvictionPolicy(config.PolicyAllKeysLFU)
	v := MakeRaw([]byte("x"))
	if _, err := IdleTime(v); err != ErrIdleTimeUnderLFU {
		t.Errorf("expected ErrIdleTimeUnderLFU, got %v", err)
	}
}

func TestFreqUnderLRUIsAnError(t *testing.T) {
	orig := config.Current().EvictionPolicy
	defer config.SetEvictionPolicy(orig)

	config.SetEvictionPolicy(config.PolicyAllKeysLRU)
	v := MakeRaw([]byte("x"))
	if _, err := Freq(v); err != ErrFreqUnderLRU {
		t.Errorf("expected ErrFreqUnderLRU, got %v", err)
	}
}

func TestFreqStartsAtLFUInitUnderLFU(t *testing.T) {
	orig := config.Current().EvictionPolicy
	defer config.SetEvictionPolicy(orig)

	config.SetEvictionPolicy(config.PolicyAllKeysLFU)
	v := MakeRaw([]byte("x"))
	freq, err := Freq(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if freq != LFUInit {
		t.Errorf("expected fresh value to start at LFU_INIT=%d, got %d", LFUInit, freq)
	}
}

func TestIdleTimeNonNegativeForFreshValue(t *testing.T) {
	orig := config.Current().EvictionPolicy
	defer config.SetEvictionPolicy(orig)

	config.SetEvictionPolicy(config.PolicyAllKeysLRU)
	v := MakeRaw([]byte("x"))
	idle, err := IdleTime(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idle < 0 {
		t.Errorf("expected non-negative idle time, got %d", idle)
	}
}
