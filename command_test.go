package main

import "testing"

func TestConfigValidateQuality(t *testing.T) {
	for _, q := range []int{0, 80, 100} {
		cfg := &Config{Quality: q}
		if err := cfg.validate(); err != nil {
			t.Fatalf("quality %d rejected: %v", q, err)
		}
	}
	for _, q := range []int{-1, 101, 500} {
		cfg := &Config{Quality: q}
		if err := cfg.validate(); err == nil {
			t.Fatalf("quality %d accepted, want error", q)
		}
	}
}

func TestEncodingOptionsUseSlowestMethod(t *testing.T) {
	cfg := &Config{Quality: 42}
	opts := cfg.GetEncodingOptions()
	if opts.Quality != 42 {
		t.Fatalf("quality = %d, want 42", opts.Quality)
	}
	if opts.Method != 6 {
		t.Fatalf("method = %d, want 6", opts.Method)
	}
}

func TestEncodingOptionsPassQualityThrough(t *testing.T) {
	// Range checking lives in validate; the encoder options take whatever
	// the caller set.
	cfg := &Config{Quality: 150}
	if got := cfg.GetEncodingOptions().Quality; got != 150 {
		t.Fatalf("quality = %d, want 150", got)
	}
}
