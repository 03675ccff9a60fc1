package util

import "testing"

func TestParseSize_Units(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1MB", 1024 * 1024},
		{"512KB", 512 * 1024},
		{"2GB", 2 * 1024 * 1024 * 1024},
		{"100", 100},
		{" 1mb ", 1024 * 1024},
	}
	for _, c := range cases {
		if got := ParseSize(c.in, 42); got != c.want {
			t.Errorf("ParseSize(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseSize_Invalid(t *testing.T) {
	if got := ParseSize("not-a-size", 42); got != 42 {
		t.Errorf("expected default 42, got %d", got)
	}
	if got := ParseSize("", 42); got != 42 {
		t.Errorf("expected default 42 for empty string, got %d", got)
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("supersecretvalue", 4); got != "supe***" {
		t.Errorf("unexpected mask: %q", got)
	}
	if got := MaskSecret("ab", 4); got != "***" {
		t.Errorf("short secrets must be fully masked, got %q", got)
	}
}
