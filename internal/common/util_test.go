package common

import (
	"testing"
)

// ---------- RandomDigits ----------

func TestRandomDigits_LengthAndDigits(t *testing.T) {
	const n = 10
	s := RandomDigits(n)
	if len(s) != n {
		t.Fatalf("expected length %d, got %d", n, len(s))
	}
	for i, c := range s {
		if c < '0' || c > '9' {
			t.Fatalf("non-digit %q at position %d in %q", c, i, s)
		}
	}
}

func TestRandomDigits_ZeroAndNegative(t *testing.T) {
	if s := RandomDigits(0); s != "" {
		t.Fatalf("expected empty string for n=0, got %q", s)
	}
	if s := RandomDigits(-3); s != "" {
		t.Fatalf("expected empty string for n<0, got %q", s)
	}
}

func TestRandomDigits_EntropyHint(t *testing.T) {
	a := RandomDigits(32)
	b := RandomDigits(32)
	if a == b {
		t.Logf("warning: two RandomDigits(32) results are identical; extremely unlikely")
	}
}

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
