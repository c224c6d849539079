package qrpayload

import (
	"errors"
	"strings"
	"testing"
)

func TestSealedEncoder(t *testing.T) {
	enc, err := NewSealedEncoder("test-secret")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("round trip", func(t *testing.T) {
		p, err := enc.Encode("665f1c2a9b1e8a0012345678")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(p, prefix) {
			t.Fatalf("payload %q lacks prefix", p)
		}
		got, err := enc.Decode(p)
		if err != nil {
			t.Fatal(err)
		}
		if got != "665f1c2a9b1e8a0012345678" {
			t.Fatalf("decoded %q", got)
		}
	})

	t.Run("fresh nonce per payload", func(t *testing.T) {
		a, _ := enc.Encode("same")
		b, _ := enc.Encode("same")
		if a == b {
			t.Fatal("two encodings of one id are identical")
		}
	})

	t.Run("tampered payload rejected", func(t *testing.T) {
		p, _ := enc.Encode("ticket")
		i := len(prefix) + 30
		flip := byte('A')
		if p[i] == 'A' {
			flip = 'B'
		}
		bad := p[:i] + string(flip) + p[i+1:]
		if _, err := enc.Decode(bad); !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("err = %v, want ErrInvalidPayload", err)
		}
	})

	t.Run("other secret rejected", func(t *testing.T) {
		p, _ := enc.Encode("ticket")
		other, _ := NewSealedEncoder("another-secret")
		if _, err := other.Decode(p); !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("err = %v, want ErrInvalidPayload", err)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		for _, in := range []string{"", "tkt1.", "tkt1.!!!", "nope", "tkt1.QUJD"} {
			if _, err := enc.Decode(in); !errors.Is(err, ErrInvalidPayload) {
				t.Errorf("Decode(%q) err = %v", in, err)
			}
		}
	})
}

func TestNewSealedEncoderEmptySecret(t *testing.T) {
	if _, err := NewSealedEncoder(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
