package security

import (
	"errors"
	"testing"

	"github.com/codeleap/learning-platform/internal/core/domain"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("Abcdef12")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "Abcdef12" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !h.Verify("Abcdef12", hash) {
		t.Fatalf("verify rejected the original password")
	}
	if h.Verify("Abcdef13", hash) {
		t.Fatalf("verify accepted a different password")
	}
}

func TestPasswordHasher_SaltedPerCall(t *testing.T) {
	h := NewPasswordHasher()

	h1, err := h.Hash("Abcdef12")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := h.Hash("Abcdef12")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher()
	if h.Verify("Abcdef12", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must verify as false")
	}
	if h.Verify("Abcdef12", "") {
		t.Fatalf("empty hash must verify as false")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		want     error
	}{
		{"Abcdef12", nil},
		{"Ab1", domain.ErrPasswordTooShort},
		{"abcdefg1", domain.ErrPasswordNoUpper},
		{"ABCDEFG1", domain.ErrPasswordNoLower},
		{"Abcdefgh", domain.ErrPasswordNoDigit},
		// Length is checked before character classes.
		{"abc", domain.ErrPasswordTooShort},
	}

	for _, tc := range cases {
		err := ValidatePassword(tc.password)
		if tc.want == nil {
			if err != nil {
				t.Fatalf("password %q: expected ok, got %v", tc.password, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("password %q: expected %v, got %v", tc.password, tc.want, err)
		}
	}
}
