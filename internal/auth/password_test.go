package auth

import (
	"errors"
	"testing"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(WithCost(4)) // minimum cost keeps the test fast

	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if err := h.Verify("secret123", hash); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := h.Verify("wrong-password", hash); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestBcryptHasher_SaltRandomized(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))

	first, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ")
	}
	if err := h.Verify("secret123", first); err != nil {
		t.Errorf("first hash should verify: %v", err)
	}
	if err := h.Verify("secret123", second); err != nil {
		t.Errorf("second hash should verify: %v", err)
	}
}

func TestBcryptHasher_CrossVerifyFails(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))

	hashA, _ := h.Hash("password-a")
	if err := h.Verify("password-b", hashA); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected mismatch for different password, got %v", err)
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher()

	// Verify must report a plain mismatch, never panic or surface detail.
	if err := h.Verify("secret123", "not-a-bcrypt-hash"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch for malformed hash, got %v", err)
	}
	if err := h.Verify("secret123", ""); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch for empty hash, got %v", err)
	}
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	h := NewBcryptHasher()
	if _, err := h.Hash(""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestWithCost_OutOfRangeIgnored(t *testing.T) {
	h := NewBcryptHasher(WithCost(99))
	if h.cost != 10 {
		t.Errorf("out-of-range cost should keep default 10, got %d", h.cost)
	}
}
