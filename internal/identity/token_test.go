package identity

import (
	"errors"
	"testing"
	"time"
)

func TestTokenVerifier_RoundTrip(t *testing.T) {
	t.Parallel()

	v := NewTokenVerifier("secret", "rollcall")

	token, err := v.Generate("user-123", "Alice", "athlete", time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	subject, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if subject != "user-123" {
		t.Errorf("Verify() subject = %s, want user-123", subject)
	}
}

func TestTokenVerifier_WrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewTokenVerifier("secret-a", "rollcall")
	verifier := NewTokenVerifier("secret-b", "rollcall")

	token, err := signer.Generate("user-123", "Alice", "athlete", time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenVerifier_Expired(t *testing.T) {
	t.Parallel()

	v := NewTokenVerifier("secret", "rollcall")

	token, err := v.Generate("user-123", "Alice", "athlete", -time.Minute)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := v.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenVerifier_EmptyToken(t *testing.T) {
	t.Parallel()

	v := NewTokenVerifier("secret", "rollcall")

	if _, err := v.Verify(""); !errors.Is(err, ErrMissingToken) {
		t.Errorf("Verify(\"\") error = %v, want ErrMissingToken", err)
	}
	if _, err := v.Verify("   "); !errors.Is(err, ErrMissingToken) {
		t.Errorf("Verify(whitespace) error = %v, want ErrMissingToken", err)
	}
}

func TestTokenVerifier_Garbage(t *testing.T) {
	t.Parallel()

	v := NewTokenVerifier("secret", "rollcall")

	if _, err := v.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenVerifier_EmptySubject(t *testing.T) {
	t.Parallel()

	v := NewTokenVerifier("secret", "rollcall")

	if _, err := v.Generate("", "Alice", "athlete", time.Hour); err == nil {
		t.Error("Generate() with empty subject expected error, got nil")
	}
}

func TestTokenFromHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"extra parts", "Bearer abc def", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := TokenFromHeader(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrMissingToken) {
					t.Errorf("TokenFromHeader() error = %v, want ErrMissingToken", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("TokenFromHeader() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("TokenFromHeader() = %s, want %s", got, tt.want)
			}
		})
	}
}
