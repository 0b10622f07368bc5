package main

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestWeakPassword(t *testing.T) {
	tests := []struct {
		password string
		weak     bool
	}{
		{"Correct-Horse-9!", false},
		{"Aa1!Aa1!Aa1!", false},
		{"Aa1!Aa1!Aa1", true},  // 11 characters
		{"correct-horse-9!", true},
		{"CORRECT-HORSE-9!", true},
		{"Correct-Horse-X!", true},
		{"CorrectHorse9999", true},
		{"", true},
	}

	for _, tt := range tests {
		if got := weakPassword([]byte(tt.password)); got != tt.weak {
			t.Errorf("weakPassword(%q) = %v, want %v", tt.password, got, tt.weak)
		}
	}
}

// scriptedPasswords answers the password prompt from a fixed sequence.
func scriptedPasswords(t *testing.T, passwords ...string) func(string) ([]byte, error) {
	return func(string) ([]byte, error) {
		if len(passwords) == 0 {
			t.Fatal("password prompt called more often than expected")
		}
		pw := passwords[0]
		passwords = passwords[1:]
		return []byte(pw), nil
	}
}

func TestPasswordMismatchRetries(t *testing.T) {
	s, out := newTestSession(t, "", Options{})
	s.readPassword = scriptedPasswords(t, "", "", "Correct-Horse-9!", "Correct-Horse-8!", "Correct-Horse-9!", "Correct-Horse-9!")

	buf, err := s.password(true)
	if err != nil {
		t.Fatalf("password failed: %v", err)
	}
	defer buf.Destroy()

	if got := buf.String(); got != "Correct-Horse-9!" {
		t.Errorf("password = %q, want Correct-Horse-9!", got)
	}
	if !strings.Contains(out.String(), "Password cannot be empty.") {
		t.Error("empty password not reported")
	}
	if !strings.Contains(out.String(), "Passwords do not match.") {
		t.Error("mismatch not reported")
	}
}

func TestWeakPasswordNeedsConfirmation(t *testing.T) {
	s, _ := newTestSession(t, "no\nYES\n", Options{})
	s.readPassword = scriptedPasswords(t, "weak", "weak", "weaker", "weaker")

	buf, err := s.password(true)
	if err != nil {
		t.Fatalf("password failed: %v", err)
	}
	defer buf.Destroy()

	if got := buf.String(); got != "weaker" {
		t.Errorf("password = %q, want weaker", got)
	}
}

func TestWeakPasswordAcceptedOnRecovery(t *testing.T) {
	s, _ := newTestSession(t, "", Options{})
	s.readPassword = fixedPassword("weak")

	buf, err := s.password(false)
	if err != nil {
		t.Fatalf("password failed: %v", err)
	}
	defer buf.Destroy()
	if got := buf.String(); got != "weak" {
		t.Errorf("password = %q, want weak", got)
	}
}

func TestPasswordFromEnvironment(t *testing.T) {
	s, _ := newTestSession(t, "", Options{})
	t.Setenv(PasswordEnvVar, "from-env")
	s.readPassword = func(string) ([]byte, error) {
		t.Fatal("prompted although the environment variable is set")
		return nil, nil
	}

	buf, err := s.password(true)
	if err != nil {
		t.Fatalf("password failed: %v", err)
	}
	defer buf.Destroy()
	if got := buf.String(); got != "from-env" {
		t.Errorf("password = %q, want from-env", got)
	}
	if _, set := os.LookupEnv(PasswordEnvVar); set {
		t.Errorf("%s still set after reading it", PasswordEnvVar)
	}
}

func TestPasswordReadError(t *testing.T) {
	s, _ := newTestSession(t, "", Options{})
	errTTY := errors.New("no tty")
	s.readPassword = func(string) ([]byte, error) { return nil, errTTY }

	if _, err := s.password(false); !errors.Is(err, errTTY) {
		t.Errorf("password error = %v, want %v", err, errTTY)
	}
}
