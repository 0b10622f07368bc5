package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

const (
	minStrongLength = 12
	specialChars    = "!@#$%^&*()-_=+[]{}|;:'\",.<>?/"
)

// weakPassword reports whether password is shorter than 12 bytes or misses
// one of upper case, lower case, digit or special character.
func weakPassword(password []byte) bool {
	var upper, lower, digit, special bool
	for _, c := range string(password) {
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune(specialChars, c):
			special = true
		}
	}
	return len(password) < minStrongLength || !(upper && lower && digit && special)
}

// password asks for the password twice until both entries match. When
// checkStrength is set, a weak password must be confirmed with YES. The
// result is moved into a locked buffer; callers defer Destroy.
func (s *session) password(checkStrength bool) (*memguard.LockedBuffer, error) {
	if env := os.Getenv(PasswordEnvVar); env != "" {
		os.Unsetenv(PasswordEnvVar)
		s.log.Printf("password taken from %s", PasswordEnvVar)
		if checkStrength && weakPassword([]byte(env)) {
			fmt.Fprintf(s.errOut, "%sWarning: the password in %s is weak.%s\n", s.style.yell, PasswordEnvVar, s.style.zero)
		}
		return memguard.NewBufferFromBytes([]byte(env)), nil
	}

	if checkStrength {
		fmt.Fprintf(s.out, "\n%sIt's extremely important to choose a strong password.%s\n"+
			"Nothing would help you if your password is cracked or guessed.\n"+
			"12 chars long and a mix of upper, lower, numbers & special chars is recommended.\n",
			s.style.bold, s.style.zero)
	}

	for {
		first, err := s.readPassword("Enter password: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		second, err := s.readPassword("Enter password again: ")
		if err != nil {
			zeroBytes(first)
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		match := bytes.Equal(first, second)
		zeroBytes(second)

		switch {
		case len(first) == 0:
			fmt.Fprintf(s.out, "\n%sPassword cannot be empty.%s\n", s.style.red, s.style.zero)
			continue
		case !match:
			zeroBytes(first)
			fmt.Fprintf(s.out, "\n%sPasswords do not match.%s\n", s.style.red, s.style.zero)
			continue
		case checkStrength && weakPassword(first):
			ok, err := s.confirm(s.style.yell + "\nPassword is weak. Are you sure you want to continue? (type \"YES\" to continue): " + s.style.zero)
			if err != nil || !ok {
				zeroBytes(first)
				if err != nil {
					return nil, err
				}
				continue
			}
		}

		if checkStrength {
			fmt.Fprintf(s.out, "\n%sRemember your password, it CANNOT be recovered.%s\n", s.style.yell, s.style.zero)
		}
		return memguard.NewBufferFromBytes(first), nil
	}
}

// zeroBytes overwrites a byte slice with zeros
func zeroBytes(b []byte) {
	memguard.WipeBytes(b)
	runtime.KeepAlive(b)
}

// promptPassword reads one password without echo. When stdin is piped the
// controlling terminal is used instead.
func (s *session) promptPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, fmt.Errorf("stdin is not a terminal and no tty is available; set %s", PasswordEnvVar)
		}
		defer tty.Close()
		fd = int(tty.Fd())
	}

	fmt.Fprint(s.errOut, prompt)
	defer fmt.Fprintln(s.errOut)
	return term.ReadPassword(fd)
}
