// Package wallet reads and writes scrambled wallets: one word per line, no
// header. The language is recovered by matching the words against the
// registry.
package wallet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"scrambler/internal/wordlist"
)

const (
	MinWords = 12
	MaxWords = 33

	TextExt = ".txt"
)

var (
	ErrWalletSize            = errors.New("invalid wallet size")
	ErrUnsupportedWalletFile = errors.New("wallet words do not belong to any supported language")
)

// Wallet is an index sequence together with the list it indexes.
type Wallet struct {
	Lang    wordlist.Language
	Indices []int
}

// CheckSize validates a wallet word count.
func CheckSize(n int) error {
	if n < MinWords || n > MaxWords {
		return fmt.Errorf("%w: %d words (want %d-%d)", ErrWalletSize, n, MinWords, MaxWords)
	}
	return nil
}

// Detect returns the first language in registry order that contains every
// word, with the words mapped to indices.
func Detect(reg *wordlist.Registry, words []string) (Wallet, error) {
	for _, lang := range reg.Languages() {
		wl, err := reg.Get(lang)
		if err != nil {
			return Wallet{}, err
		}
		indices, err := wl.Indices(words)
		if err != nil {
			continue
		}
		return Wallet{Lang: lang, Indices: indices}, nil
	}
	return Wallet{}, ErrUnsupportedWalletFile
}

// Write emits the words for indices, one per line.
func Write(w io.Writer, wl *wordlist.WordList, indices []int) error {
	words, err := wl.Words(indices)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Parse reads a plain-text wallet and detects its language.
func Parse(r io.Reader, reg *wordlist.Registry) (Wallet, error) {
	words, err := wordlist.ReadLines(r)
	if err != nil {
		return Wallet{}, fmt.Errorf("failed to read wallet: %w", err)
	}
	if err := CheckSize(len(words)); err != nil {
		return Wallet{}, err
	}
	return Detect(reg, words)
}

// Save writes a plain-text wallet to path, adding .txt when path has no
// extension, and returns the path written.
func Save(path string, wl *wordlist.WordList, indices []int) (string, error) {
	path = withExt(path, TextExt)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("unable to create wallet file: %w", err)
	}
	if err := Write(f, wl, indices); err != nil {
		f.Close()
		return "", fmt.Errorf("unable to write wallet file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("unable to write wallet file: %w", err)
	}
	return path, nil
}

// Load reads a plain-text wallet from path.
func Load(path string, reg *wordlist.Registry) (Wallet, error) {
	f, err := os.Open(path)
	if err != nil {
		return Wallet{}, fmt.Errorf("unable to open wallet file: %w", err)
	}
	defer f.Close()
	return Parse(f, reg)
}

func withExt(path, ext string) string {
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}
