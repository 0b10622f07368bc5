package main

import (
	"errors"
	"fmt"

	"github.com/p7r0x7/vainpath"

	"scrambler/internal/scramble"
	"scrambler/internal/wallet"
)

// recoverWallet unscrambles a wallet read from a file or typed in.
func (s *session) recoverWallet() error {
	path := s.opts.Input
	if path == "" {
		fromFile, err := s.yesNo("Do you want to recover from a file?")
		if err != nil {
			return err
		}
		for fromFile && path == "" {
			if path, err = s.readLine("\nEnter the filename of your wallet: "); err != nil {
				return err
			}
		}
	}

	if path != "" && wallet.IsSealed(path) {
		return s.recoverSealed(path)
	}

	var w wallet.Wallet
	if path != "" {
		loaded, err := wallet.Load(path, s.reg)
		if errors.Is(err, wallet.ErrUnsupportedWalletFile) {
			return fmt.Errorf("the wallet file contains words not found in any supported language: %w", err)
		}
		if err != nil {
			return err
		}
		w = loaded
	} else {
		lang, err := s.chooseLanguage()
		if err != nil {
			return err
		}
		w.Lang = lang
	}

	wl, err := s.list(w.Lang)
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(s.out, "\nWallet recovered from file: %s\n", vainpath.Simplify(path))
		fmt.Fprintf(s.out, "Language: %s\n", w.Lang)
		s.printWords("Words found in the file (before unscrambling):", wl, w.Indices)
		fmt.Fprintf(s.out, "\nTo unscramble the words, enter the password\n")
	}

	key, err := s.deriveKey(false)
	if err != nil {
		return err
	}
	defer key.Destroy()

	if w.Indices == nil {
		n, err := s.askWalletSize()
		if err != nil {
			return err
		}
		if w.Indices, err = s.askWords(wl, n); err != nil {
			return err
		}
	}

	original, err := scramble.Scramble(w.Indices, key.Bytes(), wl.Len())
	if err != nil {
		return fmt.Errorf("failed to unscramble words: %w", err)
	}
	s.printWords("Recovered words:", wl, original)
	return nil
}

// recoverSealed needs the key before it can even read the words.
func (s *session) recoverSealed(path string) error {
	key, err := s.deriveKey(false)
	if err != nil {
		return err
	}
	defer key.Destroy()

	w, err := wallet.LoadSealed(path, key.Bytes(), s.reg)
	if err != nil {
		return err
	}
	wl, err := s.list(w.Lang)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nWallet recovered from file: %s\n", vainpath.Simplify(path))
	fmt.Fprintf(s.out, "Language: %s\n", w.Lang)

	original, err := scramble.Scramble(w.Indices, key.Bytes(), wl.Len())
	if err != nil {
		return fmt.Errorf("failed to unscramble words: %w", err)
	}
	s.printWords("Recovered words:", wl, original)
	return nil
}
