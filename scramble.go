package main

import (
	"fmt"

	"github.com/p7r0x7/vainpath"

	"scrambler/internal/kdf"
	"scrambler/internal/scramble"
	"scrambler/internal/wallet"
	"scrambler/internal/wordlist"
)

// deriveKey prompts for the password and runs the slow key derivation. The
// password is wiped before deriveKey returns.
func (s *session) deriveKey(checkStrength bool) (*kdf.Key, error) {
	password, err := s.password(checkStrength)
	if err != nil {
		return nil, err
	}
	defer password.Destroy()

	p := s.opts.Params
	fmt.Fprintf(s.out, "\n%sCalculating derived secret key, this WILL take a while%s\n\n", s.style.cyan, s.style.zero)
	s.log.Printf("argon2id time=%d memory=%dKiB threads=%d rounds=%d", p.Time, p.Memory, p.Threads, p.Rounds)

	key, err := kdf.DeriveKey(password.Bytes(), p, s.progress)
	if err != nil {
		return nil, fmt.Errorf("key derivation failed: %w", err)
	}
	fmt.Fprintf(s.out, "\n%sKey generated.%s\n", s.style.green, s.style.zero)
	return key, nil
}

func (s *session) list(lang wordlist.Language) (*wordlist.WordList, error) {
	wl, err := s.reg.Get(lang)
	if err != nil {
		return nil, err
	}
	if !scramble.Involutive(wl.Len()) {
		fmt.Fprintf(s.errOut, "%sWarning: %s has %d words, which is not a power of two; "+
			"unscrambling may not restore every word.%s\n", s.style.yell, wl.Name(), wl.Len(), s.style.zero)
	}
	return wl, nil
}

// scrambleWallet reads the original words, from --input or the keyboard,
// and prints and optionally saves their scrambled form.
func (s *session) scrambleWallet() error {
	var w wallet.Wallet
	if s.opts.Input != "" {
		loaded, err := wallet.Load(s.opts.Input, s.reg)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", vainpath.Simplify(s.opts.Input), err)
		}
		w = loaded
		fmt.Fprintf(s.out, "\nRead %d words from %s (%s)\n", len(w.Indices), vainpath.Simplify(s.opts.Input), w.Lang)
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

	key, err := s.deriveKey(true)
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

	scrambled, err := scramble.Scramble(w.Indices, key.Bytes(), wl.Len())
	if err != nil {
		return fmt.Errorf("failed to scramble words: %w", err)
	}
	s.printWords("New words:", wl, scrambled)

	return s.save(wallet.Wallet{Lang: w.Lang, Indices: scrambled}, wl, key)
}

// save writes the scrambled wallet to --output, or asks whether and where to.
func (s *session) save(w wallet.Wallet, wl *wordlist.WordList, key *kdf.Key) error {
	path := s.opts.Output
	if path == "" {
		ok, err := s.yesNo("Would you like to save your scrambled wallet words?")
		if err != nil || !ok {
			return err
		}
		ext := wallet.TextExt
		if s.opts.Seal {
			ext = wallet.SealedExt
		}
		for path == "" {
			if path, err = s.readLine(fmt.Sprintf("\nEnter a filename for your wallet (%s is added if there is no extension): ", ext)); err != nil {
				return err
			}
		}
	}

	var saved string
	var err error
	if s.opts.Seal || wallet.IsSealed(path) {
		saved, err = wallet.SaveSealed(path, key.Bytes(), w, wl)
	} else {
		saved, err = wallet.Save(path, wl, w.Indices)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\n%sWallet saved to %s%s\n", s.style.green, vainpath.Simplify(saved), s.style.zero)
	return nil
}
