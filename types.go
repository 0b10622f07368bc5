package main

import (
	"scrambler/internal/kdf"
	"scrambler/internal/wordlist"
)

const (
	Version = "1.0.0"

	// Environment variable for the password
	PasswordEnvVar = "SCRAMBLER_PASSWORD"
)

// Options holds everything the command line can set.
type Options struct {
	Scramble         bool
	Recover          bool
	Input            string // wallet file to read words from
	Output           string // wallet file to save the result to
	Seal             bool   // save as an encrypted .sealed file
	Lang             wordlist.Language
	LangSet          bool
	WordListDir      string
	SkipNetworkCheck bool
	NoCodes          bool
	Verbose          bool

	// Params is never exposed as a flag; changing it orphans existing wallets.
	Params kdf.Params
}
