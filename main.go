package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/awnumar/memguard"
	"github.com/p7r0x7/vainpath"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"scrambler/internal/kdf"
	"scrambler/internal/wordlist"
)

// defaultWordListDir keeps list files apart from wallets saved in the
// working directory.
const defaultWordListDir = "wordlists"

// errHelp marks --help and --version, which exit cleanly.
var errHelp = errors.New("help requested")

func main() {
	memguard.CatchInterrupt()
	os.Exit(program(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// program runs the tool and returns the process exit status.
func program(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defer memguard.Purge()

	opts, err := parseOptions(args, stderr)
	if errors.Is(err, errHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	codes := !opts.NoCodes
	if f, ok := stdout.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		codes = false
	}
	st := newStyle(codes)

	logger := log.New(io.Discard, "", 0)
	if opts.Verbose {
		logger = log.New(stderr, "scrambler: ", log.Ltime|log.Lmicroseconds)
	}

	reg, err := wordlist.NewRegistry(opts.WordListDir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.Printf("%d word lists available (directory %q)", len(reg.Languages()), opts.WordListDir)

	s := &session{
		opts:     opts,
		reg:      reg,
		in:       bufio.NewReader(stdin),
		out:      stdout,
		errOut:   stderr,
		style:    st,
		log:      logger,
		progress: &progressBar{w: stderr, style: st},
	}
	s.readPassword = s.promptPassword

	err = s.run(online)
	if errors.Is(err, errAborted) {
		fmt.Fprintln(stdout, "\nExiting...")
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "%sError: %v%s\n", st.red, err, st.zero)
		return 1
	}
	return 0
}

// run shows the banner, checks the network and dispatches to a mode.
func (s *session) run(probe func() bool) error {
	fmt.Fprintf(s.out, "%sWallet Scrambler v%s%s\n", s.style.bold+s.style.cyan, Version, s.style.zero)

	if s.opts.SkipNetworkCheck {
		s.log.Printf("network check skipped")
	} else if err := s.networkCheck(probe); err != nil {
		return err
	}

	switch {
	case s.opts.Recover:
		return s.recoverWallet()
	case s.opts.Scramble:
		return s.scrambleWallet()
	}

	n, err := s.choose("What would you like to do?", []string{"Scramble a new wallet", "Recover an existing wallet"})
	if err != nil {
		return err
	}
	if n == 1 {
		return s.recoverWallet()
	}
	return s.scrambleWallet()
}

func parseOptions(args []string, stderr io.Writer) (Options, error) {
	opts := Options{Params: kdf.DefaultParams()}

	fs := pflag.NewFlagSet("scrambler", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(stderr)

	var lang string
	var help, version bool
	fs.BoolVarP(&opts.Scramble, "scramble", "s", false, "scramble a wallet without asking for the mode")
	fs.BoolVarP(&opts.Recover, "recover", "r", false, "recover a scrambled wallet")
	fs.StringVarP(&opts.Input, "input", "i", "", "read wallet words from `FILE`")
	fs.StringVarP(&opts.Output, "output", "o", "", "save the resulting words to `FILE`")
	fs.BoolVar(&opts.Seal, "seal", false, "save the wallet encrypted (.sealed)")
	fs.StringVarP(&lang, "lang", "l", "", "word list `LANG` (number or short name, e.g. english)")
	fs.StringVarP(&opts.WordListDir, "wordlists", "w", defaultWordListDir, "`DIR` holding slip39.txt and portuguese.txt")
	fs.BoolVar(&opts.SkipNetworkCheck, "skip-network-check", false, "do not warn about an internet connection")
	fs.BoolVar(&opts.NoCodes, "no-codes", false, "disable colored output")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "log progress details to stderr")
	fs.BoolVarP(&help, "help", "h", false, "show this help message")
	fs.BoolVar(&version, "version", false, "show version information")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return opts, errHelp
		}
		return opts, err
	}
	if help {
		printUsage(stderr, fs)
		return opts, errHelp
	}
	if version {
		fmt.Fprintf(stderr, "scrambler version %s\n", Version)
		return opts, errHelp
	}

	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if opts.Scramble && opts.Recover {
		return opts, errors.New("--scramble and --recover are mutually exclusive")
	}
	if fs.Changed("lang") {
		l, err := wordlist.ParseLanguage(lang)
		if err != nil {
			return opts, err
		}
		opts.Lang, opts.LangSet = l, true
	}
	return opts, nil
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	name := vainpath.Trim(os.Args[0], "…", 12)
	fmt.Fprintf(w, `scrambler - Scramble wallet recovery words with a password

USAGE:
    %s [options]

OPTIONS:
%s
PASSWORD:
    Set %s environment variable, or enter interactively.

LANGUAGES:
`, name, fs.FlagUsages(), PasswordEnvVar)
	for _, l := range wordlist.AllLanguages() {
		fmt.Fprintf(w, "    %2d. %-20s %s\n", int(l), l.ShortName(), l.String())
	}
	fmt.Fprint(w, `
EXAMPLES:
    # Scramble interactively
    scrambler

    # Scramble words read from a file, save them encrypted
    scrambler -s -i words.txt -o wallet --seal

    # Recover a wallet file
    scrambler -r -i wallet.sealed

SECURITY:
    - Key derived using 10 rounds of Argon2id (2GiB memory each)
    - Run it offline, ideally on a machine wiped afterwards
    - Word lists that are not a power of two in size may not round trip

`)
}
