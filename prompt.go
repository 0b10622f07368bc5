package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"scrambler/internal/kdf"
	"scrambler/internal/wallet"
	"scrambler/internal/wordlist"
)

// errAborted ends the program without an error message.
var errAborted = errors.New("aborted by user")

// session carries the state of one interactive run.
type session struct {
	opts   Options
	reg    *wordlist.Registry
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	style  style
	log    *log.Logger

	readPassword func(prompt string) ([]byte, error)
	progress     kdf.Progress
}

// readLine prints prompt and returns the next input line without surrounding
// space. A closed input with nothing left to read is an error so prompt loops
// cannot spin forever.
func (s *session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm returns true only for a literal YES.
func (s *session) confirm(prompt string) (bool, error) {
	answer, err := s.readLine(prompt)
	if err != nil {
		return false, err
	}
	return answer == "YES", nil
}

// choose lists choices numbered from 1 and returns the 0-based pick.
func (s *session) choose(action string, choices []string) (int, error) {
	prompt := "Enter 1 or 2: "
	if len(choices) > 2 {
		prompt = fmt.Sprintf("Enter a number between 1 and %d: ", len(choices))
	}

	fmt.Fprintf(s.out, "\n%s%s%s\n\n", s.style.cyan+s.style.bold, action, s.style.zero)
	for {
		for i, choice := range choices {
			fmt.Fprintf(s.out, "%2d. %s\n", i+1, choice)
		}
		answer, err := s.readLine("\n" + prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(choices) {
			return n - 1, nil
		}
		fmt.Fprintf(s.out, "\n%sInvalid choice. Please try again.%s\n\n", s.style.red, s.style.zero)
	}
}

func (s *session) yesNo(question string) (bool, error) {
	n, err := s.choose(question, []string{"Yes", "No"})
	return n == 0, err
}

// chooseLanguage offers the loaded word lists, unless --lang settled it.
func (s *session) chooseLanguage() (wordlist.Language, error) {
	if s.opts.LangSet {
		return s.opts.Lang, nil
	}
	langs := s.reg.Languages()
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.String()
	}
	n, err := s.choose("What wordlist would you like to use?", names)
	if err != nil {
		return 0, err
	}
	return langs[n], nil
}

func (s *session) askWalletSize() (int, error) {
	for {
		answer, err := s.readLine(fmt.Sprintf("\nEnter the number of words in your wallet (%d-%d): ", wallet.MinWords, wallet.MaxWords))
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(answer); err == nil && wallet.CheckSize(n) == nil {
			return n, nil
		}
		fmt.Fprintf(s.out, "\n%sInvalid wallet size. Enter a number between %d and %d.%s\n",
			s.style.red, wallet.MinWords, wallet.MaxWords, s.style.zero)
	}
}

// askWords reads n words, re-prompting with suggestions on every miss.
func (s *session) askWords(wl *wordlist.WordList, n int) ([]int, error) {
	indices := make([]int, n)
	for i := 0; i < n; {
		word, err := s.readLine(fmt.Sprintf("Enter word number %d: ", i+1))
		if err != nil {
			return nil, err
		}
		idx, err := wl.Lookup(word)
		var nf *wordlist.NotFoundError
		if err != nil && !errors.As(err, &nf) {
			return nil, err
		}
		if nf != nil {
			fmt.Fprintf(s.out, "\n%sInvalid word. Please enter a valid word from the word list.%s\n", s.style.red, s.style.zero)
			if len(nf.Suggestions) > 0 {
				fmt.Fprintf(s.out, "\n%sDid you mean one of these?%s\n", s.style.yell, s.style.zero)
				for _, suggestion := range nf.Suggestions {
					fmt.Fprintf(s.out, " -> %s\n", suggestion)
				}
			}
			fmt.Fprintln(s.out)
			continue
		}
		indices[i] = idx
		i++
	}
	return indices, nil
}

// printWords shows indices as "NN: word".
func (s *session) printWords(title string, wl *wordlist.WordList, indices []int) {
	fmt.Fprintf(s.out, "\n%s%s%s\n\n", s.style.bold+s.style.und+s.style.cyan, title, s.style.zero)
	for i, idx := range indices {
		fmt.Fprintf(s.out, "%2d: %s\n", i+1, wl.Word(idx))
	}
}
