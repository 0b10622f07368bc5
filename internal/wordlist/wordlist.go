// Package wordlist holds the mnemonic word lists and maps words to indices.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrWordNotFound    = errors.New("word not found")
	ErrInvalidWordList = errors.New("invalid word list")
)

// NotFoundError is returned by Lookup for words absent from the list.
type NotFoundError struct {
	Word        string
	List        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("word %q not found in %s", e.Word, e.List)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrWordNotFound
}

// WordList is an immutable ordered list of unique words.
type WordList struct {
	name    string
	words   []string
	reverse map[string]int
}

// New copies words into a WordList. Every word must be non-empty and unique
// after normalization.
func New(name string, words []string) (*WordList, error) {
	wl := &WordList{
		name:    name,
		words:   make([]string, len(words)),
		reverse: make(map[string]int, len(words)),
	}
	for i, w := range words {
		key := normalize(w)
		if key == "" {
			return nil, fmt.Errorf("%w: %s: word %d is empty", ErrInvalidWordList, name, i)
		}
		if prev, dup := wl.reverse[key]; dup {
			return nil, fmt.Errorf("%w: %s: word %q at %d duplicates %d", ErrInvalidWordList, name, w, i, prev)
		}
		wl.reverse[key] = i
		wl.words[i] = w
	}
	return wl, nil
}

func (wl *WordList) Name() string { return wl.name }

func (wl *WordList) Len() int { return len(wl.words) }

// Word returns the word at idx, or "" when idx is out of range.
func (wl *WordList) Word(idx int) string {
	if idx < 0 || idx >= len(wl.words) {
		return ""
	}
	return wl.words[idx]
}

// Words maps indices back to words.
func (wl *WordList) Words(indices []int) ([]string, error) {
	out := make([]string, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(wl.words) {
			return nil, fmt.Errorf("index %d out of range for %s", idx, wl.name)
		}
		out[i] = wl.words[idx]
	}
	return out, nil
}

// Index returns the position of word, ignoring surrounding space and
// Unicode normalization differences.
func (wl *WordList) Index(word string) (int, bool) {
	idx, ok := wl.reverse[normalize(word)]
	return idx, ok
}

// Lookup is Index with a *NotFoundError carrying suggestions on a miss.
func (wl *WordList) Lookup(word string) (int, error) {
	if idx, ok := wl.Index(word); ok {
		return idx, nil
	}
	return -1, &NotFoundError{
		Word:        strings.TrimSpace(word),
		List:        wl.name,
		Suggestions: wl.Suggest(word, MaxSuggestions),
	}
}

// Indices looks up every word, failing on the first miss.
func (wl *WordList) Indices(words []string) ([]int, error) {
	out := make([]int, len(words))
	for i, w := range words {
		idx, err := wl.Lookup(w)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		out[i] = idx
	}
	return out, nil
}

func normalize(word string) string {
	return norm.NFKD.String(strings.TrimSpace(word))
}

// ReadLines returns the lines of r with surrounding whitespace removed.
// Trailing blank lines are dropped; blank lines in between are kept so they
// fail lookup instead of shifting word positions.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
