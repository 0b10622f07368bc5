package wordlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tyler-smith/go-bip39/wordlists"
)

var ErrUnavailable = errors.New("word list not available")

// bundled are the lists shipped with go-bip39. SLIP39 and Portuguese have no
// Go package to take them from and must be supplied as files.
var bundled = map[Language][]string{
	English:            wordlists.English,
	Czech:              wordlists.Czech,
	French:             wordlists.French,
	Italian:            wordlists.Italian,
	Spanish:            wordlists.Spanish,
	Japanese:           wordlists.Japanese,
	Korean:             wordlists.Korean,
	ChineseSimplified:  wordlists.ChineseSimplified,
	ChineseTraditional: wordlists.ChineseTraditional,
}

// Registry is the fixed set of word lists, one slot per Language. It is not
// modified after NewRegistry returns.
type Registry struct {
	lists [numLanguages]*WordList
}

// NewRegistry loads the bundled lists. Languages without one are read from
// <dir>/<shortname>.txt when that file exists; files named after a bundled
// language are never consulted. An empty dir skips the file lookup.
func NewRegistry(dir string) (*Registry, error) {
	reg := &Registry{}
	for _, lang := range AllLanguages() {
		words, ok := bundled[lang]
		if !ok && dir != "" {
			var err error
			words, err = readListFile(filepath.Join(dir, lang.ShortName()+".txt"))
			if err != nil {
				return nil, fmt.Errorf("load %s word list: %w", lang.ShortName(), err)
			}
		}
		if words == nil {
			continue
		}
		if len(words) != lang.Size() {
			return nil, fmt.Errorf("%w: %s has %d words, want %d",
				ErrInvalidWordList, lang.ShortName(), len(words), lang.Size())
		}
		wl, err := New(lang.String(), words)
		if err != nil {
			return nil, err
		}
		reg.lists[lang] = wl
	}
	return reg, nil
}

func readListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// Get returns the list for lang, or ErrUnavailable if none was loaded.
func (r *Registry) Get(lang Language) (*WordList, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, lang)
	}
	if wl := r.lists[lang]; wl != nil {
		return wl, nil
	}
	return nil, fmt.Errorf("%w: %s (place %s.txt in the word list directory)",
		ErrUnavailable, lang, lang.ShortName())
}

// Languages returns the loaded languages in registry order.
func (r *Registry) Languages() []Language {
	var out []Language
	for _, lang := range AllLanguages() {
		if r.lists[lang] != nil {
			out = append(out, lang)
		}
	}
	return out
}
