package wordlist

import (
	"fmt"
	"strconv"
	"strings"
)

// Language selects a slot in the registry. The numbering is part of the
// wallet format and must not be reordered.
type Language int

const (
	SLIP39 Language = iota
	English
	Czech
	French
	Italian
	Portuguese
	Spanish
	Japanese
	Korean
	ChineseSimplified
	ChineseTraditional

	numLanguages
)

var languageInfo = [numLanguages]struct {
	short   string
	display string
	size    int
}{
	SLIP39:             {"slip39", "SLIP39 (English, 1024 words, used by Trezor)", 1024},
	English:            {"english", "English (BIP 39, 2048 words)", 2048},
	Czech:              {"czech", "Czech (BIP 39, 2048 words)", 2048},
	French:             {"french", "French (BIP 39, 2048 words)", 2048},
	Italian:            {"italian", "Italian (BIP 39, 2048 words)", 2048},
	Portuguese:         {"portuguese", "Portuguese (BIP 39, 2048 words)", 2048},
	Spanish:            {"spanish", "Spanish (BIP 39, 2048 words)", 2048},
	Japanese:           {"japanese", "Japanese (BIP 39, 2048 words)", 2048},
	Korean:             {"korean", "Korean (BIP 39, 2048 words)", 2048},
	ChineseSimplified:  {"chinese-simplified", "Chinese simplified (BIP 39, 2048 symbols)", 2048},
	ChineseTraditional: {"chinese-traditional", "Chinese traditional (BIP 39, 2048 symbols)", 2048},
}

// AllLanguages returns every language slot in registry order.
func AllLanguages() []Language {
	langs := make([]Language, numLanguages)
	for i := range langs {
		langs[i] = Language(i)
	}
	return langs
}

func (l Language) Valid() bool {
	return l >= 0 && l < numLanguages
}

// String returns the human-readable name shown in menus.
func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageInfo[l].display
}

// ShortName is the flag spelling and the file stem of an external list.
func (l Language) ShortName() string {
	if !l.Valid() {
		return ""
	}
	return languageInfo[l].short
}

// Size is the number of words the list for l must contain.
func (l Language) Size() int {
	if !l.Valid() {
		return 0
	}
	return languageInfo[l].size
}

// ParseLanguage accepts a slot number (0-10) or a short name, case-insensitive.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if l := Language(n); l.Valid() {
			return l, nil
		}
		return 0, fmt.Errorf("language number %d out of range 0-%d", n, numLanguages-1)
	}
	for _, l := range AllLanguages() {
		if languageInfo[l].short == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown language %q", s)
}
