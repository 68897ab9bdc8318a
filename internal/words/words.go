// Package words holds the fixed set of special words spelled out letter by letter.
package words

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/abc/internal/abc"
)

// ErrInvalidWord is returned when a word cannot join a Set.
var ErrInvalidWord = errors.New("invalid target word")

// Reference words, in priority order.
const (
	Yenuli  = "YENULI"
	Yelinsa = "YELINSA"
	Yesara  = "YESARA"
)

// Set is an ordered, immutable collection of target words.
type Set struct {
	words   []string
	special [26]bool
}

// New validates words and builds a Set. Words are upper-cased; each must be at
// least two letters of A-Z, unique, and not a prefix of another word.
func New(words ...string) (*Set, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words given", ErrInvalidWord)
	}

	s := &Set{words: make([]string, 0, len(words))}
	for _, w := range words {
		w = strings.ToUpper(w)
		if len(w) < 2 {
			return nil, fmt.Errorf("%w: %q must have at least two letters", ErrInvalidWord, w)
		}
		for _, r := range w {
			l, ok := abc.ParseLetter(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q contains %q", ErrInvalidWord, w, r)
			}
			s.special[l-'A'] = true
		}
		for _, existing := range s.words {
			switch {
			case existing == w:
				return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidWord, w)
			case strings.HasPrefix(existing, w), strings.HasPrefix(w, existing):
				return nil, fmt.Errorf("%w: %q and %q overlap as prefixes", ErrInvalidWord, existing, w)
			}
		}
		s.words = append(s.words, w)
	}

	return s, nil
}

// MustNew is like New but panics on error. For fixed word lists only.
func MustNew(words ...string) *Set {
	s, err := New(words...)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the reference word set.
func Default() *Set {
	return MustNew(Yenuli, Yelinsa, Yesara)
}

// Words returns the words in priority order.
func (s *Set) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Len returns the number of words.
func (s *Set) Len() int {
	return len(s.words)
}

// IsSpecial reports whether l appears in any word.
func (s *Set) IsSpecial(l abc.Letter) bool {
	return l.Valid() && s.special[l-'A']
}

// SpecialAlphabet returns the letters that appear in any word, sorted.
func (s *Set) SpecialAlphabet() []abc.Letter {
	var letters []abc.Letter
	for i, ok := range s.special {
		if ok {
			letters = append(letters, abc.Letter('A'+i))
		}
	}
	return letters
}

// Match returns the word equal to prefix, checking words in priority order.
func (s *Set) Match(prefix string) (string, bool) {
	for _, w := range s.words {
		if w == prefix {
			return w, true
		}
	}
	return "", false
}

// Extends reports whether prefix is a strict prefix of at least one word.
func (s *Set) Extends(prefix string) bool {
	for _, w := range s.words {
		if len(prefix) < len(w) && strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}
